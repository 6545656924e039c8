package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
)

const (
	msgEmptyFile   = "CSV file is empty or invalid"
	msgNoProducts  = "No valid products found in CSV"
	msgParsed      = "Found %d products with %d total variant rows"
	msgImported    = "Import complete: %d imported, %d skipped"
	msgDeleted     = "Deleted %d products"
	msgImportFail  = "Import failed"
	msgDeleteFail  = "Failed to delete products"
	msgUnsupported = "Only .csv and .xlsx files are supported"

	defaultFulfillmentService = "manual"
	defaultInventoryTracker   = "shopify"
)

type CatalogImportService interface {
	ParseUpload(ctx context.Context, filename string, content []byte) (*models.ParseResult, error)
	ImportProducts(ctx context.Context, req *models.ImportProductsRequest) (*models.ImportResult, error)
	DeleteAllProducts(ctx context.Context) (*models.DeleteResult, error)
}

type catalogImportService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

// NewCatalogImportService builds the importer. c is the product cache to
// invalidate on overwrite and may be nil.
func NewCatalogImportService(repo repository.ProductRepository, c cache.Cache) CatalogImportService {
	return &catalogImportService{repo: repo, cache: c}
}

// ParseUpload reads a .csv or .xlsx export into products for preview.
// Unparseable content is a failed result, not an error.
func (s *catalogImportService) ParseUpload(ctx context.Context, filename string, content []byte) (*models.ParseResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	var rows []catalog.Row

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows = catalog.ParseCSV(string(content))
	case ".xlsx":
		parsed, err := catalog.ParseXLSX(bytes.NewReader(content))
		if err != nil {
			logger.Warn("Failed to read workbook", slog.String("file", filename), slog.String("error", err.Error()))

			return &models.ParseResult{Success: false, Message: msgEmptyFile}, nil
		}

		rows = parsed
	default:
		return nil, appErrors.UnsupportedMediaError(msgUnsupported)
	}

	if len(rows) == 0 {
		return &models.ParseResult{Success: false, Message: msgEmptyFile}, nil
	}

	products, warnings := catalog.ConvertToProductsWithWarnings(rows)
	if len(products) == 0 {
		return &models.ParseResult{Success: false, Message: msgNoProducts}, nil
	}

	logger.Info("Parsed catalog upload",
		slog.String("file", filename),
		slog.Int("rows", len(rows)),
		slog.Int("products", len(products)),
		slog.Int("warnings", len(warnings)))

	return &models.ParseResult{
		Success:  true,
		Message:  fmt.Sprintf(msgParsed, len(products), len(rows)),
		Products: products,
		Warnings: warnings,
	}, nil
}

// ImportProducts stores each product in turn. Existing handles are skipped
// unless OverwriteExisting is set; a failure for one product is recorded and
// the rest still run.
func (s *catalogImportService) ImportProducts(ctx context.Context, req *models.ImportProductsRequest) (*models.ImportResult, error) {
	logger := middleware.LoggerFromContext(ctx)
	result := &models.ImportResult{}

	for i := range req.Products {
		parsed := req.Products[i]
		parsed.BodyHTML = catalog.SanitizeHTML(parsed.BodyHTML)

		if parsed.Status == "" {
			parsed.Status = models.ProductStatusActive
		}

		outcome, err := s.importOne(ctx, &parsed, req.OverwriteExisting)
		if err != nil {
			if ctx.Err() != nil {
				return nil, appErrors.DatabaseError(msgImportFail).WithError(err)
			}

			logger.Warn("Failed to import product", slog.String("handle", parsed.Handle), slog.String("error", err.Error()))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", parsed.Handle, err.Error()))
			outcome = metrics.ImportOutcomeFailed
		}

		switch outcome {
		case metrics.ImportOutcomeImported:
			result.Imported++
		case metrics.ImportOutcomeSkipped:
			result.Skipped++
		}

		metrics.CatalogImportProducts.WithLabelValues(outcome).Inc()
	}

	result.Success = true
	result.Message = fmt.Sprintf(msgImported, result.Imported, result.Skipped)

	logger.Info("Catalog import finished",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(result.Errors)))

	return result, nil
}

func (s *catalogImportService) importOne(ctx context.Context, parsed *models.ParsedProduct, overwrite bool) (string, error) {
	_, err := s.repo.FindByHandle(ctx, parsed.Handle)

	switch {
	case err == nil && !overwrite:
		return metrics.ImportOutcomeSkipped, nil
	case err == nil:
		if err := s.repo.UpdateByHandle(ctx, parsed.Handle, parsed); err != nil {
			return "", err
		}

		s.invalidate(ctx, parsed.Handle)

		return metrics.ImportOutcomeImported, nil
	case errors.Is(err, repository.ErrNotFound):
		product := &models.Product{
			ParsedProduct:      *parsed,
			FulfillmentService: defaultFulfillmentService,
			InventoryTracker:   defaultInventoryTracker,
		}

		if err := s.repo.Create(ctx, product); err != nil {
			return "", err
		}

		return metrics.ImportOutcomeImported, nil
	default:
		return "", err
	}
}

func (s *catalogImportService) invalidate(ctx context.Context, handle string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, handle)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to evict cached product", slog.String("handle", handle), slog.String("error", err.Error()))
	}
}

// DeleteAllProducts empties the catalog. Cached products expire on their own TTL.
func (s *catalogImportService) DeleteAllProducts(ctx context.Context) (*models.DeleteResult, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError(msgDeleteFail).WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Catalog deleted", slog.Int64("deleted", deleted))

	return &models.DeleteResult{Success: true, Message: fmt.Sprintf(msgDeleted, deleted)}, nil
}
