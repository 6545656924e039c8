package handlers

import (
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const uploadField = "file"

type CatalogImportHandler struct {
	importService  service.CatalogImportService
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewCatalogImportHandler(importService service.CatalogImportService, maxUploadBytes int64) *CatalogImportHandler {
	return &CatalogImportHandler{
		importService:  importService,
		validator:      validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// Preview parses an uploaded export without storing anything.
//
//	@Summary		Preview a catalog upload
//	@Description	Parses a CSV or XLSX export into products without storing them.
//	@Tags			Catalog Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"CSV or XLSX export"
//	@Success		200	{object}	models.ParseResult
//	@Failure		400	{object}	response.ErrorResponse	"File is required"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Failure		413	{object}	response.ErrorResponse	"Upload too large"
//	@Failure		415	{object}	response.ErrorResponse	"Unsupported file type"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products/import/preview [post]
func (h *CatalogImportHandler) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			logger.Warn("Invalid catalog upload", slog.String("error", err.Error()))
			response.Error(w, uploadError(err, h.maxUploadBytes))

			return
		}

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			logger.Warn("Catalog upload without file", slog.String("error", err.Error()))
			response.Error(w, errors.ValidationError("File is required"))

			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.Error("Failed to read catalog upload", slog.String("file", header.Filename), slog.String("error", err.Error()))
			response.Error(w, uploadError(err, h.maxUploadBytes))

			return
		}

		result, err := h.importService.ParseUpload(r.Context(), header.Filename, content)
		if err != nil {
			logger.Warn("Catalog upload rejected", slog.String("file", header.Filename), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

func uploadError(err error, limit int64) error {
	var maxErr *http.MaxBytesError
	if stdErrors.As(err, &maxErr) {
		return errors.PayloadTooLargeError(fmt.Sprintf("File exceeds the %d byte upload limit", limit))
	}

	return errors.BadRequestError("Invalid multipart upload").WithError(err)
}

// Import godoc
//	@Summary		Import parsed products
//	@Description	Creates new products and skips or overwrites existing handles.
//	@Tags			Catalog Import
//	@Accept			json
//	@Produce		json
//	@Param			products	body	models.ImportProductsRequest	true	"Products"
//	@Success		200	{object}	models.ImportResult
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products/import [post]
func (h *CatalogImportHandler) Import() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.ImportProductsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid catalog import input")

			return
		}

		logger.Info("Starting catalog import", slog.Int("products", len(req.Products)), slog.Bool("overwrite", req.OverwriteExisting))

		result, err := h.importService.ImportProducts(r.Context(), &req)
		if err != nil {
			logger.Error("Catalog import failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// DeleteAll godoc
//	@Summary		Delete every product
//	@Description	Removes the whole catalog.
//	@Tags			Catalog Import
//	@Produce		json
//	@Success		200	{object}	models.DeleteResult
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products [delete]
func (h *CatalogImportHandler) DeleteAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		result, err := h.importService.DeleteAllProducts(r.Context())
		if err != nil {
			logger.Error("Failed to delete catalog", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
