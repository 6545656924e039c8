package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// MaxJSONBody caps JSON request bodies. Catalog uploads are multipart and have their own limit.
const MaxJSONBody = 1 << 20

var ErrEmptyBody = errors.New("request body cannot be empty")

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBody))

	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}

		return err
	}

	return nil
}

// ParseAndValidate decodes the JSON body into dest and validates it, writing
// the error response itself. It reports whether the handler may continue.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	logger := slog.With(slog.String("endpoint", r.URL.Path))

	if err := decodeJSON(w, r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))

		var tooLarge *http.MaxBytesError

		switch {
		case errors.As(err, &tooLarge):
			response.Error(w, appErrors.PayloadTooLargeError(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)))
		case errors.Is(err, ErrEmptyBody):
			response.Error(w, appErrors.BadRequestError(err.Error()))
		default:
			response.Error(w, appErrors.BadRequestError("invalid JSON format: "+err.Error()))
		}

		return false
	}

	err := validate.Struct(dest)
	if err == nil {
		return true
	}

	logger.Warn("Validation failed", slog.String("error", err.Error()))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationError(w, validationErrs)
	} else {
		response.Error(w, appErrors.ValidationError("invalid input data"))
	}

	return false
}

// PageParams reads ?page and ?pageSize, falling back to 1 and defaultSize.
func PageParams(r *http.Request, defaultSize, maxSize int) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = defaultSize
	}

	return page, min(pageSize, maxSize)
}
