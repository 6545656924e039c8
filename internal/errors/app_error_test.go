package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		build  func(string) *errors.AppError
		code   string
		status int
	}{
		{errors.ValidationError, errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.NotFoundError, errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.GoneError, errors.ErrCodeGone, http.StatusGone},
		{errors.DatabaseError, errors.ErrCodeDatabaseError, http.StatusInternalServerError},
		{errors.ThirdPartyError, errors.ErrCodeThirdPartyError, http.StatusBadGateway},
		{errors.PayloadTooLargeError, errors.ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{errors.UnsupportedMediaError, errors.ErrCodeUnsupportedMedia, http.StatusUnsupportedMediaType},
		{errors.TooManyRequestsError, errors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run("Success - "+tc.code, func(t *testing.T) {
			appErr := tc.build("message")

			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.status, appErr.StatusCode)
			assert.Equal(t, "message", appErr.Error())
		})
	}

	t.Run("Success - Unknown Code Is Internal", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, errors.New("TEAPOT", "short and stout").StatusCode)
	})
}

func TestIsAppError(t *testing.T) {
	cause := stdErrors.New("mongo: no reachable servers")
	appErr := errors.DatabaseError("Failed to load cart").WithError(cause).WithRetryAfter(time.Second)

	t.Run("Success - Wrapped", func(t *testing.T) {
		found, ok := errors.IsAppError(fmt.Errorf("cart store: %w", appErr))

		require.True(t, ok)
		assert.Same(t, appErr, found)
		assert.ErrorIs(t, found, cause)
		assert.Equal(t, time.Second, found.RetryAfter)
	})

	t.Run("Failure - Plain Error", func(t *testing.T) {
		found, ok := errors.IsAppError(cause)

		assert.False(t, ok)
		assert.Nil(t, found)
	})
}
