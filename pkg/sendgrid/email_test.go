package sendgrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "SG.test-api-key"
	testFromEmail = "orders@supplements.example.com"
	testFromName  = "Supplements Store"
)

type mailPayload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// newTestService points a real client at an httptest server that records the
// decoded payload and answers with status.
func newTestService(t *testing.T, status int) (sendgrid.EmailService, *mailPayload, *httptest.Server) {
	t.Helper()

	captured := &mailPayload{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"errors":[]}`))
	}))
	t.Cleanup(server.Close)

	svc := sendgrid.NewEmailService(config.SendGrid{
		APIKey:    testAPIKey,
		FromEmail: testFromEmail,
		FromName:  testFromName,
		Host:      server.URL + "/",
	})

	return svc, captured, server
}

func TestEmailService_Send(t *testing.T) {
	t.Run("Success - Reminder With HTML Only", func(t *testing.T) {
		// Arrange
		svc, captured, _ := newTestService(t, http.StatusAccepted)
		req := &models.EmailNotificationRequest{
			To:          "jane@example.com",
			Subject:     "You left items in your cart",
			HTMLContent: "<p>Your whey protein is waiting</p>",
		}

		// Act
		err := svc.Send(t.Context(), req)

		// Assert
		require.NoError(t, err)
		require.Len(t, captured.Personalizations, 1)
		assert.Equal(t, "jane@example.com", captured.Personalizations[0].To[0]["email"])
		assert.Equal(t, "You left items in your cart", captured.Personalizations[0].Subject)
		assert.Equal(t, testFromEmail, captured.From["email"])
		assert.Equal(t, testFromName, captured.From["name"])
		require.Len(t, captured.Content, 1)
		assert.Equal(t, "text/html", captured.Content[0].Type)
	})

	t.Run("Success - Text Part Comes First", func(t *testing.T) {
		// Arrange
		svc, captured, _ := newTestService(t, http.StatusAccepted)
		req := &models.EmailNotificationRequest{
			To:          "jane@example.com",
			Subject:     "You left items in your cart",
			Content:     "Your cart is waiting",
			HTMLContent: "<p>Your cart is waiting</p>",
		}

		// Act
		err := svc.Send(t.Context(), req)

		// Assert
		require.NoError(t, err)
		require.Len(t, captured.Content, 2)
		assert.Equal(t, "text/plain", captured.Content[0].Type)
		assert.Equal(t, "text/html", captured.Content[1].Type)
	})

	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run("Failure - API Status "+http.StatusText(status), func(t *testing.T) {
			// Arrange
			svc, _, _ := newTestService(t, status)

			// Act
			err := svc.Send(t.Context(), &models.EmailNotificationRequest{To: "jane@example.com", Subject: "s", Content: "c"})

			// Assert
			var statusErr *sendgrid.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, status, statusErr.StatusCode)
			assert.JSONEq(t, `{"errors":[]}`, statusErr.Body)
		})
	}

	t.Run("Failure - Unreachable API", func(t *testing.T) {
		// Arrange
		svc, _, server := newTestService(t, http.StatusAccepted)
		server.Close()

		// Act
		err := svc.Send(t.Context(), &models.EmailNotificationRequest{To: "jane@example.com", Subject: "s", Content: "c"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sendgrid request to jane@example.com failed")
	})
}
