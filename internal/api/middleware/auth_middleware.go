package middleware

import (
	"context"
	"crypto/subtle"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey  = contextKey("user")
	TokenContextKey = contextKey("token")

	APIKeyHeader = "X-API-Key"
)

// AuthMiddleware verifies HMAC-signed bearer tokens issued by the storefront's
// auth provider. Sessions are never minted here.
type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

func bearerToken(header string) (string, *errors.AppError) {
	if header == "" {
		return "", errors.UnauthorizedError("Authorization header is required")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.UnauthorizedError("Invalid authorization format")
	}

	return strings.TrimSpace(token), nil
}

func (m *AuthMiddleware) verify(raw string) (*models.Claims, *errors.AppError) {
	claims := &models.Claims{}

	_, err := m.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return m.jwtKey, nil })

	switch {
	case stdErrors.Is(err, jwt.ErrTokenExpired):
		return nil, errors.UnauthorizedError("Token has expired").WithError(err)
	case err != nil:
		return nil, errors.UnauthorizedError("Invalid or expired token").WithError(err)
	case claims.UserID == "":
		return nil, errors.UnauthorizedError("Invalid token")
	}

	return claims, nil
}

// Authenticate stores the verified claims, the raw token and a user-scoped
// logger on the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		raw, appErr := bearerToken(r.Header.Get("Authorization"))
		if appErr == nil {
			var claims *models.Claims
			if claims, appErr = m.verify(raw); appErr == nil {
				logger = logger.With(slog.String("userId", claims.UserID))

				ctx := context.WithValue(r.Context(), UserContextKey, claims)
				ctx = context.WithValue(ctx, TokenContextKey, raw)
				ctx = context.WithValue(ctx, LoggerKey, logger)

				next.ServeHTTP(w, r.WithContext(ctx))

				return
			}
		}

		logger.Warn("Authentication failed", slog.String("reason", appErr.Message))
		response.Error(w, appErr)
	}
}

// RequireAdmin authenticates the request and rejects callers without the admin role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			LoggerFromContext(r.Context()).Warn("Admin role required")
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	}))
}

// RequireAPIKey guards machine-to-machine routes such as scheduled jobs.
// An empty key disables the route.
func RequireAPIKey(key string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(APIKeyHeader)

		if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			LoggerFromContext(r.Context()).Warn("Invalid API key")
			response.Error(w, errors.UnauthorizedError("Invalid API key"))

			return
		}

		next.ServeHTTP(w, r)
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok && claims != nil
}

// ShopperFromContext returns the authenticated caller and their bearer token.
func ShopperFromContext(ctx context.Context) (models.Shopper, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return models.Shopper{}, false
	}

	token, _ := ctx.Value(TokenContextKey).(string)

	return models.Shopper{Claims: claims, Token: token}, true
}
