package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and rejects the request when it
// is missing or invalid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.resolveUserID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the current user when a valid token is
// present and treats the request as anonymous otherwise. Listing and search
// endpoints use it so public recipes stay reachable without a login.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, err := m.resolveUserID(c); err == nil {
			deliverycontext.SetUserID(c, userID)
		}

		return next(c)
	}
}

// resolveUserID extracts and validates the bearer token, returning the user
// ID carried in its subject claim. It never writes to the response.
func (m *AuthMiddleware) resolveUserID(c echo.Context) (int64, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return 0, errors.New("Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return 0, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("Failed to parse token claims")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("User ID missing from token")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, errors.New("Invalid user ID format in token")
	}

	return userID, nil
}
