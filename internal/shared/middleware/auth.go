package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/response"
	"library-api/pkg/jwt"
)

const (
	// ContextKeyAuthorID - author_id của token, set bởi AuthMiddleware
	ContextKeyAuthorID = "author_id"
	// ContextKeyAuthorName - name claim của token
	ContextKeyAuthorName = "author_name"
)

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware - xác thực "Authorization: Bearer <token>", 401 nếu thiếu/sai/hết hạn.
// Token hết hạn có message riêng để client biết cần login lại.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		scheme, token, ok := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := validator.ValidateAccessToken(token)
		if err != nil {
			log.Debug().
				Str("request_id", c.GetString(ContextKeyRequestID)).
				Err(err).
				Msg("rejected access token")
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Unauthorized(c, "Token has expired")
			} else {
				response.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		// 4. Set author vào context
		c.Set(ContextKeyAuthorID, claims.AuthorID)
		c.Set(ContextKeyAuthorName, claims.Name)

		c.Next()
	}
}

// GetAuthorID returns the authenticated author id, if any.
func GetAuthorID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextKeyAuthorID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
