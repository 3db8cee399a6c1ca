package middleware

import (
	"strings"

	"inventory_backend/internal/auth"
	"inventory_backend/internal/logger"
	"inventory_backend/internal/repositories"
	"inventory_backend/pkg/apperrors"
	"inventory_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Ключи, под которыми auth gate кладет ID и роль пользователя в gin.Context
var (
	userIDKey = string(contextkeys.UserIDContextKey)
	roleKey   = string(contextkeys.RoleContextKey)
)

// AuthMiddleware - шлюз аутентификации. Токен декодируется без проверки,
// чтобы узнать, ЧЕЙ это токен, затем верифицируется публичным ключом
// ACCESS именно этого пользователя. Истекший токен дает 403 (клиент
// уходит в re-login/refresh), любой другой отказ верификации - 401.
func AuthMiddleware(tokens *auth.TokenService, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, appErr := extractToken(c)
		if appErr != nil {
			apperrors.HandleError(c, appErr)
			return
		}

		claimed, err := tokens.Decode(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		publicKey, err := userRepo.FindAccessPublicKey(claimed.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrUserNotAuthorised)
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		verified, err := tokens.Verify(tokenStr, publicKey)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrRevokedTokenProvided)
				return
			}
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), verified.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(userIDKey, verified.UserID)
		c.Set(roleKey, verified.Role)
		c.Next()
	}
}

// extractToken достает токен из Authorization (строго схема Bearer)
// или из x-access-token (голый токен, префикс Bearer допускается)
func extractToken(c *gin.Context) (string, *apperrors.AppError) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", apperrors.ErrInvalidTokenFormat
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return "", apperrors.ErrInvalidTokenFormat
		}
		return token, nil
	}

	if header := c.GetHeader("x-access-token"); header != "" {
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			return "", apperrors.ErrInvalidTokenFormat
		}
		return token, nil
	}

	return "", apperrors.ErrNoTokenNoAuthorisation
}

// GetUserID извлекает ID аутентифицированного пользователя из контекста,
// 0 если auth gate не отработал
func GetUserID(c *gin.Context) uint {
	val, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	id, ok := val.(uint)
	if !ok {
		return 0
	}
	return id
}

// GetUserRole извлекает роль аутентифицированного пользователя
func GetUserRole(c *gin.Context) string {
	val, exists := c.Get(roleKey)
	if !exists {
		return ""
	}
	role, ok := val.(string)
	if !ok {
		return ""
	}
	return role
}
