package handlers

import (
	"inventory_backend/internal/logger"
	"inventory_backend/internal/middleware"
	"inventory_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON привязывает тело запроса без валидации структуры: валидация
// DTO выполняется в сервисах, где отсутствующие ключи auth flow получают
// доменные коды KEY_MISSING_* вместо общей ошибки валидации
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"code", string(appErr.Code),
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// GetAndAuthorizeUserID достает ID пользователя, положенный auth gate.
// Отсутствие ID за защищенным маршрутом - ошибка конфигурации маршрутов.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (uint, bool) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrNoTokenNoAuthorisation)
		return 0, false
	}
	return userID, true
}
