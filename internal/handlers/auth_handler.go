package handlers

import (
	"net/http"

	"inventory_backend/internal/middleware"
	"inventory_backend/internal/services"
	"inventory_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	authGate    gin.HandlerFunc
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, authGate gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		authGate:    authGate,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// sign_up, login и refresh_token публичны; reset_password и rotate_keys
// требуют валидного access токена.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/sign_up", h.SignUp)
		auth.POST("/login", h.Login)
		auth.POST("/refresh_token", h.RefreshToken)
	}

	protected := rg.Group("/auth")
	protected.Use(h.authGate)
	{
		protected.POST("/reset_password", h.ResetPassword)
		protected.POST("/rotate_keys", h.RotateKeys)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindJSON(c, &req) {
		return
	}

	// При саморегистрации создателя нет; за auth gate это создание
	// пользователя администратором
	var createdBy *uint
	if userID := middleware.GetUserID(c); userID != 0 {
		createdBy = &userID
	}

	response, err := h.authService.SignUp(c.Request.Context(), req, createdBy)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) RotateKeys(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.authService.RotateKeys(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
