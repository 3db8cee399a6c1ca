package handlers

import (
	"net/http"

	"inventory_backend/internal/services"
	"inventory_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	*BaseHandler
	stockService    services.StockService
	categoryService services.CategoryService
}

func NewStockHandler(base *BaseHandler, stockService services.StockService, categoryService services.CategoryService) *StockHandler {
	return &StockHandler{
		BaseHandler:     base,
		stockService:    stockService,
		categoryService: categoryService,
	}
}

// RegisterRoutes регистрирует маршруты справочника товаров и категорий.
// Вся группа /master закрыта auth gate на уровне routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.POST("/create_stock", h.CreateStock)
		stock.POST("/get_stock", h.GetStock)
		stock.PUT("/update_stock", h.UpdateStock)
		stock.DELETE("/delete_stock", h.DeleteStock)

		stock.POST("/create_category", h.CreateCategory)
		stock.POST("/get_category", h.GetCategory)
		stock.PUT("/update_category", h.UpdateCategory)
		stock.DELETE("/delete_category", h.DeleteCategory)
	}
}

func (h *StockHandler) CreateStock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	stock, err := h.stockService.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": stock})
}

func (h *StockHandler) GetStock(c *gin.Context) {
	var req dto.StockFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	stocks, meta, err := h.stockService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stocks, "meta": meta})
}

func (h *StockHandler) UpdateStock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	stock, err := h.stockService.Update(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stock})
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.stockService.Delete(c.Request.Context(), req, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted"})
}

func (h *StockHandler) CreateCategory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (h *StockHandler) GetCategory(c *gin.Context) {
	var req dto.CategoryFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	categories, meta, err := h.categoryService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories, "meta": meta})
}

func (h *StockHandler) UpdateCategory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (h *StockHandler) DeleteCategory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), req, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
