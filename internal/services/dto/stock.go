package dto

// DTO справочника товаров и категорий

type CreateStockRequest struct {
	StockCode string `json:"stockCode" validate:"required,max=50"`
	StockName string `json:"stockName" validate:"required,max=200"`
}

type UpdateStockRequest struct {
	StockID   uint   `json:"stockId" validate:"required"`
	StockCode string `json:"stockCode" validate:"required,max=50"`
	StockName string `json:"stockName" validate:"required,max=200"`
}

type StockFilterRequest struct {
	StockID   uint   `json:"stockId"`
	StockCode string `json:"stockCode"`
	StockName string `json:"stockName"`
	Page      int    `json:"page" validate:"omitempty,min=1"`
	PageSize  int    `json:"pageSize" validate:"omitempty,min=1,max=500"`
}

type DeleteStockRequest struct {
	StockID uint `json:"stockId" validate:"required"`
}

type CreateCategoryRequest struct {
	CategoryCode string `json:"categoryCode" validate:"required,max=50"`
	CategoryName string `json:"categoryName" validate:"required,max=200"`
}

type UpdateCategoryRequest struct {
	CategoryID   uint   `json:"categoryId" validate:"required"`
	CategoryCode string `json:"categoryCode" validate:"required,max=50"`
	CategoryName string `json:"categoryName" validate:"required,max=200"`
}

type CategoryFilterRequest struct {
	CategoryID   uint   `json:"categoryId"`
	CategoryCode string `json:"categoryCode"`
	CategoryName string `json:"categoryName"`
	Page         int    `json:"page" validate:"omitempty,min=1"`
	PageSize     int    `json:"pageSize" validate:"omitempty,min=1,max=500"`
}

type DeleteCategoryRequest struct {
	CategoryID uint `json:"categoryId" validate:"required"`
}

// ListMeta - пагинация в ответах списков
type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
