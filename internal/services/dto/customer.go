package dto

type CreateCustomerRequest struct {
	CustomerCode    string  `json:"customerCode" validate:"required,max=50"`
	CustomerName    string  `json:"customerName" validate:"required,max=200"`
	Phone           string  `json:"phone" validate:"required,max=20"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         string  `json:"address" validate:"max=5000"`
	DiscountPercent float64 `json:"discountPercent" validate:"min=0,max=100"`
	GstNo           *string `json:"gstNo" validate:"omitempty,len=15"`
	GstAddress      string  `json:"gstAddress" validate:"max=5000"`
}

type UpdateCustomerRequest struct {
	CustomerID      uint    `json:"customerId" validate:"required"`
	CustomerCode    string  `json:"customerCode" validate:"required,max=50"`
	CustomerName    string  `json:"customerName" validate:"required,max=200"`
	Phone           string  `json:"phone" validate:"required,max=20"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         string  `json:"address" validate:"max=5000"`
	DiscountPercent float64 `json:"discountPercent" validate:"min=0,max=100"`
	GstNo           *string `json:"gstNo" validate:"omitempty,len=15"`
	GstAddress      string  `json:"gstAddress" validate:"max=5000"`
	Outstanding     float64 `json:"outstanding"`
}

type CustomerFilterRequest struct {
	CustomerID   uint   `json:"customerId"`
	CustomerCode string `json:"customerCode"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Page         int    `json:"page" validate:"omitempty,min=1"`
	PageSize     int    `json:"pageSize" validate:"omitempty,min=1,max=500"`
}

type DeleteCustomerRequest struct {
	CustomerID uint `json:"customerId" validate:"required"`
}
