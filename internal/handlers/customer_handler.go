package handlers

import (
	"net/http"

	"inventory_backend/internal/services"
	"inventory_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	*BaseHandler
	customerService services.CustomerService
}

func NewCustomerHandler(base *BaseHandler, customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     base,
		customerService: customerService,
	}
}

func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customer")
	{
		customer.POST("/create_customer", h.CreateCustomer)
		customer.POST("/get_customer", h.GetCustomer)
		customer.PUT("/update_customer", h.UpdateCustomer)
		customer.DELETE("/delete_customer", h.DeleteCustomer)
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": customer})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	var req dto.CustomerFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customers, meta, err := h.customerService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers, "meta": meta})
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.DeleteCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
