package services

import (
	"inventory_backend/internal/auth"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/validator"
)

// ServiceContainer - контейнер всех сервисов приложения
type ServiceContainer struct {
	Auth     AuthService
	Stock    StockService
	Category CategoryService
	Customer CustomerService
}

// NewServiceContainer собирает сервисы поверх репозиториев
func NewServiceContainer(
	repos *repositories.Repositories,
	tokens *auth.TokenService,
	v *validator.Validator,
	bcryptCost int,
) *ServiceContainer {
	return &ServiceContainer{
		Auth:     NewAuthService(repos.User, tokens, bcryptCost),
		Stock:    NewStockService(repos.Stock, v),
		Category: NewCategoryService(repos.Category, v),
		Customer: NewCustomerService(repos.Customer, v),
	}
}
