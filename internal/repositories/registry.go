package repositories

import "gorm.io/gorm"

// Repositories - контейнер всех репозиториев приложения
type Repositories struct {
	User     UserRepository
	Stock    StockRepository
	Category CategoryRepository
	Customer CustomerRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Stock:    NewStockRepository(db),
		Category: NewCategoryRepository(db),
		Customer: NewCustomerRepository(db),
	}
}
