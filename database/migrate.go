package database

import (
	"inventory_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает пул соединений GORM к Postgres
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate применяет авто-миграцию всех моделей приложения
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.StockCategory{},
		&models.Customer{},
	)
}
