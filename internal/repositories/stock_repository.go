package repositories

import (
	"errors"

	"inventory_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStockNotFound      = errors.New("stock not found")
	ErrStockAlreadyExists = errors.New("stock already exists")
)

type StockFilter struct {
	StockID   uint
	StockCode string
	StockName string
	Page      int
	PageSize  int
}

type StockRepository interface {
	Create(stock *models.Stock) error
	FindByID(id uint) (*models.Stock, error)
	FindWithFilter(filter StockFilter) ([]models.Stock, int64, error)
	Update(stock *models.Stock) error
	SoftDelete(id, userID uint) error
}

type StockRepositoryImpl struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &StockRepositoryImpl{db: db}
}

func (r *StockRepositoryImpl) Create(stock *models.Stock) error {
	var count int64
	err := r.db.Model(&models.Stock{}).
		Where("stock_code = ? AND document_status = ?", stock.StockCode, models.DocumentStatusActive).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStockAlreadyExists
	}
	return r.db.Create(stock).Error
}

func (r *StockRepositoryImpl) FindByID(id uint) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *StockRepositoryImpl) FindWithFilter(filter StockFilter) ([]models.Stock, int64, error) {
	query := r.db.Model(&models.Stock{}).
		Where("document_status = ?", models.DocumentStatusActive)

	if filter.StockID != 0 {
		query = query.Where("id = ?", filter.StockID)
	}
	if filter.StockCode != "" {
		query = query.Where("stock_code ILIKE ?", "%"+filter.StockCode+"%")
	}
	if filter.StockName != "" {
		query = query.Where("stock_name ILIKE ?", "%"+filter.StockName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stocks []models.Stock
	err := query.
		Order("id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&stocks).Error
	if err != nil {
		return nil, 0, err
	}
	return stocks, total, nil
}

func (r *StockRepositoryImpl) Update(stock *models.Stock) error {
	result := r.db.Model(&models.Stock{}).
		Where("id = ? AND document_status = ?", stock.ID, models.DocumentStatusActive).
		Updates(map[string]interface{}{
			"stock_code":  stock.StockCode,
			"stock_name":  stock.StockName,
			"modified_by": stock.ModifiedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockNotFound
	}
	return nil
}

func (r *StockRepositoryImpl) SoftDelete(id, userID uint) error {
	result := r.db.Model(&models.Stock{}).
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		Updates(map[string]interface{}{
			"document_status": models.DocumentStatusDeleted,
			"modified_by":     userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockNotFound
	}
	return nil
}
