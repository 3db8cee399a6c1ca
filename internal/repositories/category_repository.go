package repositories

import (
	"errors"

	"inventory_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type CategoryFilter struct {
	CategoryID   uint
	CategoryCode string
	CategoryName string
	Page         int
	PageSize     int
}

type CategoryRepository interface {
	Create(category *models.StockCategory) error
	FindByID(id uint) (*models.StockCategory, error)
	FindWithFilter(filter CategoryFilter) ([]models.StockCategory, int64, error)
	Update(category *models.StockCategory) error
	SoftDelete(id, userID uint) error
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.StockCategory) error {
	var count int64
	err := r.db.Model(&models.StockCategory{}).
		Where("category_code = ? AND document_status = ?", category.CategoryCode, models.DocumentStatusActive).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryAlreadyExists
	}
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(id uint) (*models.StockCategory, error) {
	var category models.StockCategory
	err := r.db.
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindWithFilter(filter CategoryFilter) ([]models.StockCategory, int64, error) {
	query := r.db.Model(&models.StockCategory{}).
		Where("document_status = ?", models.DocumentStatusActive)

	if filter.CategoryID != 0 {
		query = query.Where("id = ?", filter.CategoryID)
	}
	if filter.CategoryCode != "" {
		query = query.Where("category_code ILIKE ?", "%"+filter.CategoryCode+"%")
	}
	if filter.CategoryName != "" {
		query = query.Where("category_name ILIKE ?", "%"+filter.CategoryName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.StockCategory
	err := query.
		Order("id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *CategoryRepositoryImpl) Update(category *models.StockCategory) error {
	result := r.db.Model(&models.StockCategory{}).
		Where("id = ? AND document_status = ?", category.ID, models.DocumentStatusActive).
		Updates(map[string]interface{}{
			"category_code": category.CategoryCode,
			"category_name": category.CategoryName,
			"modified_by":   category.ModifiedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) SoftDelete(id, userID uint) error {
	result := r.db.Model(&models.StockCategory{}).
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		Updates(map[string]interface{}{
			"document_status": models.DocumentStatusDeleted,
			"modified_by":     userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
