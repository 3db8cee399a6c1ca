package repositories

import (
	"errors"
	"strings"

	"inventory_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerCodeExists  = errors.New("customer code already exists")
	ErrCustomerPhoneExists = errors.New("customer phone already exists")
	ErrCustomerGstNoExists = errors.New("customer gst number already exists")
	ErrCustomerEmailExists = errors.New("customer email already exists")
)

type CustomerFilter struct {
	CustomerID   uint
	CustomerCode string
	CustomerName string
	Phone        string
	Page         int
	PageSize     int
}

type CustomerRepository interface {
	Create(customer *models.Customer) error
	FindByID(id uint) (*models.Customer, error)
	FindWithFilter(filter CustomerFilter) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	SoftDelete(id uint) error
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	if err := r.checkDuplicates(customer, 0); err != nil {
		return err
	}
	return r.db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) FindWithFilter(filter CustomerFilter) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{}).
		Where("document_status = ?", models.DocumentStatusActive)

	if filter.CustomerID != 0 {
		query = query.Where("id = ?", filter.CustomerID)
	}
	if filter.CustomerCode != "" {
		query = query.Where("customer_code ILIKE ?", "%"+filter.CustomerCode+"%")
	}
	if filter.CustomerName != "" {
		query = query.Where("customer_name ILIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone ILIKE ?", "%"+filter.Phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	err := query.
		Order("id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerRepositoryImpl) Update(customer *models.Customer) error {
	if err := r.checkDuplicates(customer, customer.ID); err != nil {
		return err
	}

	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND document_status = ?", customer.ID, models.DocumentStatusActive).
		Updates(map[string]interface{}{
			"customer_code":    customer.CustomerCode,
			"customer_name":    customer.CustomerName,
			"phone":            customer.Phone,
			"email":            customer.Email,
			"address":          customer.Address,
			"discount_percent": customer.DiscountPercent,
			"gst_no":           customer.GstNo,
			"gst_address":      customer.GstAddress,
			"outstanding":      customer.Outstanding,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) SoftDelete(id uint) error {
	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND document_status = ?", id, models.DocumentStatusActive).
		Update("document_status", models.DocumentStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// checkDuplicates проверяет уникальные колонки заранее, чтобы отдать
// клиенту доменную ошибку, а не голое нарушение constraint из БД.
// excludeID исключает саму запись при обновлении.
func (r *CustomerRepositoryImpl) checkDuplicates(customer *models.Customer, excludeID uint) error {
	type check struct {
		column string
		value  interface{}
		err    error
	}

	checks := []check{
		{"customer_code", customer.CustomerCode, ErrCustomerCodeExists},
		{"phone", customer.Phone, ErrCustomerPhoneExists},
	}
	if customer.GstNo != nil && strings.TrimSpace(*customer.GstNo) != "" {
		checks = append(checks, check{"gst_no", *customer.GstNo, ErrCustomerGstNoExists})
	}
	if customer.Email != nil && strings.TrimSpace(*customer.Email) != "" {
		checks = append(checks, check{"email", *customer.Email, ErrCustomerEmailExists})
	}

	for _, c := range checks {
		query := r.db.Model(&models.Customer{}).
			Where(c.column+" = ? AND document_status = ?", c.value, models.DocumentStatusActive)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return c.err
		}
	}
	return nil
}
