package services

import (
	"context"

	"inventory_backend/internal/logger"
	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/services/dto"
	"inventory_backend/internal/validator"
	"inventory_backend/pkg/apperrors"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest, userID uint) (*models.Customer, error)
	List(ctx context.Context, req dto.CustomerFilterRequest) ([]models.Customer, *dto.ListMeta, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, userID uint) (*models.Customer, error)
	Delete(ctx context.Context, req dto.DeleteCustomerRequest) error
}

type CustomerServiceImpl struct {
	customerRepo repositories.CustomerRepository
	validator    *validator.Validator
}

func NewCustomerService(customerRepo repositories.CustomerRepository, v *validator.Validator) CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		validator:    v,
	}
}

func (s *CustomerServiceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest, userID uint) (*models.Customer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	customer := &models.Customer{
		CustomerCode:    req.CustomerCode,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		DiscountPercent: req.DiscountPercent,
		GstNo:           req.GstNo,
		GstAddress:      req.GstAddress,
		Status:          models.DocumentStatusActive,
		CreatedBy:       userID,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, mapCustomerRepoError(err)
	}

	logger.CtxInfo(ctx, "customer created", "customer_id", customer.ID)
	return customer, nil
}

func (s *CustomerServiceImpl) List(ctx context.Context, req dto.CustomerFilterRequest) ([]models.Customer, *dto.ListMeta, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, nil, validationToAppError(err)
	}

	page, pageSize := normalizePaging(req.Page, req.PageSize)

	customers, total, err := s.customerRepo.FindWithFilter(repositories.CustomerFilter{
		CustomerID:   req.CustomerID,
		CustomerCode: req.CustomerCode,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return customers, &dto.ListMeta{Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *CustomerServiceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, userID uint) (*models.Customer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	customer := &models.Customer{
		BaseModel:       models.BaseModel{ID: req.CustomerID},
		CustomerCode:    req.CustomerCode,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		DiscountPercent: req.DiscountPercent,
		GstNo:           req.GstNo,
		GstAddress:      req.GstAddress,
		Outstanding:     req.Outstanding,
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, mapCustomerRepoError(err)
	}

	updated, err := s.customerRepo.FindByID(req.CustomerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "customer updated", "customer_id", req.CustomerID)
	return updated, nil
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, req dto.DeleteCustomerRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return validationToAppError(err)
	}

	if err := s.customerRepo.SoftDelete(req.CustomerID); err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "customer deleted", "customer_id", req.CustomerID)
	return nil
}

// mapCustomerRepoError переводит sentinel ошибки репозитория в доменные
// коды конфликтов уникальности
func mapCustomerRepoError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrCustomerNotFound):
		return apperrors.ErrCustomerNotFound
	case apperrors.Is(err, repositories.ErrCustomerCodeExists):
		return apperrors.ErrCustomerCodeDuplicate
	case apperrors.Is(err, repositories.ErrCustomerPhoneExists):
		return apperrors.ErrCustomerPhoneDuplicate
	case apperrors.Is(err, repositories.ErrCustomerGstNoExists):
		return apperrors.ErrCustomerGstNoDuplicate
	case apperrors.Is(err, repositories.ErrCustomerEmailExists):
		return apperrors.ErrCustomerEmailDuplicate
	}
	return apperrors.InternalError(err)
}
