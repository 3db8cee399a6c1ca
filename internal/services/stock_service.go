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

const (
	defaultPage     = 1
	defaultPageSize = 50
)

type StockService interface {
	Create(ctx context.Context, req dto.CreateStockRequest, userID uint) (*models.Stock, error)
	List(ctx context.Context, req dto.StockFilterRequest) ([]models.Stock, *dto.ListMeta, error)
	Update(ctx context.Context, req dto.UpdateStockRequest, userID uint) (*models.Stock, error)
	Delete(ctx context.Context, req dto.DeleteStockRequest, userID uint) error
}

type StockServiceImpl struct {
	stockRepo repositories.StockRepository
	validator *validator.Validator
}

func NewStockService(stockRepo repositories.StockRepository, v *validator.Validator) StockService {
	return &StockServiceImpl{
		stockRepo: stockRepo,
		validator: v,
	}
}

func (s *StockServiceImpl) Create(ctx context.Context, req dto.CreateStockRequest, userID uint) (*models.Stock, error) {
	if err := checkStockKeys(req.StockCode, req.StockName); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	stock := &models.Stock{
		StockCode:  req.StockCode,
		StockName:  req.StockName,
		Status:     models.DocumentStatusActive,
		CreatedBy:  userID,
		ModifiedBy: userID,
	}

	if err := s.stockRepo.Create(stock); err != nil {
		if apperrors.Is(err, repositories.ErrStockAlreadyExists) {
			return nil, apperrors.ErrStockCodeDuplicate
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "stock created", "stock_id", stock.ID, "stock_code", stock.StockCode)
	return stock, nil
}

func (s *StockServiceImpl) List(ctx context.Context, req dto.StockFilterRequest) ([]models.Stock, *dto.ListMeta, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, nil, validationToAppError(err)
	}

	page, pageSize := normalizePaging(req.Page, req.PageSize)

	stocks, total, err := s.stockRepo.FindWithFilter(repositories.StockFilter{
		StockID:   req.StockID,
		StockCode: req.StockCode,
		StockName: req.StockName,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return stocks, &dto.ListMeta{Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *StockServiceImpl) Update(ctx context.Context, req dto.UpdateStockRequest, userID uint) (*models.Stock, error) {
	if err := checkStockKeys(req.StockCode, req.StockName); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	stock := &models.Stock{
		BaseModel:  models.BaseModel{ID: req.StockID},
		StockCode:  req.StockCode,
		StockName:  req.StockName,
		ModifiedBy: userID,
	}

	if err := s.stockRepo.Update(stock); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrStockNotFound):
			return nil, apperrors.ErrStockNotFound
		case apperrors.Is(err, repositories.ErrStockAlreadyExists):
			return nil, apperrors.ErrStockCodeDuplicate
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.stockRepo.FindByID(req.StockID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "stock updated", "stock_id", req.StockID)
	return updated, nil
}

func (s *StockServiceImpl) Delete(ctx context.Context, req dto.DeleteStockRequest, userID uint) error {
	if err := s.validator.Validate(req); err != nil {
		return validationToAppError(err)
	}

	if err := s.stockRepo.SoftDelete(req.StockID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrStockNotFound) {
			return apperrors.ErrStockNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "stock deleted", "stock_id", req.StockID)
	return nil
}

// checkStockKeys проверяет обязательные ключи до структурной валидации:
// отсутствующее поле отдает доменный код, а не общую ошибку валидации
func checkStockKeys(code, name string) error {
	if code == "" {
		return apperrors.ErrKeyMissingStockCode
	}
	if name == "" {
		return apperrors.ErrKeyMissingStockName
	}
	return nil
}

// validationToAppError переводит ошибку валидатора в AppError с картой
// полей в details
func validationToAppError(err error) error {
	var vErr *validator.ValidationError
	if apperrors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Errors)
	}
	return apperrors.InternalError(err)
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
