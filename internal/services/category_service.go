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

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest, userID uint) (*models.StockCategory, error)
	List(ctx context.Context, req dto.CategoryFilterRequest) ([]models.StockCategory, *dto.ListMeta, error)
	Update(ctx context.Context, req dto.UpdateCategoryRequest, userID uint) (*models.StockCategory, error)
	Delete(ctx context.Context, req dto.DeleteCategoryRequest, userID uint) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	validator    *validator.Validator
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, v *validator.Validator) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		validator:    v,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest, userID uint) (*models.StockCategory, error) {
	if err := checkCategoryKeys(req.CategoryCode, req.CategoryName); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	category := &models.StockCategory{
		CategoryCode: req.CategoryCode,
		CategoryName: req.CategoryName,
		Status:       models.DocumentStatusActive,
		CreatedBy:    userID,
		ModifiedBy:   userID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrCategoryCodeDuplicate
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "category created", "category_id", category.ID)
	return category, nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, req dto.CategoryFilterRequest) ([]models.StockCategory, *dto.ListMeta, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, nil, validationToAppError(err)
	}

	page, pageSize := normalizePaging(req.Page, req.PageSize)

	categories, total, err := s.categoryRepo.FindWithFilter(repositories.CategoryFilter{
		CategoryID:   req.CategoryID,
		CategoryCode: req.CategoryCode,
		CategoryName: req.CategoryName,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return categories, &dto.ListMeta{Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, req dto.UpdateCategoryRequest, userID uint) (*models.StockCategory, error) {
	if err := checkCategoryKeys(req.CategoryCode, req.CategoryName); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	category := &models.StockCategory{
		BaseModel:    models.BaseModel{ID: req.CategoryID},
		CategoryCode: req.CategoryCode,
		CategoryName: req.CategoryName,
		ModifiedBy:   userID,
	}

	if err := s.categoryRepo.Update(category); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrCategoryNotFound):
			return nil, apperrors.ErrCategoryNotFound
		case apperrors.Is(err, repositories.ErrCategoryAlreadyExists):
			return nil, apperrors.ErrCategoryCodeDuplicate
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "category updated", "category_id", req.CategoryID)
	return updated, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, req dto.DeleteCategoryRequest, userID uint) error {
	if err := s.validator.Validate(req); err != nil {
		return validationToAppError(err)
	}

	if err := s.categoryRepo.SoftDelete(req.CategoryID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "category deleted", "category_id", req.CategoryID)
	return nil
}

func checkCategoryKeys(code, name string) error {
	if code == "" {
		return apperrors.ErrKeyMissingCategoryCode
	}
	if name == "" {
		return apperrors.ErrKeyMissingCategoryName
	}
	return nil
}
