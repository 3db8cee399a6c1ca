package services

import (
	"context"
	"strings"
	"testing"

	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/services/dto"
	"inventory_backend/internal/validator"
	"inventory_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uint]*models.Customer{}, nextID: 1}
}

func (r *fakeCustomerRepo) checkDuplicates(c *models.Customer, excludeID uint) error {
	for _, existing := range r.customers {
		if existing.Status != models.DocumentStatusActive || existing.ID == excludeID {
			continue
		}
		switch {
		case existing.CustomerCode == c.CustomerCode:
			return repositories.ErrCustomerCodeExists
		case existing.Phone == c.Phone:
			return repositories.ErrCustomerPhoneExists
		case c.GstNo != nil && existing.GstNo != nil && *existing.GstNo == *c.GstNo:
			return repositories.ErrCustomerGstNoExists
		case c.Email != nil && existing.Email != nil && *existing.Email == *c.Email:
			return repositories.ErrCustomerEmailExists
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Create(c *models.Customer) error {
	if err := r.checkDuplicates(c, 0); err != nil {
		return err
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) FindByID(id uint) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.Status != models.DocumentStatusActive {
		return nil, repositories.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCustomerRepo) FindWithFilter(filter repositories.CustomerFilter) ([]models.Customer, int64, error) {
	var out []models.Customer
	for _, c := range r.customers {
		if c.Status == models.DocumentStatusActive {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) Update(c *models.Customer) error {
	existing, ok := r.customers[c.ID]
	if !ok || existing.Status != models.DocumentStatusActive {
		return repositories.ErrCustomerNotFound
	}
	if err := r.checkDuplicates(c, c.ID); err != nil {
		return err
	}
	clone := *c
	clone.Status = existing.Status
	r.customers[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) SoftDelete(id uint) error {
	c, ok := r.customers[id]
	if !ok || c.Status != models.DocumentStatusActive {
		return repositories.ErrCustomerNotFound
	}
	c.Status = models.DocumentStatusDeleted
	return nil
}

func newTestCustomerService(repo repositories.CustomerRepository) CustomerService {
	return NewCustomerService(repo, validator.New())
}

func validCustomerReq(code, phone string) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		CustomerCode: code,
		CustomerName: "Acme",
		Phone:        phone,
	}
}

func TestCustomerService_DuplicateMapping(t *testing.T) {
	t.Parallel()

	repo := newFakeCustomerRepo()
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	gst := "22AAAAA0000A1Z5"
	email := "acme@b.com"
	first := validCustomerReq("C-1", "111")
	first.GstNo = &gst
	first.Email = &email

	_, err := svc.Create(ctx, first, 7)
	require.NoError(t, err)

	gstDup := validCustomerReq("C-3", "333")
	gstDup.GstNo = &gst
	emailDup := validCustomerReq("C-4", "444")
	emailDup.Email = &email

	cases := []struct {
		name string
		req  dto.CreateCustomerRequest
		want error
	}{
		{"code", validCustomerReq("C-1", "222"), apperrors.ErrCustomerCodeDuplicate},
		{"phone", validCustomerReq("C-2", "111"), apperrors.ErrCustomerPhoneDuplicate},
		{"gst", gstDup, apperrors.ErrCustomerGstNoDuplicate},
		{"email", emailDup, apperrors.ErrCustomerEmailDuplicate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req, 7)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCustomerService_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestCustomerService(newFakeCustomerRepo())
	ctx := context.Background()

	// GST номер строго 15 символов
	badGst := "TOO-SHORT"
	req := validCustomerReq("C-1", "111")
	req.GstNo = &badGst

	_, err := svc.Create(ctx, req, 7)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Адрес ограничен 5000 символами
	req = validCustomerReq("C-2", "222")
	req.Address = strings.Repeat("x", 5001)

	_, err = svc.Create(ctx, req, 7)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestCustomerService_UpdateKeepsOutstanding(t *testing.T) {
	t.Parallel()

	repo := newFakeCustomerRepo()
	svc := newTestCustomerService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCustomerReq("C-1", "111"), 7)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, dto.UpdateCustomerRequest{
		CustomerID:   created.ID,
		CustomerCode: "C-1",
		CustomerName: "Acme Renamed",
		Phone:        "111",
		Outstanding:  150.5,
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", updated.CustomerName)
	assert.Equal(t, 150.5, updated.Outstanding)
}
