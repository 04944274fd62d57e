package partner

import (
	"context"
	"testing"

	"github.com/gemba/backend/internal/domain/partner"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockCustomerRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockVendorRepo struct{ mock.Mock }

func (m *mockVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *mockVendorRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *mockVendorRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *mockVendorRepo) FindFavoritesForTenant(ctx context.Context, tenantID uuid.UUID) ([]partner.Vendor, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *mockVendorRepo) Save(ctx context.Context, vendor *partner.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *mockVendorRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockVendorRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestCustomerServiceCreate(t *testing.T) {
	t.Run("registers a customer with full contact details", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		service := NewCustomerService(repo)
		ctx := context.Background()
		tenantID := uuid.New()

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{
			Name:          "株式会社青山建設",
			Phone:         "03-1234-5678",
			Email:         "somu@aoyama-kensetsu.example.jp",
			Address:       "東京都港区青山1-2-3",
			ContactPerson: "青山部長",
		})

		require.NoError(t, err)
		assert.Equal(t, "株式会社青山建設", resp.Name)
		assert.Equal(t, "東京都港区青山1-2-3", resp.Address)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		service := NewCustomerService(repo)

		_, err := service.Create(context.Background(), uuid.New(), CreateCustomerRequest{
			Name:  "株式会社青山建設",
			Email: "not-an-email",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceList(t *testing.T) {
	repo := new(mockCustomerRepo)
	service := NewCustomerService(repo)
	ctx := context.Background()
	tenantID := uuid.New()

	customer, err := partner.NewCustomer(tenantID, "株式会社青山建設", "", "")
	require.NoError(t, err)

	repo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.OrderBy == "name" && filter.OrderDir == "asc"
	})).Return([]partner.Customer{*customer}, nil)
	repo.On("CountForTenant", ctx, tenantID, mock.Anything).Return(int64(1), nil)

	responses, total, err := service.List(ctx, tenantID, CustomerListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "株式会社青山建設", responses[0].Name)
}

func TestVendorServiceToggleFavorite(t *testing.T) {
	repo := new(mockVendorRepo)
	service := NewVendorService(repo)
	ctx := context.Background()
	tenantID := uuid.New()

	vendor, err := partner.NewVendor(tenantID, "山田電材", "材料", "", "")
	require.NoError(t, err)

	repo.On("FindByIDForTenant", ctx, tenantID, vendor.ID).Return(vendor, nil)
	repo.On("Save", ctx, vendor).Return(nil)

	resp, err := service.ToggleFavorite(ctx, tenantID, vendor.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsFavorite)

	resp, err = service.ToggleFavorite(ctx, tenantID, vendor.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsFavorite)
}

func TestVendorServiceListFavorites(t *testing.T) {
	repo := new(mockVendorRepo)
	service := NewVendorService(repo)
	ctx := context.Background()
	tenantID := uuid.New()

	vendor, err := partner.NewVendor(tenantID, "山田電材", "材料", "", "")
	require.NoError(t, err)
	vendor.ToggleFavorite()

	repo.On("FindFavoritesForTenant", ctx, tenantID).Return([]partner.Vendor{*vendor}, nil)

	responses, err := service.ListFavorites(ctx, tenantID)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].IsFavorite)
}

func TestVendorServiceUpdate(t *testing.T) {
	t.Run("updates payment defaults", func(t *testing.T) {
		repo := new(mockVendorRepo)
		service := NewVendorService(repo)
		ctx := context.Background()
		tenantID := uuid.New()

		vendor, err := partner.NewVendor(tenantID, "山田電材", "材料", "", "")
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, vendor.ID).Return(vendor, nil)
		repo.On("Save", ctx, vendor).Return(nil)

		resp, err := service.Update(ctx, tenantID, vendor.ID, UpdateVendorRequest{
			Name:           "山田電材株式会社",
			Category:       "材料",
			DefaultTaxType: "excluded",
			PaymentTerms:   "月末締め翌月末払い",
		})

		require.NoError(t, err)
		assert.Equal(t, "山田電材株式会社", resp.Name)
		assert.Equal(t, "excluded", resp.DefaultTaxType)
		assert.Equal(t, "月末締め翌月末払い", resp.PaymentTerms)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockVendorRepo)
		service := NewVendorService(repo)
		ctx := context.Background()
		tenantID := uuid.New()
		id := uuid.New()

		repo.On("FindByIDForTenant", ctx, tenantID, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, tenantID, id, UpdateVendorRequest{
			Name:           "山田電材",
			DefaultTaxType: "included",
		})

		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}
