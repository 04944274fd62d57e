package report

import (
	"context"
	"time"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*works.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*works.Project), args.Error(1)
}

func (m *mockProjectRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*works.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*works.Project), args.Error(1)
}

func (m *mockProjectRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]works.Project, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Project), args.Error(1)
}

func (m *mockProjectRepo) FindAllForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]works.Project, error) {
	args := m.Called(ctx, tenantID, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Project), args.Error(1)
}

func (m *mockProjectRepo) FindByPeriodForTenant(ctx context.Context, tenantID uuid.UUID, period int) ([]works.Project, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Project), args.Error(1)
}

func (m *mockProjectRepo) ExistsByCodeForUser(ctx context.Context, tenantID, userID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, userID, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockProjectRepo) Save(ctx context.Context, project *works.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *mockProjectRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockProjectRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockCostRepo struct{ mock.Mock }

func (m *mockCostRepo) FindByID(ctx context.Context, id uuid.UUID) (*works.Cost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*works.Cost), args.Error(1)
}

func (m *mockCostRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*works.Cost, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*works.Cost), args.Error(1)
}

func (m *mockCostRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]works.Cost, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Cost), args.Error(1)
}

func (m *mockCostRepo) FindByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) ([]works.Cost, error) {
	args := m.Called(ctx, tenantID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Cost), args.Error(1)
}

func (m *mockCostRepo) FindByDateRangeForTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]works.Cost, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]works.Cost), args.Error(1)
}

func (m *mockCostRepo) Save(ctx context.Context, cost *works.Cost) error {
	return m.Called(ctx, cost).Error(0)
}

func (m *mockCostRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockCostRepo) DeleteByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) error {
	return m.Called(ctx, tenantID, projectID).Error(0)
}

func (m *mockCostRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockUserRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, tenantID uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, tenantID, username)
	return args.Bool(0), args.Error(1)
}

type mockFiscalRepo struct{ mock.Mock }

func (m *mockFiscalRepo) FindForTenant(ctx context.Context, tenantID uuid.UUID) (*settings.FiscalSettings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.FiscalSettings), args.Error(1)
}

func (m *mockFiscalRepo) Save(ctx context.Context, fs *settings.FiscalSettings) error {
	return m.Called(ctx, fs).Error(0)
}
