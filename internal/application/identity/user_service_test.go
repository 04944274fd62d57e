package identity

import (
	"context"
	"testing"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceFixture() (*UserService, *mockUserRepo, *mockCompanyRepo) {
	userRepo := new(mockUserRepo)
	companyRepo := new(mockCompanyRepo)
	return NewUserService(userRepo, companyRepo), userRepo, companyRepo
}

func testCompany(t *testing.T) *identity.Company {
	t.Helper()
	company, err := identity.NewCompany("TANAKA", "田中電気工事株式会社", "info@tanaka-denki.example.jp")
	require.NoError(t, err)
	return company
}

func TestUserServiceCreate(t *testing.T) {
	t.Run("creates a staff member", func(t *testing.T) {
		service, userRepo, companyRepo := newUserServiceFixture()
		ctx := context.Background()
		company := testCompany(t)

		userRepo.On("ExistsByUsername", ctx, company.ID, "suzuki").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		userRepo.On("CountForTenant", ctx, company.ID, mock.Anything).Return(int64(1), nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Create(ctx, company.ID, CreateUserRequest{
			Username:  "suzuki",
			Name:      "鈴木次郎",
			Password:  "changeme123",
			Role:      "user",
			StaffCode: "12",
		})

		require.NoError(t, err)
		assert.Equal(t, "suzuki", resp.Username)
		assert.Equal(t, "12", resp.StaffCode)
		assert.True(t, resp.IsActive)
	})

	t.Run("enforces the plan user limit", func(t *testing.T) {
		service, userRepo, companyRepo := newUserServiceFixture()
		ctx := context.Background()
		company := testCompany(t)

		userRepo.On("ExistsByUsername", ctx, company.ID, "suzuki").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		userRepo.On("CountForTenant", ctx, company.ID, mock.Anything).
			Return(int64(company.Limits.MaxUsers), nil)

		_, err := service.Create(ctx, company.ID, CreateUserRequest{
			Username: "suzuki",
			Name:     "鈴木次郎",
			Password: "changeme123",
			Role:     "user",
		})

		require.ErrorIs(t, err, shared.ErrPlanLimitReached)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		service, userRepo, _ := newUserServiceFixture()
		ctx := context.Background()
		tenantID := uuid.New()

		userRepo.On("ExistsByUsername", ctx, tenantID, "suzuki").Return(true, nil)

		_, err := service.Create(ctx, tenantID, CreateUserRequest{
			Username: "suzuki",
			Name:     "鈴木次郎",
			Password: "changeme123",
			Role:     "user",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestUserServiceDeactivate(t *testing.T) {
	t.Run("rejects self deactivation", func(t *testing.T) {
		service, userRepo, _ := newUserServiceFixture()
		ctx := context.Background()
		tenantID := uuid.New()
		id := uuid.New()

		err := service.Deactivate(ctx, tenantID, id, id)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SELF_DEACTIVATION", domainErr.Code)
		userRepo.AssertNotCalled(t, "FindByIDForTenant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deactivates another staff member", func(t *testing.T) {
		service, userRepo, _ := newUserServiceFixture()
		ctx := context.Background()
		tenantID := uuid.New()

		user, err := identity.NewUser(tenantID, "suzuki", "鈴木次郎", "changeme123", identity.UserRoleUser, "12")
		require.NoError(t, err)

		userRepo.On("FindByIDForTenant", ctx, tenantID, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		require.NoError(t, service.Deactivate(ctx, tenantID, user.ID, uuid.New()))
		assert.False(t, user.IsActive)
	})
}

func TestUserServiceResetPassword(t *testing.T) {
	service, userRepo, _ := newUserServiceFixture()
	ctx := context.Background()
	tenantID := uuid.New()

	user, err := identity.NewUser(tenantID, "suzuki", "鈴木次郎", "changeme123", identity.UserRoleUser, "12")
	require.NoError(t, err)

	userRepo.On("FindByIDForTenant", ctx, tenantID, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	require.NoError(t, service.ResetPassword(ctx, tenantID, user.ID, ResetPasswordRequest{NewPassword: "freshstart789"}))
	assert.True(t, user.VerifyPassword("freshstart789"))
	assert.False(t, user.VerifyPassword("changeme123"))
}

func TestUserServiceDelete(t *testing.T) {
	service, userRepo, _ := newUserServiceFixture()
	ctx := context.Background()
	tenantID := uuid.New()
	id := uuid.New()

	t.Run("rejects self deletion", func(t *testing.T) {
		err := service.Delete(ctx, tenantID, id, id)
		require.Error(t, err)
		userRepo.AssertNotCalled(t, "DeleteForTenant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deletes another staff member", func(t *testing.T) {
		userRepo.On("DeleteForTenant", ctx, tenantID, id).Return(nil)
		require.NoError(t, service.Delete(ctx, tenantID, id, uuid.New()))
	})
}
