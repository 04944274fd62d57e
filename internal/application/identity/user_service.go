package identity

import (
	"context"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles staff account management
type UserService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, companyRepo identity.CompanyRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// Create adds a staff member within the company's plan limit
func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, tenantID, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	count, err := s.userRepo.CountForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	if !company.CanAddUser(int(count)) {
		return nil, shared.ErrPlanLimitReached
	}

	user, err := identity.NewUser(tenantID, req.Username, req.Name, req.Password, identity.UserRole(req.Role), req.StaffCode)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID retrieves a staff member
func (s *UserService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves staff members matching the filter
func (s *UserService) List(ctx context.Context, tenantID uuid.UUID, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
		OrderBy:  "username",
		OrderDir: "asc",
	}
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	users, err := s.userRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// Update changes a staff member's profile
func (s *UserService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := user.Update(req.Name, identity.UserRole(req.Role), req.StaffCode); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ResetPassword sets a new password without checking the old one
func (s *UserService) ResetPassword(ctx context.Context, tenantID, id uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Deactivate disables sign-in for a staff member. An admin cannot deactivate
// their own account.
func (s *UserService) Deactivate(ctx context.Context, tenantID, id, requesterID uuid.UUID) error {
	if id == requesterID {
		return shared.NewDomainError("SELF_DEACTIVATION", "You cannot deactivate your own account")
	}
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Activate re-enables a staff member
func (s *UserService) Activate(ctx context.Context, tenantID, id uuid.UUID) error {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := user.Activate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Delete removes a staff member. Their projects remain and keep showing the
// raw project code.
func (s *UserService) Delete(ctx context.Context, tenantID, id, requesterID uuid.UUID) error {
	if id == requesterID {
		return shared.NewDomainError("SELF_DELETION", "You cannot delete your own account")
	}
	return s.userRepo.DeleteForTenant(ctx, tenantID, id)
}
