package identity

import (
	"time"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest carries the sign-in credentials. Users sign in with their
// company's short code plus their own username.
type LoginRequest struct {
	CompanyCode string `json:"company_code" binding:"required,min=1,max=10"`
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// LoginResponse returns the token pair and the signed-in identity
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
	User         UserResponse    `json:"user"`
	Company      CompanyResponse `json:"company"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse returns a refreshed token pair
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ChangePasswordRequest carries a password change for the signed-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// RegisterCompanyRequest provisions a company together with its first admin
type RegisterCompanyRequest struct {
	CompanyName   string `json:"company_name" binding:"required,min=1,max=200"`
	Email         string `json:"email" binding:"required,email"`
	AdminUsername string `json:"admin_username" binding:"required,min=3,max=100"`
	AdminName     string `json:"admin_name" binding:"required,min=1,max=200"`
	Password      string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterCompanyResponse returns the new company and its admin. The company
// code is shown once here so the admin can share it with staff.
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Admin   UserResponse    `json:"admin"`
}

// UpdateCompanyRequest changes the company profile
type UpdateCompanyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"required,email"`
}

// ChangePlanRequest switches the subscription plan
type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=basic standard premium"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Plan        string     `json:"plan"`
	MaxUsers    int        `json:"max_users"`
	MaxProjects int        `json:"max_projects"`
	IsActive    bool       `json:"is_active"`
	VerifiedAt  *time.Time `json:"verified_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToCompanyResponse maps a company entity to its response shape
func ToCompanyResponse(c *identity.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Email:       c.Email,
		Plan:        string(c.Plan),
		MaxUsers:    c.Limits.MaxUsers,
		MaxProjects: c.Limits.MaxProjects,
		IsActive:    c.IsActive,
		VerifiedAt:  c.VerifiedAt,
		CreatedAt:   c.CreatedAt,
	}
}

// CompanyStatsResponse reports plan usage against the plan limits
type CompanyStatsResponse struct {
	Plan         string `json:"plan"`
	UserCount    int64  `json:"user_count"`
	MaxUsers     int    `json:"max_users"`
	ProjectCount int64  `json:"project_count"`
	MaxProjects  int    `json:"max_projects"`
}

// CreateUserRequest adds a staff member to the company
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=100"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"required,oneof=admin user"`
	StaffCode string `json:"staff_code" binding:"max=20"`
}

// UpdateUserRequest changes a staff member's profile
type UpdateUserRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Role      string `json:"role" binding:"required,oneof=admin user"`
	StaffCode string `json:"staff_code" binding:"max=20"`
}

// ResetPasswordRequest sets a new password without the old one (admin only)
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=admin user"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	StaffCode   string     `json:"staff_code"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToUserResponse maps a user entity to its response shape
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        string(u.Role),
		StaffCode:   u.StaffCode,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
