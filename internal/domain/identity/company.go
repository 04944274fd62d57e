package identity

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
)

// CompanyPlan represents the subscription plan of a company
type CompanyPlan string

const (
	CompanyPlanBasic    CompanyPlan = "basic"
	CompanyPlanStandard CompanyPlan = "standard"
	CompanyPlanPremium  CompanyPlan = "premium"
)

// CompanyLimits holds the plan-dependent resource limits
type CompanyLimits struct {
	MaxUsers       int `json:"max_users"`
	MaxProjects    int `json:"max_projects"`
	StorageLimitMB int `json:"storage_limit_mb"`
}

// DefaultCompanyLimits returns the limits of the basic plan
func DefaultCompanyLimits() CompanyLimits {
	return CompanyLimits{
		MaxUsers:       3,
		MaxProjects:    30,
		StorageLimitMB: 50,
	}
}

// Company is the tenant of the system: an electrical-contracting firm with
// its own users, projects and fiscal settings.
type Company struct {
	shared.BaseAggregateRoot
	Code       string      `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name       string      `gorm:"type:varchar(200);not null"`
	Email      string      `gorm:"type:varchar(200);not null"`
	Plan       CompanyPlan `gorm:"type:varchar(20);not null;default:'basic'"`
	Limits     CompanyLimits `gorm:"embedded;embeddedPrefix:limit_"`
	IsActive   bool        `gorm:"not null;default:true"`
	VerifiedAt *time.Time
	ExpiresAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

const companyCodeLength = 6
const companyCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCompanyCode produces a random short code used on sign-in screens.
// Ambiguous characters are excluded from the alphabet.
func GenerateCompanyCode() (string, error) {
	var b strings.Builder
	for i := 0; i < companyCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(companyCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(companyCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NewCompany provisions a new company on the basic plan
func NewCompany(code, name, email string) (*Company, error) {
	if err := validateCompanyCode(code); err != nil {
		return nil, err
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Company email cannot be empty")
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Plan:              CompanyPlanBasic,
		Limits:            DefaultCompanyLimits(),
		IsActive:          true,
	}

	company.AddDomainEvent(NewCompanyCreatedEvent(company))

	return company, nil
}

// Update changes the company's profile
func (c *Company) Update(name, email string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Company email cannot be empty")
	}

	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetPlan changes the subscription plan and its limits
func (c *Company) SetPlan(plan CompanyPlan) error {
	switch plan {
	case CompanyPlanBasic:
		c.Limits = DefaultCompanyLimits()
	case CompanyPlanStandard:
		c.Limits = CompanyLimits{MaxUsers: 10, MaxProjects: 300, StorageLimitMB: 500}
	case CompanyPlanPremium:
		c.Limits = CompanyLimits{MaxUsers: 50, MaxProjects: 3000, StorageLimitMB: 5000}
	default:
		return shared.NewDomainError("INVALID_PLAN", "Invalid company plan")
	}

	c.Plan = plan
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MarkVerified records that the company's email has been verified
func (c *Company) MarkVerified(at time.Time) {
	c.VerifiedAt = &at
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate re-enables a deactivated company
func (c *Company) Activate() error {
	if c.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Company is already active")
	}
	c.IsActive = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Deactivate disables all sign-ins for the company
func (c *Company) Deactivate() error {
	if !c.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Company is already inactive")
	}
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsExpired reports whether the subscription has lapsed
func (c *Company) IsExpired() bool {
	return c.ExpiresAt != nil && time.Now().After(*c.ExpiresAt)
}

// CanAddUser reports whether another user fits within the plan limit
func (c *Company) CanAddUser(currentUserCount int) bool {
	return currentUserCount < c.Limits.MaxUsers
}

// CanAddProject reports whether another project fits within the plan limit
func (c *Company) CanAddProject(currentProjectCount int) bool {
	return currentProjectCount < c.Limits.MaxProjects
}

func validateCompanyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot be empty")
	}
	if len(code) > 10 {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot exceed 10 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return shared.NewDomainError("INVALID_CODE", "Company code can only contain letters and numbers")
		}
	}
	return nil
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
