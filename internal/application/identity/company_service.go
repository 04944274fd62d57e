package identity

import (
	"context"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// Attempts before company code generation gives up. A collision needs two
// identical 6-character draws, so more than one retry is already unusual.
const maxCodeAttempts = 5

// defaultCostCategory seeds the category list of a new company.
type defaultCostCategory struct {
	name      string
	color     string
	order     int
	isDefault bool
}

var defaultCostCategories = []defaultCostCategory{
	{name: "材料費", color: "#2196F3", order: 1},
	{name: "外注費", color: "#FF9800", order: 2},
	{name: "経費", color: "#4CAF50", order: 3},
	{name: "その他", color: "#9E9E9E", order: 4, isDefault: true},
}

// ProjectCounter reports how many projects a company has. Satisfied by the
// works project repository without pulling its full interface in here.
type ProjectCounter interface {
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CompanyService handles company provisioning and profile management
type CompanyService struct {
	companyRepo    identity.CompanyRepository
	userRepo       identity.UserRepository
	fiscalRepo     settings.FiscalSettingsRepository
	categoryRepo   works.CostCategoryRepository
	projectCounter ProjectCounter
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo identity.CompanyRepository,
	userRepo identity.UserRepository,
	fiscalRepo settings.FiscalSettingsRepository,
	categoryRepo works.CostCategoryRepository,
	projectCounter ProjectCounter,
) *CompanyService {
	return &CompanyService{
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		fiscalRepo:     fiscalRepo,
		categoryRepo:   categoryRepo,
		projectCounter: projectCounter,
	}
}

// Register provisions a company with its first admin user, the default fiscal
// scheme, and the default cost categories.
func (s *CompanyService) Register(ctx context.Context, req RegisterCompanyRequest) (*RegisterCompanyResponse, error) {
	code, err := s.uniqueCompanyCode(ctx)
	if err != nil {
		return nil, err
	}

	company, err := identity.NewCompany(code, req.CompanyName, req.Email)
	if err != nil {
		return nil, err
	}

	admin, err := identity.NewUser(company.ID, req.AdminUsername, req.AdminName, req.Password, identity.UserRoleAdmin, "")
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, admin); err != nil {
		return nil, err
	}

	if err := s.fiscalRepo.Save(ctx, settings.DefaultFiscalSettings(company.ID)); err != nil {
		return nil, err
	}
	for _, c := range defaultCostCategories {
		category, err := works.NewCostCategory(company.ID, c.name, c.color, c.order)
		if err != nil {
			return nil, err
		}
		category.IsDefault = c.isDefault
		if err := s.categoryRepo.Save(ctx, category); err != nil {
			return nil, err
		}
	}

	return &RegisterCompanyResponse{
		Company: *ToCompanyResponse(company),
		Admin:   *ToUserResponse(admin),
	}, nil
}

func (s *CompanyService) uniqueCompanyCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := identity.GenerateCompanyCode()
		if err != nil {
			return "", err
		}
		exists, err := s.companyRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", shared.NewDomainError("CODE_GENERATION_FAILED", "Could not generate a unique company code")
}

// Get returns the company profile
func (s *CompanyService) Get(ctx context.Context, tenantID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// Update changes the company profile
func (s *CompanyService) Update(ctx context.Context, tenantID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := company.Update(req.Name, req.Email); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// Stats reports plan usage against the plan limits
func (s *CompanyService) Stats(ctx context.Context, tenantID uuid.UUID) (*CompanyStatsResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	userCount, err := s.userRepo.CountForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	projectCount, err := s.projectCounter.CountForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}

	return &CompanyStatsResponse{
		Plan:         string(company.Plan),
		UserCount:    userCount,
		MaxUsers:     company.Limits.MaxUsers,
		ProjectCount: projectCount,
		MaxProjects:  company.Limits.MaxProjects,
	}, nil
}

// ChangePlan switches the subscription plan
func (s *CompanyService) ChangePlan(ctx context.Context, tenantID uuid.UUID, req ChangePlanRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := company.SetPlan(identity.CompanyPlan(req.Plan)); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}
