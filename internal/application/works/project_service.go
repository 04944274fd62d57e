package works

import (
	"context"
	"errors"
	"time"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/report"
	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// ProjectService handles project business operations
type ProjectService struct {
	projectRepo works.ProjectRepository
	costRepo    works.CostRepository
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	fiscalRepo  settings.FiscalSettingsRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo works.ProjectRepository,
	costRepo works.CostRepository,
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	fiscalRepo settings.FiscalSettingsRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		costRepo:    costRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		fiscalRepo:  fiscalRepo,
	}
}

// fiscalConfig loads the company's fiscal scheme, falling back to the
// defaults a new company starts with.
func (s *ProjectService) fiscalConfig(ctx context.Context, tenantID uuid.UUID) (report.FiscalConfig, error) {
	fs, err := s.fiscalRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return settings.DefaultFiscalSettings(tenantID).ToConfig(), nil
		}
		return report.FiscalConfig{}, err
	}
	return fs.ToConfig(), nil
}

// fullCode derives the display code from the period, owner staff code, and
// project code. Unknown owners fall back to the raw code.
func (s *ProjectService) fullCode(ctx context.Context, cfg report.FiscalConfig, p *works.Project) string {
	owner, err := s.userRepo.FindByIDForTenant(ctx, p.TenantID, p.UserID)
	if err != nil {
		return p.Code
	}
	return report.FullProjectCode(ProjectToRecord(p, owner.StaffCode), cfg.StaffCodeDigits)
}

// Create creates a project owned by the requesting staff member. The fiscal
// period is stamped from the current date at creation.
func (s *ProjectService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateProjectRequest) (*ProjectResponse, error) {
	exists, err := s.projectRepo.ExistsByCodeForUser(ctx, tenantID, userID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Project with this code already exists")
	}

	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	count, err := s.projectRepo.CountForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	if !company.CanAddProject(int(count)) {
		return nil, shared.ErrPlanLimitReached
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	period, err := cfg.CurrentPeriod(time.Now())
	if err != nil {
		return nil, err
	}

	var project *works.Project
	if req.IsGeneralExpense {
		project, err = works.NewGeneralExpenseProject(tenantID, userID, req.Code, req.Name, period)
	} else {
		project, err = works.NewProject(tenantID, userID, req.Code, req.Name, period, req.ContractAmount)
	}
	if err != nil {
		return nil, err
	}

	if req.ClientName != "" || req.EstimateNumber != "" || req.TaxType != "" || req.TaxRate != nil ||
		req.StartDate != nil || req.EndDate != nil || req.Notes != "" {
		taxType := project.TaxType
		if req.TaxType != "" {
			taxType = works.TaxType(req.TaxType)
		}
		taxRate := project.TaxRate
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		if err := project.Update(req.Name, req.ClientName, req.EstimateNumber, project.ContractAmount,
			taxType, taxRate, req.StartDate, req.EndDate, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	return ToProjectResponse(project, s.fullCode(ctx, cfg, project)), nil
}

// GetByID retrieves a project with its profit block
func (s *ProjectService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProjectProfitResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	costs, err := s.costRepo.FindByProjectForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return s.toProfitResponse(ctx, cfg, project, costs), nil
}

// List retrieves projects with their profit blocks. Scope "my" restricts the
// list to the requesting staff member's projects.
func (s *ProjectService) List(ctx context.Context, tenantID, userID uuid.UUID, filter ProjectListFilter) ([]ProjectProfitResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Period != nil {
		domainFilter.Filters["period"] = *filter.Period
	}
	if filter.IsGeneralExpense != nil {
		domainFilter.Filters["is_general_expense"] = *filter.IsGeneralExpense
	}
	if filter.ContractAmountMin != nil {
		domainFilter.Filters["contract_amount_min"] = *filter.ContractAmountMin
	}
	if filter.ContractAmountMax != nil {
		domainFilter.Filters["contract_amount_max"] = *filter.ContractAmountMax
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		domainFilter.OrderDir = "asc"
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		}
	} else {
		domainFilter.OrderBy = "code"
		domainFilter.OrderDir = "asc"
	}

	var projects []works.Project
	var err error
	if filter.Scope == "my" {
		// The count below must carry the same user restriction as the rows.
		domainFilter.Filters["user_id"] = userID
		projects, err = s.projectRepo.FindAllForUser(ctx, tenantID, userID, domainFilter)
	} else {
		projects, err = s.projectRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.projectRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProjectProfitResponse, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		costs, err := s.costRepo.FindByProjectForTenant(ctx, tenantID, p.ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *s.toProfitResponse(ctx, cfg, p, costs))
	}

	return responses, total, nil
}

// Update replaces a project's editable fields
func (s *ProjectService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	taxType := project.TaxType
	if req.TaxType != "" {
		taxType = works.TaxType(req.TaxType)
	}
	taxRate := project.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	if err := project.Update(req.Name, req.ClientName, req.EstimateNumber, req.ContractAmount,
		taxType, taxRate, req.StartDate, req.EndDate, req.Notes); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(project, s.fullCode(ctx, cfg, project)), nil
}

// ChangeStatus applies a named status transition
func (s *ProjectService) ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, req ChangeProjectStatusRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := project.ChangeStatus(works.ProjectStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(project, s.fullCode(ctx, cfg, project)), nil
}

// SetBillingDates records or clears the invoice and payment dates
func (s *ProjectService) SetBillingDates(ctx context.Context, tenantID, id uuid.UUID, req SetBillingDatesRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.SetInvoice {
		project.SetInvoiceDate(req.InvoiceDate)
	}
	if req.SetPayment {
		project.SetPaymentDate(req.PaymentDate)
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(project, s.fullCode(ctx, cfg, project)), nil
}

// Delete deletes a project and every cost recorded against it
func (s *ProjectService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	if err := s.costRepo.DeleteByProjectForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	return s.projectRepo.DeleteForTenant(ctx, tenantID, id)
}

func (s *ProjectService) toProfitResponse(ctx context.Context, cfg report.FiscalConfig, p *works.Project, costs []works.Cost) *ProjectProfitResponse {
	records := make([]report.CostRecord, 0, len(costs))
	for i := range costs {
		records = append(records, CostToRecord(&costs[i]))
	}

	profit := report.ComputeProjectProfit(p.ContractAmount, records)

	return &ProjectProfitResponse{
		ProjectResponse: *ToProjectResponse(p, s.fullCode(ctx, cfg, p)),
		TotalCost:       profit.TotalCost,
		GrossProfit:     profit.GrossProfit,
		GrossProfitRate: report.DisplayRate(profit.GrossProfitRate).String(),
		ProfitBand:      string(profit.Band),
	}
}

// ProjectToRecord maps a project entity into the report engine's input shape
func ProjectToRecord(p *works.Project, staffCode string) report.ProjectRecord {
	return report.ProjectRecord{
		ID:               p.ID,
		Code:             p.Code,
		Period:           p.Period,
		Name:             p.Name,
		ClientName:       p.ClientName,
		EstimateNumber:   p.EstimateNumber,
		ContractAmount:   p.ContractAmount,
		Status:           string(p.Status),
		IsGeneralExpense: p.IsGeneralExpense,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		InvoiceDate:      p.InvoiceDate,
		PaymentDate:      p.PaymentDate,
		UserID:           p.UserID,
		StaffCode:        staffCode,
	}
}

// CostToRecord maps a cost entity into the report engine's input shape
func CostToRecord(c *works.Cost) report.CostRecord {
	return report.CostRecord{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		Date:        c.Date,
		Vendor:      c.Vendor,
		Description: c.Description,
		Category:    c.Category,
		Amount:      c.TotalAmount,
	}
}
