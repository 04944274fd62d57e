package works

import (
	"context"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// CostService handles cost recording operations
type CostService struct {
	costRepo    works.CostRepository
	projectRepo works.ProjectRepository
}

// NewCostService creates a new CostService
func NewCostService(costRepo works.CostRepository, projectRepo works.ProjectRepository) *CostService {
	return &CostService{
		costRepo:    costRepo,
		projectRepo: projectRepo,
	}
}

// Create records a cost against an existing project
func (s *CostService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCostRequest) (*CostResponse, error) {
	// A cost may only reference a project of the same company.
	if _, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, req.ProjectID); err != nil {
		return nil, err
	}

	cost, err := works.NewCost(tenantID, req.ProjectID, req.Date, req.Vendor, req.Description,
		req.Category, req.Amount, works.TaxType(req.TaxType))
	if err != nil {
		return nil, err
	}

	if err := s.costRepo.Save(ctx, cost); err != nil {
		return nil, err
	}

	return ToCostResponse(cost), nil
}

// GetByID retrieves a cost
func (s *CostService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CostResponse, error) {
	cost, err := s.costRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToCostResponse(cost), nil
}

// List retrieves costs matching the filter
func (s *CostService) List(ctx context.Context, tenantID uuid.UUID, filter CostListFilter) ([]CostResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if filter.ProjectID != nil {
		domainFilter.Filters["project_id"] = *filter.ProjectID
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Vendor != "" {
		domainFilter.Filters["vendor"] = filter.Vendor
	}
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	if filter.DateFrom != nil {
		domainFilter.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		domainFilter.Filters["date_to"] = *filter.DateTo
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
		domainFilter.OrderBy = "date"
		domainFilter.OrderDir = "desc"
	}

	costs, err := s.costRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.costRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CostResponse, len(costs))
	for i := range costs {
		responses[i] = *ToCostResponse(&costs[i])
	}
	return responses, total, nil
}

// Update replaces a cost's editable fields
func (s *CostService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateCostRequest) (*CostResponse, error) {
	cost, err := s.costRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	taxType := cost.TaxType
	if req.TaxType != "" {
		taxType = works.TaxType(req.TaxType)
	}

	if err := cost.Update(req.Date, req.Vendor, req.Description, req.Category, req.Amount, taxType); err != nil {
		return nil, err
	}

	if err := s.costRepo.Save(ctx, cost); err != nil {
		return nil, err
	}

	return ToCostResponse(cost), nil
}

// MarkPaid records payment of a cost to its vendor
func (s *CostService) MarkPaid(ctx context.Context, tenantID, id uuid.UUID, date time.Time) (*CostResponse, error) {
	cost, err := s.costRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := cost.MarkPaid(date); err != nil {
		return nil, err
	}
	if err := s.costRepo.Save(ctx, cost); err != nil {
		return nil, err
	}
	return ToCostResponse(cost), nil
}

// MarkUnpaid reverts a cost to the unpaid state
func (s *CostService) MarkUnpaid(ctx context.Context, tenantID, id uuid.UUID) (*CostResponse, error) {
	cost, err := s.costRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := cost.MarkUnpaid(); err != nil {
		return nil, err
	}
	if err := s.costRepo.Save(ctx, cost); err != nil {
		return nil, err
	}
	return ToCostResponse(cost), nil
}

// Delete deletes a cost
func (s *CostService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.costRepo.DeleteForTenant(ctx, tenantID, id)
}
