package works

import (
	"context"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// CategoryService handles cost category operations
type CategoryService struct {
	categoryRepo works.CostCategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo works.CostCategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a cost category
func (s *CategoryService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCostCategoryRequest) (*CostCategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	category, err := works.NewCostCategory(tenantID, req.Name, req.Color, req.DisplayOrder)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCostCategoryResponse(category), nil
}

// List retrieves the company's cost categories in display order
func (s *CategoryService) List(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]CostCategoryResponse, error) {
	filter := shared.Filter{Filters: make(map[string]interface{})}
	if activeOnly {
		filter.Filters["is_active"] = true
	}

	categories, err := s.categoryRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CostCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCostCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Update replaces a category's editable fields
func (s *CategoryService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateCostCategoryRequest) (*CostCategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, tenantID, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		}
	}

	if err := category.Update(req.Name, req.Color, req.DisplayOrder); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCostCategoryResponse(category), nil
}

// Delete deletes a category. The default category is protected.
func (s *CategoryService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := category.EnsureDeletable(); err != nil {
		return err
	}
	return s.categoryRepo.DeleteForTenant(ctx, tenantID, id)
}
