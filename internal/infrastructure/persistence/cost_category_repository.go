package persistence

import (
	"context"
	"errors"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCostCategoryRepository implements works.CostCategoryRepository using GORM
type GormCostCategoryRepository struct {
	db *gorm.DB
}

// NewGormCostCategoryRepository creates a new GormCostCategoryRepository
func NewGormCostCategoryRepository(db *gorm.DB) *GormCostCategoryRepository {
	return &GormCostCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCostCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*works.CostCategory, error) {
	var category works.CostCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByIDForTenant finds a category by ID within a tenant
func (r *GormCostCategoryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*works.CostCategory, error) {
	var category works.CostCategory
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByNameForTenant finds a category by its name
func (r *GormCostCategoryRepository) FindByNameForTenant(ctx context.Context, tenantID uuid.UUID, name string) (*works.CostCategory, error) {
	var category works.CostCategory
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAllForTenant finds all categories ordered for display
func (r *GormCostCategoryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]works.CostCategory, error) {
	var categories []works.CostCategory
	query := r.db.WithContext(ctx).Model(&works.CostCategory{}).Where("tenant_id = ?", tenantID)

	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsByName checks whether a category with this name exists
func (r *GormCostCategoryRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&works.CostCategory{}).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a category
func (r *GormCostCategoryRepository) Save(ctx context.Context, category *works.CostCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteForTenant deletes a category within a tenant
func (r *GormCostCategoryRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&works.CostCategory{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ works.CostCategoryRepository = (*GormCostCategoryRepository)(nil)
