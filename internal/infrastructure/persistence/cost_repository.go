package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCostRepository implements works.CostRepository using GORM
type GormCostRepository struct {
	db *gorm.DB
}

// NewGormCostRepository creates a new GormCostRepository
func NewGormCostRepository(db *gorm.DB) *GormCostRepository {
	return &GormCostRepository{db: db}
}

var costOrderColumns = map[string]bool{
	"date":         true,
	"vendor":       true,
	"category":     true,
	"amount":       true,
	"total_amount": true,
	"created_at":   true,
	"updated_at":   true,
}

// FindByID finds a cost by its ID
func (r *GormCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*works.Cost, error) {
	var cost works.Cost
	if err := r.db.WithContext(ctx).First(&cost, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cost, nil
}

// FindByIDForTenant finds a cost by ID within a tenant
func (r *GormCostRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*works.Cost, error) {
	var cost works.Cost
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&cost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cost, nil
}

// FindAllForTenant finds all costs for a tenant
func (r *GormCostRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]works.Cost, error) {
	var costs []works.Cost
	query := r.applyFilter(r.db.WithContext(ctx).Model(&works.Cost{}).Where("tenant_id = ?", tenantID), filter)
	if err := query.Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

// FindByProjectForTenant finds all costs recorded against a project
func (r *GormCostRepository) FindByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) ([]works.Cost, error) {
	var costs []works.Cost
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order("date ASC, created_at ASC").
		Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

// FindByDateRangeForTenant finds costs whose date falls in [from, to)
func (r *GormCostRepository) FindByDateRangeForTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]works.Cost, error) {
	var costs []works.Cost
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date < ?", tenantID, from, to).
		Order("date ASC").
		Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

// Save creates or updates a cost
func (r *GormCostRepository) Save(ctx context.Context, cost *works.Cost) error {
	if err := r.db.WithContext(ctx).Save(cost).Error; err != nil {
		return err
	}
	drainDomainEvents(ctx, cost)
	return nil
}

// DeleteForTenant deletes a cost within a tenant
func (r *GormCostRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&works.Cost{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByProjectForTenant deletes every cost belonging to a project.
// Deleting zero rows is not an error: a project may have no costs yet.
func (r *GormCostRepository) DeleteByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&works.Cost{}, "tenant_id = ? AND project_id = ?", tenantID, projectID).Error
}

// CountForTenant counts costs for a tenant
func (r *GormCostRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConstraints(r.db.WithContext(ctx).Model(&works.Cost{}).Where("tenant_id = ?", tenantID), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCostRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConstraints(query, filter)
	query = applyPagination(query, filter)
	return applyOrder(query, filter, costOrderColumns)
}

func (r *GormCostRepository) applyConstraints(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("vendor ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "project_id":
			query = query.Where("project_id = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "vendor":
			query = query.Where("vendor = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value)
		case "date_to":
			query = query.Where("date <= ?", value)
		}
	}

	return query
}

var _ works.CostRepository = (*GormCostRepository)(nil)
