package persistence

import (
	"context"
	"errors"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements works.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

var projectOrderColumns = map[string]bool{
	"code":            true,
	"name":            true,
	"client_name":     true,
	"contract_amount": true,
	"status":          true,
	"period":          true,
	"start_date":      true,
	"end_date":        true,
	"invoice_date":    true,
	"payment_date":    true,
	"created_at":      true,
	"updated_at":      true,
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*works.Project, error) {
	var project works.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindByIDForTenant finds a project by ID within a tenant
func (r *GormProjectRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*works.Project, error) {
	var project works.Project
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindAllForTenant finds all projects for a tenant
func (r *GormProjectRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]works.Project, error) {
	var projects []works.Project
	query := r.applyFilter(r.db.WithContext(ctx).Model(&works.Project{}).Where("tenant_id = ?", tenantID), filter)
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindAllForUser finds the projects owned by a staff member
func (r *GormProjectRepository) FindAllForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]works.Project, error) {
	var projects []works.Project
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&works.Project{}).Where("tenant_id = ? AND user_id = ?", tenantID, userID),
		filter,
	)
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByPeriodForTenant finds all projects stamped with a fiscal period
func (r *GormProjectRepository) FindByPeriodForTenant(ctx context.Context, tenantID uuid.UUID, period int) ([]works.Project, error) {
	var projects []works.Project
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND period = ?", tenantID, period).
		Order("code ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsByCodeForUser checks whether the user already has a project with this code
func (r *GormProjectRepository) ExistsByCodeForUser(ctx context.Context, tenantID, userID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&works.Project{}).
		Where("tenant_id = ? AND user_id = ? AND code = ?", tenantID, userID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, project *works.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	drainDomainEvents(ctx, project)
	return nil
}

// DeleteForTenant deletes a project within a tenant
func (r *GormProjectRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&works.Project{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts projects for a tenant
func (r *GormProjectRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConstraints(r.db.WithContext(ctx).Model(&works.Project{}).Where("tenant_id = ?", tenantID), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProjectRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConstraints(query, filter)
	query = applyPagination(query, filter)
	return applyOrder(query, filter, projectOrderColumns)
}

func (r *GormProjectRepository) applyConstraints(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR code ILIKE ? OR client_name ILIKE ? OR estimate_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "period":
			query = query.Where("period = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "is_general_expense":
			query = query.Where("is_general_expense = ?", value)
		case "contract_amount_min":
			query = query.Where("contract_amount >= ?", value)
		case "contract_amount_max":
			query = query.Where("contract_amount <= ?", value)
		case "start_date_from":
			query = query.Where("start_date >= ?", value)
		case "start_date_to":
			query = query.Where("start_date <= ?", value)
		}
	}

	return query
}

var _ works.ProjectRepository = (*GormProjectRepository)(nil)
