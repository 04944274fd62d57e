package works

import (
	"context"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindByIDForTenant finds a project by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Project, error)

	// FindAllForTenant finds all projects for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Project, error)

	// FindAllForUser finds the projects owned by a staff member
	FindAllForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]Project, error)

	// FindByPeriodForTenant finds all projects stamped with a fiscal period
	FindByPeriodForTenant(ctx context.Context, tenantID uuid.UUID, period int) ([]Project, error)

	// ExistsByCodeForUser checks whether the user already has a project with
	// this code
	ExistsByCodeForUser(ctx context.Context, tenantID, userID uuid.UUID, code string) (bool, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error

	// DeleteForTenant deletes a project within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts projects for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CostRepository defines the interface for cost persistence
type CostRepository interface {
	// FindByID finds a cost by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cost, error)

	// FindByIDForTenant finds a cost by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Cost, error)

	// FindAllForTenant finds all costs for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Cost, error)

	// FindByProjectForTenant finds all costs recorded against a project
	FindByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) ([]Cost, error)

	// FindByDateRangeForTenant finds costs whose date falls in [from, to)
	FindByDateRangeForTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Cost, error)

	// Save creates or updates a cost
	Save(ctx context.Context, cost *Cost) error

	// DeleteForTenant deletes a cost within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// DeleteByProjectForTenant deletes every cost belonging to a project
	DeleteByProjectForTenant(ctx context.Context, tenantID, projectID uuid.UUID) error

	// CountForTenant counts costs for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CostCategoryRepository defines the interface for cost category persistence
type CostCategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CostCategory, error)

	// FindByIDForTenant finds a category by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*CostCategory, error)

	// FindByNameForTenant finds a category by its name
	FindByNameForTenant(ctx context.Context, tenantID uuid.UUID, name string) (*CostCategory, error)

	// FindAllForTenant finds all categories ordered for display
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]CostCategory, error)

	// ExistsByName checks whether a category with this name exists
	ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *CostCategory) error

	// DeleteForTenant deletes a category within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
