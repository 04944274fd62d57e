package works

import (
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CostCategory is a display grouping for costs. Costs reference categories by
// name, so renaming a category does not rewrite history.
type CostCategory struct {
	shared.TenantAggregateRoot
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:idx_cost_category_tenant_name,priority:2"`
	Color        string `gorm:"type:varchar(20)"`
	DisplayOrder int    `gorm:"not null;default:999"`
	IsDefault    bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CostCategory) TableName() string {
	return "cost_categories"
}

// NewCostCategory creates a new cost category
func NewCostCategory(tenantID uuid.UUID, name, color string, displayOrder int) (*CostCategory, error) {
	if err := validateCostCategoryName(name); err != nil {
		return nil, err
	}

	category := &CostCategory{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Color:               color,
		DisplayOrder:        displayOrder,
		IsActive:            true,
	}

	return category, nil
}

// Update changes the category's display attributes
func (c *CostCategory) Update(name, color string, displayOrder int) error {
	if err := validateCostCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.Color = color
	c.DisplayOrder = displayOrder
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate makes the category selectable again
func (c *CostCategory) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate hides the category from selection without deleting it
func (c *CostCategory) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// EnsureDeletable rejects deletion of the default category.
func (c *CostCategory) EnsureDeletable() error {
	if c.IsDefault {
		return shared.NewDomainError("DEFAULT_CATEGORY", "The default category cannot be deleted")
	}
	return nil
}

func validateCostCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
