package works

import (
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentStatus represents whether a cost has been paid to its vendor
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// DefaultCostCategory is assigned when no category is supplied.
const DefaultCostCategory = "材料費"

// Cost represents a single expenditure recorded against a project (原価).
// Vendor and Category are free text by design: the registries only feed
// suggestions, they are not enforced references.
type Cost struct {
	shared.TenantAggregateRoot
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"not null;index"`
	Vendor      string    `gorm:"type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Amount      int64     `gorm:"not null;default:0"`
	TaxType     TaxType   `gorm:"type:varchar(20);not null;default:'included'"`
	TaxAmount   int64     `gorm:"not null;default:0"`
	// TotalAmount always equals Amount; tax tagging is presentational.
	TotalAmount   int64         `gorm:"not null;default:0"`
	Category      string        `gorm:"type:varchar(100);not null;default:'材料費';index"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid'"`
	PaymentDate   *time.Time
}

// TableName returns the table name for GORM
func (Cost) TableName() string {
	return "costs"
}

// NewCost records a new cost against a project
func NewCost(tenantID, projectID uuid.UUID, date time.Time, vendor, description, category string, amount int64, taxType TaxType) (*Cost, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Cost must belong to a project")
	}
	if amount < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Cost amount cannot be negative")
	}
	if taxType == "" {
		taxType = TaxTypeIncluded
	}
	if taxType != TaxTypeIncluded && taxType != TaxTypeExcluded {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tax type must be included or excluded")
	}
	if category == "" {
		category = DefaultCostCategory
	}

	cost := &Cost{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProjectID:           projectID,
		Date:                date,
		Vendor:              vendor,
		Description:         description,
		Category:            category,
		TaxType:             taxType,
		PaymentStatus:       PaymentStatusUnpaid,
	}
	cost.setAmount(amount)

	cost.AddDomainEvent(NewCostRecordedEvent(cost))

	return cost, nil
}

// Update replaces the editable fields of a cost
func (c *Cost) Update(date time.Time, vendor, description, category string, amount int64, taxType TaxType) error {
	if amount < 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Cost amount cannot be negative")
	}
	if taxType != TaxTypeIncluded && taxType != TaxTypeExcluded {
		return shared.NewDomainError("INVALID_INPUT", "Tax type must be included or excluded")
	}
	if category == "" {
		category = DefaultCostCategory
	}

	c.Date = date
	c.Vendor = vendor
	c.Description = description
	c.Category = category
	c.TaxType = taxType
	c.setAmount(amount)
	c.touch()

	c.AddDomainEvent(NewCostUpdatedEvent(c))

	return nil
}

// MarkPaid records payment to the vendor
func (c *Cost) MarkPaid(date time.Time) error {
	if c.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Cost is already marked paid")
	}
	c.PaymentStatus = PaymentStatusPaid
	c.PaymentDate = &date
	c.touch()
	return nil
}

// MarkUnpaid reverts a cost to the unpaid state
func (c *Cost) MarkUnpaid() error {
	if c.PaymentStatus == PaymentStatusUnpaid {
		return shared.NewDomainError("ALREADY_UNPAID", "Cost is already unpaid")
	}
	c.PaymentStatus = PaymentStatusUnpaid
	c.PaymentDate = nil
	c.touch()
	return nil
}

// setAmount keeps Amount and TotalAmount in lockstep.
func (c *Cost) setAmount(amount int64) {
	c.Amount = amount
	c.TotalAmount = amount
}

func (c *Cost) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
