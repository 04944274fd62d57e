package partner

import (
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vendor represents a supplier or subcontractor the company buys from (業者).
// Costs reference vendors by free-text name; the registry feeds suggestions
// and payment defaults.
type Vendor struct {
	shared.TenantAggregateRoot
	Name           string `gorm:"type:varchar(200);not null;index"`
	Category       string `gorm:"type:varchar(100)"`
	Phone          string `gorm:"type:varchar(50)"`
	Email          string `gorm:"type:varchar(200)"`
	DefaultTaxType string `gorm:"type:varchar(20);not null;default:'included'"`
	PaymentTerms   string `gorm:"type:varchar(200)"`
	Notes          string `gorm:"type:text"`
	IsActive       bool   `gorm:"not null;default:true"`
	IsFavorite     bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor
func NewVendor(tenantID uuid.UUID, name, category, phone, email string) (*Vendor, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	vendor := &Vendor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Category:            category,
		Phone:               phone,
		Email:               email,
		DefaultTaxType:      "included",
		IsActive:            true,
	}

	vendor.AddDomainEvent(NewVendorCreatedEvent(vendor))

	return vendor, nil
}

// Update replaces the vendor's details
func (v *Vendor) Update(name, category, phone, email, defaultTaxType, paymentTerms, notes string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if defaultTaxType != "included" && defaultTaxType != "excluded" {
		return shared.NewDomainError("INVALID_INPUT", "Default tax type must be included or excluded")
	}

	v.Name = name
	v.Category = category
	v.Phone = phone
	v.Email = email
	v.DefaultTaxType = defaultTaxType
	v.PaymentTerms = paymentTerms
	v.Notes = notes
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVendorUpdatedEvent(v))

	return nil
}

// ToggleFavorite flips the favorite flag used for quick selection
func (v *Vendor) ToggleFavorite() {
	v.IsFavorite = !v.IsFavorite
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Activate makes the vendor selectable again
func (v *Vendor) Activate() {
	v.IsActive = true
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Deactivate hides the vendor from selection without deleting history
func (v *Vendor) Deactivate() {
	v.IsActive = false
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}
