package settings

import (
	"time"

	"github.com/gemba/backend/internal/domain/report"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Default fiscal numbering scheme assigned to new companies.
const (
	DefaultFiscalStartYear  = 2000
	DefaultFiscalStartMonth = 8
	DefaultStaffCodeDigits  = 3
)

// FiscalSettings is the per-company singleton describing the fiscal period
// numbering scheme. It is a typed aggregate, not a key/value row: the period
// math depends on its fields being valid at all times.
type FiscalSettings struct {
	shared.TenantAggregateRoot
	StartYear       int `gorm:"not null;default:2000"`
	StartMonth      int `gorm:"not null;default:8"`
	StaffCodeDigits int `gorm:"not null;default:3"`
}

// TableName returns the table name for GORM
func (FiscalSettings) TableName() string {
	return "fiscal_settings"
}

// NewFiscalSettings creates the fiscal settings row for a company
func NewFiscalSettings(tenantID uuid.UUID, startYear, startMonth, staffCodeDigits int) (*FiscalSettings, error) {
	s := &FiscalSettings{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		StartYear:           startYear,
		StartMonth:          startMonth,
		StaffCodeDigits:     staffCodeDigits,
	}
	if err := s.ToConfig().Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultFiscalSettings creates the settings a new company starts with
func DefaultFiscalSettings(tenantID uuid.UUID) *FiscalSettings {
	s, _ := NewFiscalSettings(tenantID, DefaultFiscalStartYear, DefaultFiscalStartMonth, DefaultStaffCodeDigits)
	return s
}

// Update replaces the scheme after validating it
func (s *FiscalSettings) Update(startYear, startMonth, staffCodeDigits int) error {
	next := report.FiscalConfig{
		StartYear:       startYear,
		StartMonth:      startMonth,
		StaffCodeDigits: staffCodeDigits,
	}
	if err := next.Validate(); err != nil {
		return err
	}

	s.StartYear = startYear
	s.StartMonth = startMonth
	s.StaffCodeDigits = staffCodeDigits
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// ToConfig maps the row into the engine's configuration type
func (s *FiscalSettings) ToConfig() report.FiscalConfig {
	return report.FiscalConfig{
		StartYear:       s.StartYear,
		StartMonth:      s.StartMonth,
		StaffCodeDigits: s.StaffCodeDigits,
	}
}

// CurrentPeriod returns the fiscal period containing ref
func (s *FiscalSettings) CurrentPeriod(ref time.Time) (int, error) {
	return s.ToConfig().CurrentPeriod(ref)
}
