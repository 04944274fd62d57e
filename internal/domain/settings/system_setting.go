package settings

import (
	"time"

	"github.com/gemba/backend/internal/domain/report"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Known setting keys.
const (
	// KeyUnbilledDefinition selects the unbilled classification rule on the
	// dashboard. Valid values are the report.UnbilledRule constants.
	KeyUnbilledDefinition = "unbilled_definition"
)

// DefaultUnbilledDefinition is used until a company picks a rule.
const DefaultUnbilledDefinition = string(report.UnbilledRuleCompleted)

// SystemSetting is a per-company key/value row for the few settings that are
// genuinely free-form. Anything with structure belongs in a typed aggregate
// like FiscalSettings.
type SystemSetting struct {
	shared.TenantAggregateRoot
	Key         string `gorm:"type:varchar(100);not null;uniqueIndex:idx_setting_tenant_key,priority:2"`
	Value       string `gorm:"type:text;not null"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (SystemSetting) TableName() string {
	return "system_settings"
}

// NewSystemSetting creates a setting row
func NewSystemSetting(tenantID uuid.UUID, key, value, description string) (*SystemSetting, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}
	if err := validateSettingValue(key, value); err != nil {
		return nil, err
	}

	return &SystemSetting{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Key:                 key,
		Value:               value,
		Description:         description,
	}, nil
}

// SetValue updates the stored value
func (s *SystemSetting) SetValue(value string) error {
	if err := validateSettingValue(s.Key, value); err != nil {
		return err
	}
	s.Value = value
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// validateSettingValue applies per-key validation for known keys. Unknown
// keys accept any value.
func validateSettingValue(key, value string) error {
	if key == KeyUnbilledDefinition {
		if _, err := report.ParseUnbilledRule(value); err != nil {
			return err
		}
	}
	return nil
}
