package settings

import (
	"context"

	"github.com/google/uuid"
)

// FiscalSettingsRepository defines the interface for fiscal settings
// persistence. Each company has at most one row.
type FiscalSettingsRepository interface {
	// FindForTenant returns the company's fiscal settings
	FindForTenant(ctx context.Context, tenantID uuid.UUID) (*FiscalSettings, error)

	// Save creates or updates the fiscal settings
	Save(ctx context.Context, settings *FiscalSettings) error
}

// SystemSettingRepository defines the interface for key/value settings
type SystemSettingRepository interface {
	// FindByKeyForTenant returns a setting by key
	FindByKeyForTenant(ctx context.Context, tenantID uuid.UUID, key string) (*SystemSetting, error)

	// FindAllForTenant returns every setting of a company
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]SystemSetting, error)

	// Save creates or updates a setting
	Save(ctx context.Context, setting *SystemSetting) error

	// DeleteForTenant deletes a setting by key
	DeleteForTenant(ctx context.Context, tenantID uuid.UUID, key string) error
}
