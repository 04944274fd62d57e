package persistence

import (
	"context"
	"errors"

	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFiscalSettingsRepository implements settings.FiscalSettingsRepository using GORM
type GormFiscalSettingsRepository struct {
	db *gorm.DB
}

// NewGormFiscalSettingsRepository creates a new GormFiscalSettingsRepository
func NewGormFiscalSettingsRepository(db *gorm.DB) *GormFiscalSettingsRepository {
	return &GormFiscalSettingsRepository{db: db}
}

// FindForTenant returns the company's fiscal settings
func (r *GormFiscalSettingsRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID) (*settings.FiscalSettings, error) {
	var fs settings.FiscalSettings
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fs, nil
}

// Save creates or updates the fiscal settings
func (r *GormFiscalSettingsRepository) Save(ctx context.Context, fs *settings.FiscalSettings) error {
	return r.db.WithContext(ctx).Save(fs).Error
}

var _ settings.FiscalSettingsRepository = (*GormFiscalSettingsRepository)(nil)

// GormSystemSettingRepository implements settings.SystemSettingRepository using GORM
type GormSystemSettingRepository struct {
	db *gorm.DB
}

// NewGormSystemSettingRepository creates a new GormSystemSettingRepository
func NewGormSystemSettingRepository(db *gorm.DB) *GormSystemSettingRepository {
	return &GormSystemSettingRepository{db: db}
}

// FindByKeyForTenant returns a setting by key
func (r *GormSystemSettingRepository) FindByKeyForTenant(ctx context.Context, tenantID uuid.UUID, key string) (*settings.SystemSetting, error) {
	var setting settings.SystemSetting
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND key = ?", tenantID, key).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindAllForTenant returns every setting of a company
func (r *GormSystemSettingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]settings.SystemSetting, error) {
	var rows []settings.SystemSetting
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Save creates or updates a setting
func (r *GormSystemSettingRepository) Save(ctx context.Context, setting *settings.SystemSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// DeleteForTenant deletes a setting by key
func (r *GormSystemSettingRepository) DeleteForTenant(ctx context.Context, tenantID uuid.UUID, key string) error {
	result := r.db.WithContext(ctx).Delete(&settings.SystemSetting{}, "tenant_id = ? AND key = ?", tenantID, key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ settings.SystemSettingRepository = (*GormSystemSettingRepository)(nil)
