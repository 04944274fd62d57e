package settings

import (
	"context"
	"errors"
	"time"

	"github.com/gemba/backend/internal/domain/report"
	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SettingsService handles the company's fiscal scheme and key/value settings
type SettingsService struct {
	fiscalRepo settings.FiscalSettingsRepository
	systemRepo settings.SystemSettingRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(fiscalRepo settings.FiscalSettingsRepository, systemRepo settings.SystemSettingRepository) *SettingsService {
	return &SettingsService{
		fiscalRepo: fiscalRepo,
		systemRepo: systemRepo,
	}
}

// GetFiscal returns the company's fiscal scheme. Companies provisioned before
// fiscal settings existed fall back to the defaults without a stored row.
func (s *SettingsService) GetFiscal(ctx context.Context, tenantID uuid.UUID) (*FiscalSettingsResponse, error) {
	fs, err := s.fiscalRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			fs = settings.DefaultFiscalSettings(tenantID)
		} else {
			return nil, err
		}
	}

	period, err := fs.CurrentPeriod(time.Now())
	if err != nil {
		return nil, err
	}
	return ToFiscalSettingsResponse(fs, period), nil
}

// UpdateFiscal replaces the fiscal scheme, creating the row on first write
func (s *SettingsService) UpdateFiscal(ctx context.Context, tenantID uuid.UUID, req UpdateFiscalSettingsRequest) (*FiscalSettingsResponse, error) {
	fs, err := s.fiscalRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		fs, err = settings.NewFiscalSettings(tenantID, req.StartYear, req.StartMonth, req.StaffCodeDigits)
		if err != nil {
			return nil, err
		}
	} else if err := fs.Update(req.StartYear, req.StartMonth, req.StaffCodeDigits); err != nil {
		return nil, err
	}

	if err := s.fiscalRepo.Save(ctx, fs); err != nil {
		return nil, err
	}

	period, err := fs.CurrentPeriod(time.Now())
	if err != nil {
		return nil, err
	}
	return ToFiscalSettingsResponse(fs, period), nil
}

// UnbilledRule returns the company's unbilled classification rule, falling
// back to the default when none is stored or the stored value is corrupt.
func (s *SettingsService) UnbilledRule(ctx context.Context, tenantID uuid.UUID) (report.UnbilledRule, error) {
	setting, err := s.systemRepo.FindByKeyForTenant(ctx, tenantID, settings.KeyUnbilledDefinition)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return report.UnbilledRule(settings.DefaultUnbilledDefinition), nil
		}
		return "", err
	}

	rule, err := report.ParseUnbilledRule(setting.Value)
	if err != nil {
		return report.UnbilledRule(settings.DefaultUnbilledDefinition), nil
	}
	return rule, nil
}

// Get returns a key/value setting
func (s *SettingsService) Get(ctx context.Context, tenantID uuid.UUID, key string) (*SystemSettingResponse, error) {
	setting, err := s.systemRepo.FindByKeyForTenant(ctx, tenantID, key)
	if err != nil {
		return nil, err
	}
	return ToSystemSettingResponse(setting), nil
}

// List returns every key/value setting of the company
func (s *SettingsService) List(ctx context.Context, tenantID uuid.UUID) ([]SystemSettingResponse, error) {
	rows, err := s.systemRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]SystemSettingResponse, len(rows))
	for i := range rows {
		responses[i] = *ToSystemSettingResponse(&rows[i])
	}
	return responses, nil
}

// Put creates or replaces a key/value setting
func (s *SettingsService) Put(ctx context.Context, tenantID uuid.UUID, key string, req PutSystemSettingRequest) (*SystemSettingResponse, error) {
	setting, err := s.systemRepo.FindByKeyForTenant(ctx, tenantID, key)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		setting, err = settings.NewSystemSetting(tenantID, key, req.Value, req.Description)
		if err != nil {
			return nil, err
		}
	} else {
		if err := setting.SetValue(req.Value); err != nil {
			return nil, err
		}
		if req.Description != "" {
			setting.Description = req.Description
		}
	}

	if err := s.systemRepo.Save(ctx, setting); err != nil {
		return nil, err
	}
	return ToSystemSettingResponse(setting), nil
}

// Delete removes a key/value setting, reverting the key to its default
func (s *SettingsService) Delete(ctx context.Context, tenantID uuid.UUID, key string) error {
	return s.systemRepo.DeleteForTenant(ctx, tenantID, key)
}
