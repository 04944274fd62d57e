package settings

import (
	"time"

	"github.com/gemba/backend/internal/domain/settings"
)

// FiscalSettingsResponse represents the fiscal scheme in API responses
type FiscalSettingsResponse struct {
	StartYear       int       `json:"start_year"`
	StartMonth      int       `json:"start_month"`
	StaffCodeDigits int       `json:"staff_code_digits"`
	CurrentPeriod   int       `json:"current_period"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateFiscalSettingsRequest replaces the fiscal scheme
type UpdateFiscalSettingsRequest struct {
	StartYear       int `json:"start_year" binding:"required,min=1900,max=2200"`
	StartMonth      int `json:"start_month" binding:"required,min=1,max=12"`
	StaffCodeDigits int `json:"staff_code_digits" binding:"required,min=1,max=6"`
}

// ToFiscalSettingsResponse maps the settings row plus the derived current
// period into the response shape.
func ToFiscalSettingsResponse(fs *settings.FiscalSettings, currentPeriod int) *FiscalSettingsResponse {
	return &FiscalSettingsResponse{
		StartYear:       fs.StartYear,
		StartMonth:      fs.StartMonth,
		StaffCodeDigits: fs.StaffCodeDigits,
		CurrentPeriod:   currentPeriod,
		UpdatedAt:       fs.UpdatedAt,
	}
}

// SystemSettingResponse represents a key/value setting in API responses
type SystemSettingResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PutSystemSettingRequest creates or replaces a setting value
type PutSystemSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description" binding:"max=500"`
}

// ToSystemSettingResponse maps a setting row to its response shape
func ToSystemSettingResponse(s *settings.SystemSetting) *SystemSettingResponse {
	return &SystemSettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
