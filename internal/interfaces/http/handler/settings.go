package handler

import (
	appsettings "github.com/gemba/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles fiscal scheme and key/value setting endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *appsettings.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *appsettings.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetFiscal returns the company's fiscal scheme with the current period
func (h *SettingsHandler) GetFiscal(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	fiscal, err := h.settingsService.GetFiscal(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, fiscal)
}

// UpdateFiscal replaces the fiscal scheme. Period numbering of existing
// projects is not rewritten.
func (h *SettingsHandler) UpdateFiscal(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var req appsettings.UpdateFiscalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	fiscal, err := h.settingsService.UpdateFiscal(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, fiscal)
}

// ListSystem returns every key/value setting of the company
func (h *SettingsHandler) ListSystem(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// GetSystem returns a single key/value setting
func (h *SettingsHandler) GetSystem(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	setting, err := h.settingsService.Get(c.Request.Context(), tenantID, c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, setting)
}

// PutSystem creates or replaces a key/value setting
func (h *SettingsHandler) PutSystem(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var req appsettings.PutSystemSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	setting, err := h.settingsService.Put(c.Request.Context(), tenantID, c.Param("key"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, setting)
}

// DeleteSystem removes a key/value setting, reverting the key to its default
func (h *SettingsHandler) DeleteSystem(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.settingsService.Delete(c.Request.Context(), tenantID, c.Param("key")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
