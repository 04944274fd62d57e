package handler

import (
	"github.com/gemba/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company registration and management endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *identity.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *identity.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Register provisions a new company with its admin account. This is the only
// unauthenticated write endpoint.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req identity.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.companyService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns the authenticated user's company
func (h *CompanyHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Stats reports plan usage (users, projects) against the plan limits
func (h *CompanyHandler) Stats(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	stats, err := h.companyService.Stats(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// Update changes the company profile
func (h *CompanyHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var req identity.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// ChangePlan switches the company to another subscription plan
func (h *CompanyHandler) ChangePlan(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var req identity.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	company, err := h.companyService.ChangePlan(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}
