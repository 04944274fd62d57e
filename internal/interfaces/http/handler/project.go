package handler

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gemba/backend/internal/application/works"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *works.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *works.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create registers a project, stamping it with the current fiscal period
func (h *ProjectHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req works.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, project)
}

// Get returns a project with its derived profit block
func (h *ProjectHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, project)
}

// List returns projects with profit figures, filtered and sorted
func (h *ProjectHandler) List(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var filter works.ProjectListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), tenantID, userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

// Update changes a project's editable fields
func (h *ProjectHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req works.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, project)
}

// ChangeStatus moves a project between active, completed, and cancelled
func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req works.ChangeProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	project, err := h.projectService.ChangeStatus(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, project)
}

// SetBillingDates records or clears the invoice and payment dates. Only keys
// present in the request body are touched; an explicit null clears the date.
func (h *ProjectHandler) SetBillingDates(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	req, err := parseBillingDatesRequest(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.SetBillingDates(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, project)
}

// parseBillingDatesRequest distinguishes an absent key from an explicit null
func parseBillingDatesRequest(body io.Reader) (works.SetBillingDatesRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return works.SetBillingDatesRequest{}, err
	}

	var req works.SetBillingDatesRequest
	if msg, present := raw["invoice_date"]; present {
		req.SetInvoice = true
		var date *time.Time
		if err := json.Unmarshal(msg, &date); err != nil {
			return works.SetBillingDatesRequest{}, err
		}
		req.InvoiceDate = date
	}
	if msg, present := raw["payment_date"]; present {
		req.SetPayment = true
		var date *time.Time
		if err := json.Unmarshal(msg, &date); err != nil {
			return works.SetBillingDatesRequest{}, err
		}
		req.PaymentDate = date
	}
	return req, nil
}

// Delete removes a project and all of its costs
func (h *ProjectHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
