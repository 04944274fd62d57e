package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gemba/backend/internal/application/works"
	"github.com/gin-gonic/gin"
)

// CostHandler handles cost endpoints
type CostHandler struct {
	BaseHandler
	costService *works.CostService
}

// NewCostHandler creates a new cost handler
func NewCostHandler(costService *works.CostService) *CostHandler {
	return &CostHandler{costService: costService}
}

// Create records a cost against a project
func (h *CostHandler) Create(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var req works.CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cost, err := h.costService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, cost)
}

// Get returns a single cost
func (h *CostHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	cost, err := h.costService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cost)
}

// List returns costs filtered by project, category, vendor, payment status,
// and date range
func (h *CostHandler) List(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var filter works.CostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	costs, total, err := h.costService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, costs, total, filter.Page, filter.PageSize)
}

// Update changes a cost's editable fields
func (h *CostHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req works.UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cost, err := h.costService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cost)
}

// markPaidRequest optionally names the payment date; it defaults to today
type markPaidRequest struct {
	PaymentDate *time.Time `json:"payment_date"`
}

// MarkPaid records the cost as paid
func (h *CostHandler) MarkPaid(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	// The body is optional; an empty request pays the cost today
	var req markPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}
	date := time.Now()
	if req.PaymentDate != nil {
		date = *req.PaymentDate
	}

	cost, err := h.costService.MarkPaid(c.Request.Context(), tenantID, id, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cost)
}

// MarkUnpaid reverts the cost to unpaid
func (h *CostHandler) MarkUnpaid(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	cost, err := h.costService.MarkUnpaid(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cost)
}

// Delete removes a cost
func (h *CostHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.costService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
