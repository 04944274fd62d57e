package works

import (
	"time"

	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Code             string     `json:"code" binding:"required,min=1,max=50"`
	Name             string     `json:"name" binding:"required,min=1,max=200"`
	ClientName       string     `json:"client_name" binding:"max=200"`
	EstimateNumber   string     `json:"estimate_number" binding:"max=100"`
	ContractAmount   int64      `json:"contract_amount" binding:"min=0"`
	TaxType          string     `json:"tax_type" binding:"omitempty,oneof=included excluded"`
	TaxRate          *int       `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Notes            string     `json:"notes"`
	IsGeneralExpense bool       `json:"is_general_expense"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Name           string     `json:"name" binding:"required,min=1,max=200"`
	ClientName     string     `json:"client_name" binding:"max=200"`
	EstimateNumber string     `json:"estimate_number" binding:"max=100"`
	ContractAmount int64      `json:"contract_amount" binding:"min=0"`
	TaxType        string     `json:"tax_type" binding:"omitempty,oneof=included excluded"`
	TaxRate        *int       `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Notes          string     `json:"notes"`
}

// ChangeProjectStatusRequest names the target status
type ChangeProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled"`
}

// SetBillingDatesRequest records or clears the invoice and payment dates.
// A present key with a null value clears the date.
type SetBillingDatesRequest struct {
	InvoiceDate *time.Time `json:"invoice_date"`
	PaymentDate *time.Time `json:"payment_date"`
	SetInvoice  bool       `json:"-"`
	SetPayment  bool       `json:"-"`
}

// ProjectListFilter represents filter options for the project list
type ProjectListFilter struct {
	Search            string `form:"search"`
	Status            string `form:"status" binding:"omitempty,oneof=active completed cancelled"`
	Period            *int   `form:"period"`
	Scope             string `form:"scope" binding:"omitempty,oneof=all my"`
	IsGeneralExpense  *bool  `form:"is_general_expense"`
	ContractAmountMin *int64 `form:"contract_amount_min"`
	ContractAmountMax *int64 `form:"contract_amount_max"`
	Page              int    `form:"page" binding:"omitempty,min=1"`
	PageSize          int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy            string `form:"sort_by"`
	SortDesc          bool   `form:"sort_desc"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Code             string     `json:"code"`
	FullCode         string     `json:"full_code"`
	Period           int        `json:"period"`
	IsGeneralExpense bool       `json:"is_general_expense"`
	Name             string     `json:"name"`
	ClientName       string     `json:"client_name"`
	EstimateNumber   string     `json:"estimate_number"`
	ContractAmount   int64      `json:"contract_amount"`
	TaxType          string     `json:"tax_type"`
	TaxRate          int        `json:"tax_rate"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	InvoiceDate      *time.Time `json:"invoice_date"`
	PaymentDate      *time.Time `json:"payment_date"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Version          int        `json:"version"`
}

// ProjectProfitResponse adds the profit block to a project
type ProjectProfitResponse struct {
	ProjectResponse
	TotalCost       int64  `json:"total_cost"`
	GrossProfit     int64  `json:"gross_profit"`
	GrossProfitRate string `json:"gross_profit_rate"`
	ProfitBand      string `json:"profit_band"`
}

// ToProjectResponse maps a project entity to its response shape
func ToProjectResponse(p *works.Project, fullCode string) *ProjectResponse {
	return &ProjectResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Code:             p.Code,
		FullCode:         fullCode,
		Period:           p.Period,
		IsGeneralExpense: p.IsGeneralExpense,
		Name:             p.Name,
		ClientName:       p.ClientName,
		EstimateNumber:   p.EstimateNumber,
		ContractAmount:   p.ContractAmount,
		TaxType:          string(p.TaxType),
		TaxRate:          p.TaxRate,
		Status:           string(p.Status),
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		InvoiceDate:      p.InvoiceDate,
		PaymentDate:      p.PaymentDate,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		Version:          p.Version,
	}
}

// CreateCostRequest represents a request to record a cost
type CreateCostRequest struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Vendor      string    `json:"vendor" binding:"max=200"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"max=100"`
	Amount      int64     `json:"amount" binding:"min=0"`
	TaxType     string    `json:"tax_type" binding:"omitempty,oneof=included excluded"`
}

// UpdateCostRequest represents a request to update a cost
type UpdateCostRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Vendor      string    `json:"vendor" binding:"max=200"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"max=100"`
	Amount      int64     `json:"amount" binding:"min=0"`
	TaxType     string    `json:"tax_type" binding:"omitempty,oneof=included excluded"`
}

// CostListFilter represents filter options for the cost list
type CostListFilter struct {
	Search        string     `form:"search"`
	ProjectID     *uuid.UUID `form:"project_id"`
	Category      string     `form:"category"`
	Vendor        string     `form:"vendor"`
	PaymentStatus string     `form:"payment_status" binding:"omitempty,oneof=unpaid paid"`
	DateFrom      *time.Time `form:"date_from"`
	DateTo        *time.Time `form:"date_to"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy        string     `form:"sort_by"`
	SortDesc      bool       `form:"sort_desc"`
}

// CostResponse represents a cost in API responses
type CostResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	Date          time.Time  `json:"date"`
	Vendor        string     `json:"vendor"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Amount        int64      `json:"amount"`
	TaxType       string     `json:"tax_type"`
	TotalAmount   int64      `json:"total_amount"`
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToCostResponse maps a cost entity to its response shape
func ToCostResponse(c *works.Cost) *CostResponse {
	return &CostResponse{
		ID:            c.ID,
		ProjectID:     c.ProjectID,
		Date:          c.Date,
		Vendor:        c.Vendor,
		Description:   c.Description,
		Category:      c.Category,
		Amount:        c.Amount,
		TaxType:       string(c.TaxType),
		TotalAmount:   c.TotalAmount,
		PaymentStatus: string(c.PaymentStatus),
		PaymentDate:   c.PaymentDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateCostCategoryRequest represents a request to create a cost category
type CreateCostCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Color        string `json:"color" binding:"max=20"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateCostCategoryRequest represents a request to update a cost category
type UpdateCostCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Color        string `json:"color" binding:"max=20"`
	DisplayOrder int    `json:"display_order"`
}

// CostCategoryResponse represents a cost category in API responses
type CostCategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	DisplayOrder int       `json:"display_order"`
	IsDefault    bool      `json:"is_default"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToCostCategoryResponse maps a category entity to its response shape
func ToCostCategoryResponse(c *works.CostCategory) *CostCategoryResponse {
	return &CostCategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Color:        c.Color,
		DisplayOrder: c.DisplayOrder,
		IsDefault:    c.IsDefault,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
