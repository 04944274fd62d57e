package report

import (
	"time"

	"github.com/gemba/backend/internal/domain/report"
	"github.com/google/uuid"
)

// DashboardQuery selects the period, scope, and list shaping for the
// dashboard. Scope "user" requires UserID; scope "my" uses the requester.
type DashboardQuery struct {
	PeriodType string     `form:"period_type" binding:"omitempty,oneof=current previous custom all"`
	Period     int        `form:"period" binding:"omitempty,min=1"`
	Scope      string     `form:"scope" binding:"omitempty,oneof=all my user"`
	UserID     *uuid.UUID `form:"user_id"`
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=active completed cancelled"`
	SortBy     string     `form:"sort_by" binding:"omitempty,oneof=code name client_name contract_amount total_cost gross_profit gross_profit_rate end_date"`
	SortDesc   bool       `form:"sort_desc"`
}

// PortfolioSummaryResponse is the dashboard's aggregate block
type PortfolioSummaryResponse struct {
	TotalContract   int64            `json:"total_contract"`
	TotalCost       int64            `json:"total_cost"`
	GrossProfit     int64            `json:"gross_profit"`
	GrossProfitRate string           `json:"gross_profit_rate"`
	CostBreakdown   map[string]int64 `json:"cost_breakdown"`
	ActiveCount     int              `json:"active_count"`
	CompletedCount  int              `json:"completed_count"`
	ProjectCount    int              `json:"project_count"`
}

// ClassificationResponse lists the projects caught by a billing scan
type ClassificationResponse struct {
	Count    int                        `json:"count"`
	Total    int64                      `json:"total"`
	Projects []DashboardProjectResponse `json:"projects"`
}

// DashboardProjectResponse is one row of the dashboard project list
type DashboardProjectResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	FullCode        string     `json:"full_code"`
	Name            string     `json:"name"`
	ClientName      string     `json:"client_name"`
	Status          string     `json:"status"`
	ContractAmount  int64      `json:"contract_amount"`
	TotalCost       int64      `json:"total_cost"`
	GrossProfit     int64      `json:"gross_profit"`
	GrossProfitRate string     `json:"gross_profit_rate"`
	ProfitBand      string     `json:"profit_band"`
	EndDate         *time.Time `json:"end_date"`
	InvoiceDate     *time.Time `json:"invoice_date"`
	PaymentDate     *time.Time `json:"payment_date"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	PeriodNumber  int                        `json:"period_number"`
	PeriodDisplay string                     `json:"period_display"`
	PeriodStart   *time.Time                 `json:"period_start"`
	PeriodEnd     time.Time                  `json:"period_end"`
	Summary       PortfolioSummaryResponse   `json:"summary"`
	Unbilled      ClassificationResponse     `json:"unbilled"`
	Unpaid        ClassificationResponse     `json:"unpaid"`
	Projects      []DashboardProjectResponse `json:"projects"`
}

// PeriodResponse describes one selectable fiscal period
type PeriodResponse struct {
	Number  int       `json:"number"`
	Display string    `json:"display"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Current bool      `json:"current"`
}

func toSummaryResponse(s report.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		TotalContract:   s.TotalContract,
		TotalCost:       s.TotalCost,
		GrossProfit:     s.GrossProfit,
		GrossProfitRate: report.DisplayRate(s.GrossProfitRate).String(),
		CostBreakdown:   s.CostBreakdown,
		ActiveCount:     s.StatusCounts.Active,
		CompletedCount:  s.StatusCounts.Completed,
		ProjectCount:    s.StatusCounts.Total,
	}
}
