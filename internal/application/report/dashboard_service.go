package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	appworks "github.com/gemba/backend/internal/application/works"
	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/report"
	"github.com/gemba/backend/internal/domain/settings"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/google/uuid"
)

// UnbilledRuleProvider resolves the company's unbilled classification rule.
type UnbilledRuleProvider interface {
	UnbilledRule(ctx context.Context, tenantID uuid.UUID) (report.UnbilledRule, error)
}

// DashboardService assembles the fiscal-period dashboard. All aggregation
// runs through the report engine; this service only fetches and maps.
type DashboardService struct {
	projectRepo  works.ProjectRepository
	costRepo     works.CostRepository
	userRepo     identity.UserRepository
	fiscalRepo   settings.FiscalSettingsRepository
	ruleProvider UnbilledRuleProvider
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	projectRepo works.ProjectRepository,
	costRepo works.CostRepository,
	userRepo identity.UserRepository,
	fiscalRepo settings.FiscalSettingsRepository,
	ruleProvider UnbilledRuleProvider,
) *DashboardService {
	return &DashboardService{
		projectRepo:  projectRepo,
		costRepo:     costRepo,
		userRepo:     userRepo,
		fiscalRepo:   fiscalRepo,
		ruleProvider: ruleProvider,
	}
}

// dashboardRow pairs a project record with its derived profit so sorting can
// use either side before the response is shaped.
type dashboardRow struct {
	record report.ProjectRecord
	profit report.ProjectProfit
}

func (s *DashboardService) fiscalConfig(ctx context.Context, tenantID uuid.UUID) (report.FiscalConfig, error) {
	fs, err := s.fiscalRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return settings.DefaultFiscalSettings(tenantID).ToConfig(), nil
		}
		return report.FiscalConfig{}, err
	}
	return fs.ToConfig(), nil
}

// staffCodes returns every user's staff code so full project codes can be
// derived without a lookup per project.
func (s *DashboardService) staffCodes(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error) {
	users, err := s.userRepo.FindAllForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	codes := make(map[uuid.UUID]string, len(users))
	for i := range users {
		codes[users[i].ID] = users[i].StaffCode
	}
	return codes, nil
}

// Get assembles the dashboard for the requested period and scope
func (s *DashboardService) Get(ctx context.Context, tenantID, requesterID uuid.UUID, q DashboardQuery) (*DashboardResponse, error) {
	now := time.Now()

	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rng, err := cfg.ResolvePeriod(report.PeriodType(q.PeriodType), q.Period, now)
	if err != nil {
		return nil, err
	}

	var projects []works.Project
	if report.PeriodType(q.PeriodType) == report.PeriodTypeAll {
		projects, err = s.projectRepo.FindAllForTenant(ctx, tenantID, shared.Filter{})
	} else {
		projects, err = s.projectRepo.FindByPeriodForTenant(ctx, tenantID, rng.Number)
	}
	if err != nil {
		return nil, err
	}

	codes, err := s.staffCodes(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	records := make([]report.ProjectRecord, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		records = append(records, appworks.ProjectToRecord(p, codes[p.UserID]))
	}

	if scopeUser := s.scopeUser(requesterID, q); scopeUser != nil {
		records = report.FilterItems(records, func(r report.ProjectRecord) bool {
			return r.UserID == *scopeUser
		})
	}
	records = report.FilterItems(records,
		report.EqualsString(func(r report.ProjectRecord) string { return r.Status }, q.Status))
	records = report.SearchItems(records, q.Search, report.ProjectSearchFields(cfg.StaffCodeDigits)...)

	costs, err := s.costRepo.FindAllForTenant(ctx, tenantID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	costRecords := make([]report.CostRecord, 0, len(costs))
	for i := range costs {
		costRecords = append(costRecords, appworks.CostToRecord(&costs[i]))
	}

	summary := report.AggregatePortfolio(records, costRecords)

	rule, err := s.ruleProvider.UnbilledRule(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	unbilled, err := report.ClassifyUnbilled(records, rule, now)
	if err != nil {
		return nil, err
	}
	unpaid := report.ClassifyUnpaid(records)

	rows := make([]dashboardRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dashboardRow{
			record: rec,
			profit: report.ComputeProjectProfit(rec.ContractAmount, report.CostsForProject(rec.ID, costRecords)),
		})
	}
	rows = sortRows(rows, q.SortBy, q.SortDesc)

	resp := &DashboardResponse{
		PeriodNumber:  rng.Number,
		PeriodDisplay: periodDisplay(report.PeriodType(q.PeriodType), rng.Number),
		PeriodEnd:     rng.End,
		Summary:       toSummaryResponse(summary),
		Unbilled:      s.toClassificationResponse(unbilled, costRecords, cfg.StaffCodeDigits),
		Unpaid:        s.toClassificationResponse(unpaid, costRecords, cfg.StaffCodeDigits),
		Projects:      make([]DashboardProjectResponse, 0, len(rows)),
	}
	if !rng.Start.IsZero() {
		start := rng.Start
		resp.PeriodStart = &start
	}
	for _, row := range rows {
		resp.Projects = append(resp.Projects, toProjectRow(row, cfg.StaffCodeDigits))
	}
	return resp, nil
}

// ListPeriods returns every selectable fiscal period up to the current one
func (s *DashboardService) ListPeriods(ctx context.Context, tenantID uuid.UUID) ([]PeriodResponse, error) {
	cfg, err := s.fiscalConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	current, err := cfg.CurrentPeriod(time.Now())
	if err != nil {
		return nil, err
	}

	periods := make([]PeriodResponse, 0, current)
	for n := current; n >= 1; n-- {
		rng, err := cfg.PeriodRangeFor(n)
		if err != nil {
			return nil, err
		}
		periods = append(periods, PeriodResponse{
			Number:  n,
			Display: fmt.Sprintf("第%d期", n),
			Start:   rng.Start,
			End:     rng.End,
			Current: n == current,
		})
	}
	return periods, nil
}

func (s *DashboardService) scopeUser(requesterID uuid.UUID, q DashboardQuery) *uuid.UUID {
	switch q.Scope {
	case "my":
		return &requesterID
	case "user":
		return q.UserID
	default:
		return nil
	}
}

func (s *DashboardService) toClassificationResponse(c report.Classification, costs []report.CostRecord, staffCodeDigits int) ClassificationResponse {
	resp := ClassificationResponse{
		Count:    c.Count,
		Total:    c.Total,
		Projects: make([]DashboardProjectResponse, 0, len(c.Projects)),
	}
	for _, rec := range c.Projects {
		row := dashboardRow{
			record: rec,
			profit: report.ComputeProjectProfit(rec.ContractAmount, report.CostsForProject(rec.ID, costs)),
		}
		resp.Projects = append(resp.Projects, toProjectRow(row, staffCodeDigits))
	}
	return resp
}

func toProjectRow(row dashboardRow, staffCodeDigits int) DashboardProjectResponse {
	return DashboardProjectResponse{
		ID:              row.record.ID,
		Code:            row.record.Code,
		FullCode:        report.FullProjectCode(row.record, staffCodeDigits),
		Name:            row.record.Name,
		ClientName:      row.record.ClientName,
		Status:          row.record.Status,
		ContractAmount:  row.record.ContractAmount,
		TotalCost:       row.profit.TotalCost,
		GrossProfit:     row.profit.GrossProfit,
		GrossProfitRate: report.DisplayRate(row.profit.GrossProfitRate).String(),
		ProfitBand:      string(row.profit.Band),
		EndDate:         row.record.EndDate,
		InvoiceDate:     row.record.InvoiceDate,
		PaymentDate:     row.record.PaymentDate,
	}
}

// periodDisplay renders the period label the way it appears on screen
func periodDisplay(periodType report.PeriodType, number int) string {
	if periodType == report.PeriodTypeAll {
		return "全期間"
	}
	return fmt.Sprintf("第%d期", number)
}

func sortRows(rows []dashboardRow, sortBy string, descending bool) []dashboardRow {
	var key report.SortKey[dashboardRow]
	switch sortBy {
	case "name":
		key = report.ByString(func(r dashboardRow) string { return r.record.Name })
	case "client_name":
		key = report.ByString(func(r dashboardRow) string { return r.record.ClientName })
	case "contract_amount":
		key = report.ByInt64(func(r dashboardRow) int64 { return r.record.ContractAmount })
	case "total_cost":
		key = report.ByInt64(func(r dashboardRow) int64 { return r.profit.TotalCost })
	case "gross_profit":
		key = report.ByInt64(func(r dashboardRow) int64 { return r.profit.GrossProfit })
	case "gross_profit_rate":
		key = report.SortKey[dashboardRow]{
			Compare: func(a, b dashboardRow) int {
				return a.profit.GrossProfitRate.Cmp(b.profit.GrossProfitRate)
			},
			Missing: func(dashboardRow) bool { return false },
		}
	case "end_date":
		key = report.ByDate(func(r dashboardRow) *time.Time { return r.record.EndDate })
	default:
		key = report.ByString(func(r dashboardRow) string { return r.record.Code })
	}
	return report.SortItems(rows, key, descending)
}
