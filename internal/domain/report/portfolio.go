package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCounts tallies projects by lifecycle status.
type StatusCounts struct {
	Active    int
	Completed int
	Total     int
}

// PortfolioSummary aggregates financials over a scoped set of projects.
type PortfolioSummary struct {
	TotalContract   int64
	TotalCost       int64
	GrossProfit     int64
	GrossProfitRate decimal.Decimal
	CostBreakdown   map[string]int64
	StatusCounts    StatusCounts
}

// AggregatePortfolio computes summary statistics over projects already
// restricted to the desired scope, plus the costs belonging to them. Costs
// whose project is not in the input set are ignored. An empty project list
// yields all-zero totals and an empty breakdown.
func AggregatePortfolio(projects []ProjectRecord, costs []CostRecord) PortfolioSummary {
	known := make(map[uuid.UUID]struct{}, len(projects))

	summary := PortfolioSummary{
		CostBreakdown: make(map[string]int64),
	}

	for _, p := range projects {
		known[p.ID] = struct{}{}
		summary.TotalContract += p.ContractAmount
		summary.StatusCounts.Total++
		switch p.Status {
		case ProjectStatusActive:
			summary.StatusCounts.Active++
		case ProjectStatusCompleted:
			summary.StatusCounts.Completed++
		}
	}

	for _, c := range costs {
		if _, ok := known[c.ProjectID]; !ok {
			continue
		}
		summary.TotalCost += c.Amount
		summary.CostBreakdown[c.Category] += c.Amount
	}

	summary.GrossProfit = summary.TotalContract - summary.TotalCost
	summary.GrossProfitRate = profitRate(summary.TotalContract, summary.GrossProfit)

	return summary
}

// CostsForProject returns the subset of costs recorded against the project.
func CostsForProject(projectID uuid.UUID, costs []CostRecord) []CostRecord {
	matched := make([]CostRecord, 0)
	for _, c := range costs {
		if c.ProjectID == projectID {
			matched = append(matched, c)
		}
	}
	return matched
}
