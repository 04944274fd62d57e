package report

import (
	"github.com/shopspring/decimal"
)

// ProfitBand classifies a gross profit rate for display banding.
type ProfitBand string

const (
	ProfitBandGood ProfitBand = "good"
	ProfitBandWarn ProfitBand = "warn"
	ProfitBandBad  ProfitBand = "bad"
)

// ProjectProfit holds the derived financials for a single project.
// GrossProfitRate is kept at full precision; rounding is a display concern.
type ProjectProfit struct {
	TotalCost       int64
	GrossProfit     int64
	GrossProfitRate decimal.Decimal
	Band            ProfitBand
}

var (
	hundred       = decimal.NewFromInt(100)
	bandGoodFloor = decimal.NewFromInt(30)
	bandWarnFloor = decimal.NewFromInt(20)
)

// ComputeProjectProfit derives total cost, gross profit and profit rate from
// a contract amount and the costs recorded against the project. A zero
// contract amount yields a rate of exactly zero, never a division error.
// This is the single source of profit math; list, detail and dashboard views
// must all go through it.
func ComputeProjectProfit(contractAmount int64, costs []CostRecord) ProjectProfit {
	var totalCost int64
	for _, c := range costs {
		totalCost += c.Amount
	}

	profit := contractAmount - totalCost
	rate := profitRate(contractAmount, profit)

	return ProjectProfit{
		TotalCost:       totalCost,
		GrossProfit:     profit,
		GrossProfitRate: rate,
		Band:            ClassifyProfitRate(rate),
	}
}

// profitRate expresses profit as a percentage of the contract amount. A zero
// or negative contract amount yields exactly zero.
func profitRate(contractAmount, profit int64) decimal.Decimal {
	if contractAmount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(profit).
		Div(decimal.NewFromInt(contractAmount)).
		Mul(hundred)
}

// ClassifyProfitRate maps a profit rate to its display band.
// Thresholds: 30 and above is good, 20 up to 30 warns, below 20 is bad.
func ClassifyProfitRate(rate decimal.Decimal) ProfitBand {
	switch {
	case rate.GreaterThanOrEqual(bandGoodFloor):
		return ProfitBandGood
	case rate.GreaterThanOrEqual(bandWarnFloor):
		return ProfitBandWarn
	default:
		return ProfitBandBad
	}
}

// DisplayRate rounds a full-precision rate to one decimal place for display.
func DisplayRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Round(1)
}
