package report

import (
	"fmt"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
)

// PeriodType selects which fiscal period range to resolve.
type PeriodType string

const (
	PeriodTypeCurrent  PeriodType = "current"
	PeriodTypePrevious PeriodType = "previous"
	PeriodTypeCustom   PeriodType = "custom"
	PeriodTypeAll      PeriodType = "all"
)

// FiscalConfig holds the company-wide fiscal numbering scheme. Period 1 starts
// on the first day of StartMonth in StartYear and every period spans exactly
// one year.
type FiscalConfig struct {
	StartYear       int
	StartMonth      int
	StaffCodeDigits int
}

// Validate rejects configurations the period math cannot operate on.
// Invalid values are never clamped.
func (c FiscalConfig) Validate() error {
	if c.StartMonth < 1 || c.StartMonth > 12 {
		return shared.NewDomainError("CONFIGURATION_ERROR",
			fmt.Sprintf("fiscal start month must be between 1 and 12, got %d", c.StartMonth))
	}
	if c.StaffCodeDigits <= 0 {
		return shared.NewDomainError("CONFIGURATION_ERROR",
			fmt.Sprintf("staff code digits must be positive, got %d", c.StaffCodeDigits))
	}
	return nil
}

// PeriodRange is a half-open date range [Start, End).
type PeriodRange struct {
	Number int
	Start  time.Time
	End    time.Time
}

// Contains reports whether d falls inside the range.
func (r PeriodRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}

// periodStart returns the first day of period n. Period numbers below 1 are
// valid here so that "previous" remains well defined when the current period
// is the first one.
func (c FiscalConfig) periodStart(n int) time.Time {
	return time.Date(c.StartYear+n-1, time.Month(c.StartMonth), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodRangeFor returns the concrete date range covered by period n.
func (c FiscalConfig) PeriodRangeFor(n int) (PeriodRange, error) {
	if err := c.Validate(); err != nil {
		return PeriodRange{}, err
	}
	return PeriodRange{
		Number: n,
		Start:  c.periodStart(n),
		End:    c.periodStart(n + 1),
	}, nil
}

// CurrentPeriod returns the period number containing ref. Reference dates
// before the start of period 1 clamp to period 1.
func (c FiscalConfig) CurrentPeriod(ref time.Time) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	n := ref.Year() - c.StartYear + 1
	if int(ref.Month()) < c.StartMonth {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// ResolvePeriod converts a period type into a concrete date range anchored at
// ref. For PeriodTypeCustom, n selects the period; it is ignored otherwise.
// PeriodTypeAll yields an unbounded lower range ending just past ref.
func (c FiscalConfig) ResolvePeriod(periodType PeriodType, n int, ref time.Time) (PeriodRange, error) {
	current, err := c.CurrentPeriod(ref)
	if err != nil {
		return PeriodRange{}, err
	}

	switch periodType {
	case PeriodTypeCurrent, "":
		return c.PeriodRangeFor(current)
	case PeriodTypePrevious:
		return c.PeriodRangeFor(current - 1)
	case PeriodTypeCustom:
		if n < 1 {
			return PeriodRange{}, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("period number must be positive, got %d", n))
		}
		return c.PeriodRangeFor(n)
	case PeriodTypeAll:
		return PeriodRange{
			Number: current,
			Start:  time.Time{},
			End:    ref.AddDate(0, 0, 1),
		}, nil
	default:
		return PeriodRange{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown period type %q", periodType))
	}
}
