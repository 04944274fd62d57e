package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemba/backend/internal/domain/shared"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := FiscalConfig{StartYear: 2000, StartMonth: 8, StaffCodeDigits: 3}
		require.NoError(t, cfg.Validate())
	})

	t.Run("month out of range", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			cfg := FiscalConfig{StartYear: 2000, StartMonth: month, StaffCodeDigits: 3}
			err := cfg.Validate()
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "CONFIGURATION_ERROR", domainErr.Code)
		}
	})

	t.Run("non positive staff code digits", func(t *testing.T) {
		cfg := FiscalConfig{StartYear: 2000, StartMonth: 8, StaffCodeDigits: 0}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "staff code digits")
	})
}

func TestCurrentPeriod(t *testing.T) {
	cfg := FiscalConfig{StartYear: 2000, StartMonth: 8, StaffCodeDigits: 3}

	t.Run("reference after period start month", func(t *testing.T) {
		// Period 25 spans 2024-08-01 up to 2025-08-01.
		n, err := cfg.CurrentPeriod(date(2024, time.September, 15))
		require.NoError(t, err)
		assert.Equal(t, 25, n)
	})

	t.Run("reference before period start month", func(t *testing.T) {
		n, err := cfg.CurrentPeriod(date(2024, time.July, 31))
		require.NoError(t, err)
		assert.Equal(t, 24, n)
	})

	t.Run("first day of a period", func(t *testing.T) {
		n, err := cfg.CurrentPeriod(date(2024, time.August, 1))
		require.NoError(t, err)
		assert.Equal(t, 25, n)
	})

	t.Run("reference before period one clamps", func(t *testing.T) {
		n, err := cfg.CurrentPeriod(date(1999, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		bad := FiscalConfig{StartYear: 2000, StartMonth: 13, StaffCodeDigits: 3}
		_, err := bad.CurrentPeriod(date(2024, time.September, 15))
		require.Error(t, err)
	})
}

// Any reference date on or after the scheme origin must fall inside the range
// of its own period, and consecutive period ranges must tile with no gap.
func TestPeriodContainment(t *testing.T) {
	configs := []FiscalConfig{
		{StartYear: 2000, StartMonth: 8, StaffCodeDigits: 3},
		{StartYear: 2015, StartMonth: 1, StaffCodeDigits: 2},
		{StartYear: 1998, StartMonth: 12, StaffCodeDigits: 4},
	}
	refs := []time.Time{
		date(2024, time.September, 15),
		date(2024, time.July, 31),
		date(2030, time.December, 31),
		date(2016, time.January, 1),
	}

	for _, cfg := range configs {
		for _, ref := range refs {
			if ref.Before(cfg.periodStart(1)) {
				continue
			}
			n, err := cfg.CurrentPeriod(ref)
			require.NoError(t, err)

			current, err := cfg.PeriodRangeFor(n)
			require.NoError(t, err)
			assert.True(t, current.Contains(ref),
				"reference %s must fall in period %d [%s, %s)",
				ref, n, current.Start, current.End)

			next, err := cfg.PeriodRangeFor(n + 1)
			require.NoError(t, err)
			assert.Equal(t, current.End, next.Start, "periods must tile")
		}
	}
}

func TestResolvePeriod(t *testing.T) {
	cfg := FiscalConfig{StartYear: 2000, StartMonth: 8, StaffCodeDigits: 3}
	ref := date(2024, time.September, 15)

	t.Run("current", func(t *testing.T) {
		r, err := cfg.ResolvePeriod(PeriodTypeCurrent, 0, ref)
		require.NoError(t, err)
		assert.Equal(t, 25, r.Number)
		assert.Equal(t, date(2024, time.August, 1), r.Start)
		assert.Equal(t, date(2025, time.August, 1), r.End)
	})

	t.Run("previous", func(t *testing.T) {
		r, err := cfg.ResolvePeriod(PeriodTypePrevious, 0, ref)
		require.NoError(t, err)
		assert.Equal(t, 24, r.Number)
		assert.Equal(t, date(2023, time.August, 1), r.Start)
		assert.Equal(t, date(2024, time.August, 1), r.End)
	})

	t.Run("previous of period one stays well defined", func(t *testing.T) {
		r, err := cfg.ResolvePeriod(PeriodTypePrevious, 0, date(2000, time.September, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, r.Number)
		assert.Equal(t, date(1999, time.August, 1), r.Start)
		assert.Equal(t, date(2000, time.August, 1), r.End)
	})

	t.Run("custom", func(t *testing.T) {
		r, err := cfg.ResolvePeriod(PeriodTypeCustom, 24, ref)
		require.NoError(t, err)
		assert.Equal(t, 24, r.Number)
		assert.Equal(t, date(2023, time.August, 1), r.Start)
	})

	t.Run("custom rejects non positive period", func(t *testing.T) {
		_, err := cfg.ResolvePeriod(PeriodTypeCustom, 0, ref)
		require.Error(t, err)
	})

	t.Run("all is unbounded below and contains the reference", func(t *testing.T) {
		r, err := cfg.ResolvePeriod(PeriodTypeAll, 0, ref)
		require.NoError(t, err)
		assert.True(t, r.Start.IsZero())
		assert.True(t, r.Contains(ref))
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := cfg.ResolvePeriod(PeriodType("fortnight"), 0, ref)
		require.Error(t, err)
	})
}
