package handler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBillingDatesRequest(t *testing.T) {
	t.Run("absent keys are not touched", func(t *testing.T) {
		req, err := parseBillingDatesRequest(strings.NewReader(`{}`))

		require.NoError(t, err)
		assert.False(t, req.SetInvoice)
		assert.False(t, req.SetPayment)
	})

	t.Run("a value sets the date", func(t *testing.T) {
		req, err := parseBillingDatesRequest(strings.NewReader(`{"invoice_date":"2026-08-01T00:00:00Z"}`))

		require.NoError(t, err)
		assert.True(t, req.SetInvoice)
		require.NotNil(t, req.InvoiceDate)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), req.InvoiceDate.UTC())
		assert.False(t, req.SetPayment)
	})

	t.Run("an explicit null clears the date", func(t *testing.T) {
		req, err := parseBillingDatesRequest(strings.NewReader(`{"payment_date":null}`))

		require.NoError(t, err)
		assert.True(t, req.SetPayment)
		assert.Nil(t, req.PaymentDate)
	})

	t.Run("both dates in one request", func(t *testing.T) {
		req, err := parseBillingDatesRequest(strings.NewReader(
			`{"invoice_date":"2026-08-01T00:00:00Z","payment_date":"2026-08-31T00:00:00Z"}`))

		require.NoError(t, err)
		assert.True(t, req.SetInvoice)
		assert.True(t, req.SetPayment)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		_, err := parseBillingDatesRequest(strings.NewReader(`{"invoice_date":`))
		assert.Error(t, err)
	})
}
