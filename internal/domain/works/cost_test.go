package works

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costDate() time.Time {
	return time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
}

func TestNewCost(t *testing.T) {
	tenantID := uuid.New()
	projectID := uuid.New()

	t.Run("valid cost", func(t *testing.T) {
		c, err := NewCost(tenantID, projectID, costDate(), "電材商会", "配線材", "材料費", 40000, TaxTypeIncluded)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), c.Amount)
		assert.Equal(t, c.Amount, c.TotalAmount)
		assert.Equal(t, PaymentStatusUnpaid, c.PaymentStatus)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("missing project rejected", func(t *testing.T) {
		_, err := NewCost(tenantID, uuid.Nil, costDate(), "", "", "", 100, TaxTypeIncluded)
		require.Error(t, err)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewCost(tenantID, projectID, costDate(), "", "", "", -1, TaxTypeIncluded)
		require.Error(t, err)
	})

	t.Run("empty category falls back to default", func(t *testing.T) {
		c, err := NewCost(tenantID, projectID, costDate(), "", "", "", 100, TaxTypeIncluded)
		require.NoError(t, err)
		assert.Equal(t, DefaultCostCategory, c.Category)
	})

	t.Run("empty tax type falls back to included", func(t *testing.T) {
		c, err := NewCost(tenantID, projectID, costDate(), "", "", "", 100, "")
		require.NoError(t, err)
		assert.Equal(t, TaxTypeIncluded, c.TaxType)
	})
}

func TestCostUpdateKeepsAmountsInLockstep(t *testing.T) {
	c, err := NewCost(uuid.New(), uuid.New(), costDate(), "", "", "外注費", 100, TaxTypeIncluded)
	require.NoError(t, err)

	require.NoError(t, c.Update(costDate(), "山本電設", "追加工事", "外注費", 250000, TaxTypeExcluded))
	assert.Equal(t, int64(250000), c.Amount)
	assert.Equal(t, c.Amount, c.TotalAmount)
	assert.Equal(t, TaxTypeExcluded, c.TaxType)
}

func TestCostPayment(t *testing.T) {
	c, err := NewCost(uuid.New(), uuid.New(), costDate(), "", "", "", 100, TaxTypeIncluded)
	require.NoError(t, err)

	paid := costDate().AddDate(0, 1, 0)
	require.NoError(t, c.MarkPaid(paid))
	assert.Equal(t, PaymentStatusPaid, c.PaymentStatus)
	require.NotNil(t, c.PaymentDate)
	assert.Equal(t, paid, *c.PaymentDate)

	require.Error(t, c.MarkPaid(paid))

	require.NoError(t, c.MarkUnpaid())
	assert.Nil(t, c.PaymentDate)
	require.Error(t, c.MarkUnpaid())
}
