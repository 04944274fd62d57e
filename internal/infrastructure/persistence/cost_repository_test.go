package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCostRepository_FindByProjectForTenant(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCostRepository(gormDB)

	tenantID := uuid.New()
	projectID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "project_id", "category", "amount"}).
		AddRow(uuid.New(), tenantID, projectID, "材料費", int64(400000)).
		AddRow(uuid.New(), tenantID, projectID, "外注費", int64(200000))

	mock.ExpectQuery(`SELECT \* FROM "costs" WHERE tenant_id = \$1 AND project_id = \$2 ORDER BY date ASC, created_at ASC`).
		WithArgs(tenantID, projectID).
		WillReturnRows(rows)

	costs, err := repo.FindByProjectForTenant(context.Background(), tenantID, projectID)

	require.NoError(t, err)
	require.Len(t, costs, 2)
	assert.Equal(t, "材料費", costs[0].Category)
	assert.Equal(t, int64(400000), costs[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCostRepository_FindByDateRangeForTenant(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCostRepository(gormDB)

	tenantID := uuid.New()
	from := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "date", "amount"}).
		AddRow(uuid.New(), tenantID, time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC), int64(50000))

	mock.ExpectQuery(`SELECT \* FROM "costs" WHERE tenant_id = \$1 AND date >= \$2 AND date < \$3 ORDER BY date ASC`).
		WithArgs(tenantID, from, to).
		WillReturnRows(rows)

	costs, err := repo.FindByDateRangeForTenant(context.Background(), tenantID, from, to)

	require.NoError(t, err)
	assert.Len(t, costs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCostRepository_DeleteByProjectForTenant(t *testing.T) {
	t.Run("zero rows deleted is not an error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCostRepository(gormDB)

		tenantID := uuid.New()
		projectID := uuid.New()

		mock.ExpectExec(`DELETE FROM "costs" WHERE tenant_id = \$1 AND project_id = \$2`).
			WithArgs(tenantID, projectID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByProjectForTenant(context.Background(), tenantID, projectID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
