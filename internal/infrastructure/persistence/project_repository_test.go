package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormProjectRepository_FindByIDForTenant(t *testing.T) {
	t.Run("finds project within tenant", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProjectRepository(gormDB)

		projectID := uuid.New()
		tenantID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "code", "name", "period", "contract_amount", "status"}).
			AddRow(projectID, tenantID, "102", "変電所改修", 25, int64(1500000), "active")

		mock.ExpectQuery(`SELECT \* FROM "projects" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, projectID, 1).
			WillReturnRows(rows)

		project, err := repo.FindByIDForTenant(context.Background(), tenantID, projectID)

		require.NoError(t, err)
		assert.Equal(t, projectID, project.ID)
		assert.Equal(t, "102", project.Code)
		assert.Equal(t, 25, project.Period)
		assert.Equal(t, int64(1500000), project.ContractAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record-not-found to domain error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProjectRepository(gormDB)

		projectID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "projects" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, projectID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		project, err := repo.FindByIDForTenant(context.Background(), tenantID, projectID)

		assert.Nil(t, project)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProjectRepository_ExistsByCodeForUser(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProjectRepository(gormDB)

	tenantID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE tenant_id = \$1 AND user_id = \$2 AND code = \$3`).
		WithArgs(tenantID, userID, "102").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByCodeForUser(context.Background(), tenantID, userID, "102")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_FindByPeriodForTenant(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProjectRepository(gormDB)

	tenantID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "code", "period"}).
		AddRow(uuid.New(), tenantID, "101", 25).
		AddRow(uuid.New(), tenantID, "102", 25)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE tenant_id = \$1 AND period = \$2 ORDER BY code ASC`).
		WithArgs(tenantID, 25).
		WillReturnRows(rows)

	projects, err := repo.FindByPeriodForTenant(context.Background(), tenantID, 25)

	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_DeleteForTenant(t *testing.T) {
	t.Run("deletes existing project", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProjectRepository(gormDB)

		projectID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectExec(`DELETE FROM "projects" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, projectID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForTenant(context.Background(), tenantID, projectID)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting missing project reports not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProjectRepository(gormDB)

		projectID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectExec(`DELETE FROM "projects" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, projectID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForTenant(context.Background(), tenantID, projectID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
