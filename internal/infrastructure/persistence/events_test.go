package persistence

import (
	"context"
	"testing"

	"github.com/gemba/backend/internal/domain/partner"
	"github.com/gemba/backend/internal/domain/works"
	"github.com/gemba/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDrainDomainEvents(t *testing.T) {
	t.Run("logs each recorded event and clears the buffer", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := logger.WithContext(context.Background(), zap.New(core))

		tenantID := uuid.New()
		project, err := works.NewProject(tenantID, uuid.New(), "102", "青葉台の家 新築工事", 25, 3000000)
		require.NoError(t, err)
		require.NotEmpty(t, project.GetDomainEvents())

		drainDomainEvents(ctx, project)

		assert.Empty(t, project.GetDomainEvents())
		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "domain event", entries[0].Message)

		fields := entries[0].ContextMap()
		assert.Equal(t, works.EventTypeProjectCreated, fields["event_type"])
		assert.Equal(t, works.AggregateTypeProject, fields["aggregate_type"])
		assert.Equal(t, project.ID.String(), fields["aggregate_id"])
		assert.Equal(t, tenantID.String(), fields["tenant_id"])
	})

	t.Run("does nothing for an aggregate without pending events", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := logger.WithContext(context.Background(), zap.New(core))

		project, err := works.NewProject(uuid.New(), uuid.New(), "103", "外壁塗装工事", 25, 500000)
		require.NoError(t, err)
		project.ClearDomainEvents()

		drainDomainEvents(ctx, project)

		assert.Zero(t, logs.Len())
	})
}

func TestSaveDrainsDomainEvents(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&partner.Vendor{}))

	repo := NewGormVendorRepository(db)
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithContext(context.Background(), zap.New(core))

	vendor, err := partner.NewVendor(uuid.New(), "山田電設株式会社", "外注費", "03-1234-5678", "")
	require.NoError(t, err)
	require.NotEmpty(t, vendor.GetDomainEvents())

	require.NoError(t, repo.Save(ctx, vendor))

	assert.Empty(t, vendor.GetDomainEvents())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, partner.EventTypeVendorCreated, logs.All()[0].ContextMap()["event_type"])

	// A second save of the same instance must not replay the creation event.
	require.NoError(t, repo.Save(ctx, vendor))
	assert.Equal(t, 1, logs.Len())
}
