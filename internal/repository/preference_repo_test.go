package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmylchreest/accentd/internal/models"
)

func setupPreferenceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserPreference{}))
	return db
}

func TestPreferenceRepo_GetByUserID_NotFound(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))

	pref, err := repo.GetByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestPreferenceRepo_Upsert_Create(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	pref := &models.UserPreference{UserID: "u1", PresetKey: "indigo", CustomAccent: "#ABC", NightMode: true}
	require.NoError(t, repo.Upsert(ctx, pref))
	assert.False(t, pref.ID.IsZero())

	found, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, pref.ID, found.ID)
	assert.Equal(t, "indigo", found.PresetKey)
	assert.Equal(t, "#aabbcc", found.CustomAccent)
	assert.True(t, found.NightMode)
}

func TestPreferenceRepo_Upsert_Replace(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	first := &models.UserPreference{UserID: "u1", PresetKey: "indigo", NightMode: true}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &models.UserPreference{UserID: "u1", PresetKey: "teal"}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID, "row identity survives replacement")
	assert.Equal(t, "teal", second.PresetKey)
	assert.False(t, second.NightMode)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPreferenceRepo_Upsert_Invalid(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, &models.UserPreference{UserID: "u1", PresetKey: "plaid"})
	assert.ErrorIs(t, err, models.ErrUnknownPreset)

	err = repo.Upsert(ctx, &models.UserPreference{PresetKey: "ocean"})
	assert.ErrorIs(t, err, models.ErrUserIDRequired)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPreferenceRepo_DeleteByUserID(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.UserPreference{UserID: "u1", PresetKey: "ocean"}))

	deleted, err := repo.DeleteByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, deleted)

	found, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPreferenceRepo_DeleteAll(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Upsert(ctx, &models.UserPreference{UserID: fmt.Sprintf("u%d", i), PresetKey: "ocean"}))
	}

	removed, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPreferenceRepo_List(t *testing.T) {
	repo := NewPreferenceRepository(setupPreferenceTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"carol", "alice", "bob"} {
		require.NoError(t, repo.Upsert(ctx, &models.UserPreference{UserID: id, PresetKey: "slate"}))
	}

	all, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alice", all[0].UserID)
	assert.Equal(t, "carol", all[2].UserID)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "bob", page[0].UserID)
}
