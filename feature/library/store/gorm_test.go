package store_test

import (
	"context"
	"testing"
	"time"

	"gamesync/core/database"
	"gamesync/feature/library/models"
	"gamesync/feature/library/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *store.GormStore {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	s := store.NewGormStore(db)
	require.NoError(t, s.Migrate())
	return s
}

func sampleGame(id uint64, owners ...string) models.GameRecord {
	return models.GameRecord{
		ItemID:      id,
		Name:        "Sample Game",
		Description: "A sample game record",
		Price: &models.PriceQuote{
			Currency:        "EUR",
			Initial:         1999,
			Final:           999,
			DiscountPercent: 50,
		},
		Platforms:    models.Platforms{Windows: true, Linux: true},
		Media:        models.MediaRefs{HeaderImage: "https://cdn.example/header.jpg"},
		Owners:       models.NewOwnership("steam", owners),
		LastModified: time.Now().UTC(),
	}
}

func TestGormStore_GetGame(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	t.Run("Absent record returns nil", func(t *testing.T) {
		record, err := s.GetGame(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("Stored record round-trips", func(t *testing.T) {
		original := sampleGame(42, "111", "222")
		require.NoError(t, s.BulkUpsert(ctx, []models.GameRecord{original}))

		record, err := s.GetGame(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, uint64(42), record.ItemID)
		assert.Equal(t, "Sample Game", record.Name)
		assert.Equal(t, []string{"111", "222"}, record.Owners.Owners("steam"))
		require.NotNil(t, record.Price)
		assert.Equal(t, int64(999), record.Price.Final)
		assert.True(t, record.Platforms.Linux)
	})
}

func TestGormStore_BulkUpsertIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	batch := []models.GameRecord{sampleGame(1, "111"), sampleGame(2, "111")}
	require.NoError(t, s.BulkUpsert(ctx, batch))
	require.NoError(t, s.BulkUpsert(ctx, batch))

	ids, err := s.ListGameIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestGormStore_BulkUpsertReplaces(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.BulkUpsert(ctx, []models.GameRecord{sampleGame(7, "111")}))

	updated := sampleGame(7, "111", "222")
	updated.Name = "Renamed Game"
	require.NoError(t, s.BulkUpsert(ctx, []models.GameRecord{updated}))

	record, err := s.GetGame(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Renamed Game", record.Name)
	assert.Equal(t, []string{"111", "222"}, record.Owners.Owners("steam"))
}

func TestGormStore_BulkUpsertEmptyIsNoOp(t *testing.T) {
	s := setupStore(t)

	assert.NoError(t, s.BulkUpsert(context.Background(), nil))
}

func TestGormStore_Blacklist(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	blacklisted, err := s.IsBlacklisted(ctx, 99)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, s.AddToBlacklist(ctx, 99))
	require.NoError(t, s.AddToBlacklist(ctx, 100))
	// Re-adding must not fail
	require.NoError(t, s.AddToBlacklist(ctx, 99))

	blacklisted, err = s.IsBlacklisted(ctx, 99)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	ids, err := s.BlacklistIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{99, 100}, ids)

	entries, err := s.ListBlacklist(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.NotZero(t, entries[0].UpdatedAt)

	require.NoError(t, s.RemoveFromBlacklist(ctx, 99))
	blacklisted, err = s.IsBlacklisted(ctx, 99)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

// setupMockDB wires GORM onto sqlmock so SQL shapes can be asserted against
// the MySQL dialect used in production.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_ListGameIDsProjection(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	rows := sqlmock.NewRows([]string{"item_id"}).AddRow(1).AddRow(2).AddRow(3)
	mock.ExpectQuery("SELECT `item_id` FROM `games`").WillReturnRows(rows)

	ids, err := s.ListGameIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_IsBlacklistedPointLookup(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	rows := sqlmock.NewRows([]string{"count(*)"}).AddRow(1)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blacklist` WHERE item_id = \\?").
		WithArgs(uint64(4711)).
		WillReturnRows(rows)

	blacklisted, err := s.IsBlacklisted(context.Background(), 4711)
	require.NoError(t, err)
	assert.True(t, blacklisted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
