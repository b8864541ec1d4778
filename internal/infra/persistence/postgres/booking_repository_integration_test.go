package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
	"shareit/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_POSTGRES_DSN; without it
// the integration tests are skipped.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.ItemModel{}, &model.BookingModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM bookings")
		db.Exec("DELETE FROM items")
		db.Exec("DELETE FROM users")
	})

	return db
}

func seedBooking(t *testing.T, db *gorm.DB, start, end time.Time, status string) (ownerID, bookerID int64) {
	t.Helper()

	owner := &model.UserModel{Name: "Owner", Email: "owner@example.com"}
	booker := &model.UserModel{Name: "Booker", Email: "booker@example.com"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(booker).Error)

	item := &model.ItemModel{OwnerID: owner.ID, Name: "Drill", Description: "Cordless", Available: true}
	require.NoError(t, db.Create(item).Error)

	booking := &model.BookingModel{
		ItemID:    item.ID,
		BookerID:  booker.ID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
	require.NoError(t, db.Create(booking).Error)

	return owner.ID, booker.ID
}

// A booking whose end equals the query instant is no longer current: the
// window is inclusive of start and exclusive of end.
func TestBookingRepository_Current_EndBoundaryExcluded(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(BookingRepositoryParams{DB: db})
	page := repository.Page{Offset: 0, Limit: 10}

	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	ownerID, bookerID := seedBooking(t, db, now.Add(-time.Hour), now, string(entity.StatusApproved))

	byBooker, err := repo.FindCurrentByBooker(ctx, bookerID, now, page)
	require.NoError(t, err)
	assert.Empty(t, byBooker)

	byOwner, err := repo.FindCurrentByOwner(ctx, ownerID, now, page)
	require.NoError(t, err)
	assert.Empty(t, byOwner)
}

func TestBookingRepository_Current_OpenWindowIncluded(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(BookingRepositoryParams{DB: db})
	page := repository.Page{Offset: 0, Limit: 10}

	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	ownerID, bookerID := seedBooking(t, db, now.Add(-time.Hour), now.Add(time.Hour), string(entity.StatusApproved))

	byBooker, err := repo.FindCurrentByBooker(ctx, bookerID, now, page)
	require.NoError(t, err)
	require.Len(t, byBooker, 1)

	byOwner, err := repo.FindCurrentByOwner(ctx, ownerID, now, page)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
}

// A booking starting exactly at the query instant is already current, not
// future.
func TestBookingRepository_StartBoundary(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(BookingRepositoryParams{DB: db})
	page := repository.Page{Offset: 0, Limit: 10}

	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	_, bookerID := seedBooking(t, db, now, now.Add(time.Hour), string(entity.StatusApproved))

	current, err := repo.FindCurrentByBooker(ctx, bookerID, now, page)
	require.NoError(t, err)
	require.Len(t, current, 1)

	future, err := repo.FindFutureByBooker(ctx, bookerID, now, page)
	require.NoError(t, err)
	assert.Empty(t, future)
}
