//go:build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// Run with: BEWELL_TEST_POSTGRES_DSN=... go test -tags integration ./internal/repository/
const dsnEnv = "BEWELL_TEST_POSTGRES_DSN"

func openTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", dsnEnv)
	}

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(raw, "../../migrations"))
	_, err = raw.Exec(`TRUNCATE calendar_credentials, notifications, bookings, classes, businesses`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 32, MaxIdleConns: 8})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

type fixture struct {
	ownerID    string
	businessID string
}

func seedBusiness(t *testing.T, db *dbpg.DB) fixture {
	t.Helper()
	f := fixture{ownerID: uuid.New().String(), businessID: uuid.New().String()}
	_, err := db.Master.Exec(`INSERT INTO businesses (id, owner_id, name) VALUES ($1, $2, 'Studio')`,
		f.businessID, f.ownerID)
	require.NoError(t, err)
	return f
}

func seedClass(t *testing.T, db *dbpg.DB, f fixture, capacity, slotsLeft int) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Master.Exec(`
		INSERT INTO classes (id, business_id, name, start_date, class_time, duration_minutes, capacity, slots_left)
		VALUES ($1, $2, 'Yoga', $3, '07:30', 60, $4, $5)`,
		id, f.businessID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), capacity, slotsLeft)
	require.NoError(t, err)
	return id
}

func newBooking(userID, classID string) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClassID:   classID,
		Status:    domain.BookingStatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

func cancelInput(b *domain.Booking) domain.CancelBookingInput {
	return domain.CancelBookingInput{
		BookingID: b.ID,
		UserID:    b.UserID,
		Reason:    domain.DefaultCancellationReason,
		At:        time.Now().UTC(),
	}
}

func slotsLeft(t *testing.T, ctx context.Context, repo *ClassRepository, classID string) int {
	t.Helper()
	c, err := repo.GetByID(ctx, classID)
	require.NoError(t, err)
	return c.SlotsLeft
}
