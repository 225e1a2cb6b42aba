package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, class_id, status, created_at, cancelled_at, cancellation_reason`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime
	var reason sql.NullString
	if err := row.Scan(&b.ID, &b.UserID, &b.ClassID, &b.Status, &b.CreatedAt, &cancelledAt, &reason); err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	if reason.Valid {
		b.CancellationReason = &reason.String
	}

	return &b, nil
}

type BookingRepository struct {
	db       *dbpg.DB
	ledger   SlotLedger
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetActive(ctx context.Context, userID, classID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1 AND class_id = $2 AND status = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, classID, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get active booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Class, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	existsQuery := `SELECT EXISTS (
						SELECT 1 FROM bookings
						WHERE user_id = $1 AND class_id = $2 AND status = $3
					)`
	if err = tx.QueryRowContext(ctx, existsQuery, b.UserID, b.ClassID, domain.BookingStatusActive).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check active booking: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyBooked
	}

	class, err := r.ledger.Reserve(ctx, tx, b.ClassID)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO bookings (id, user_id, class_id, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, query, b.ID, b.UserID, b.ClassID, b.Status, b.CreatedAt)
	if err != nil {
		// bookings_one_active_per_user_class
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	return class, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, in domain.CancelBookingInput) (*domain.Cancellation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Class row first, booking row second: the same order Create locks in.
	var classID, ownerID string
	lookup := `SELECT class_id, user_id FROM bookings WHERE id = $1`
	if err = tx.QueryRowContext(ctx, lookup, in.BookingID).Scan(&classID, &ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lookup booking: %w", err)
	}
	if ownerID != in.UserID {
		return nil, domain.ErrBookingNotFound
	}

	if err = lockClassRow(ctx, tx, classID); err != nil {
		return nil, err
	}

	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, in.BookingID))
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	if !b.IsActive() {
		return nil, domain.ErrAlreadyCancelled
	}

	class, clamped, err := r.ledger.Release(ctx, tx, classID)
	if err != nil {
		return nil, err
	}

	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3, cancellation_reason = $4
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err = scanBooking(tx.QueryRowContext(ctx, query, in.BookingID, domain.BookingStatusCancelled, in.At, in.Reason))
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}

	return &domain.Cancellation{Booking: b, Class: class, SlotClamped: clamped}, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
