package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const classColumns = `id, business_id, name, description, instructor, location, price,
		start_date, class_time, duration_minutes, capacity, slots_left,
		external_event_id, external_event_user_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClass(row rowScanner) (*domain.Class, error) {
	var c domain.Class
	var eventID, eventUserID sql.NullString
	err := row.Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.Instructor, &c.Location, &c.Price,
		&c.StartDate, &c.Time, &c.Duration, &c.Capacity, &c.SlotsLeft,
		&eventID, &eventUserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if eventID.Valid {
		c.ExternalEventID = &eventID.String
	}
	if eventUserID.Valid {
		c.ExternalEventUserID = &eventUserID.String
	}

	return &c, nil
}

type ClassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassRepo(db *dbpg.DB) *ClassRepository {
	return &ClassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `SELECT ` + classColumns + `
			  FROM classes
			  WHERE id = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}

	c, err := scanClass(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class: %w", err)
	}

	return c, nil
}

func (r *ClassRepository) IsOwnedBy(ctx context.Context, classID, userID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM classes c
				JOIN businesses b ON b.id = c.business_id
				WHERE c.id = $1 AND b.owner_id = $2 AND c.deleted_at IS NULL
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, classID, userID)
	if err != nil {
		return false, fmt.Errorf("check class owner: %w", err)
	}

	var owned bool
	if err = row.Scan(&owned); err != nil {
		return false, fmt.Errorf("scan class owner: %w", err)
	}

	return owned, nil
}

func (r *ClassRepository) UpdateDetails(ctx context.Context, id string, in domain.UpdateClassInput) (*domain.Class, error) {
	query := `UPDATE classes
			  SET name = $2, description = $3, instructor = $4, location = $5, price = $6,
			      start_date = $7, class_time = $8, duration_minutes = $9, updated_at = now()
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING ` + classColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		in.Name, in.Description, in.Instructor, in.Location, in.Price,
		in.StartDate, in.Time, in.Duration,
	)
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}

	c, err := scanClass(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class: %w", err)
	}

	return c, nil
}

func (r *ClassRepository) SetExternalEventID(ctx context.Context, id, eventID, ownerUserID string) (bool, error) {
	query := `UPDATE classes
			  SET external_event_id = $2, external_event_user_id = $3, updated_at = now()
			  WHERE id = $1 AND external_event_id IS NULL`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, eventID, ownerUserID)
	if err != nil {
		return false, fmt.Errorf("set external event id: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("external event rows affected: %w", err)
	}

	return rows == 1, nil
}

func (r *ClassRepository) SoftDelete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockClassRow(ctx, tx, id); err != nil {
		return err
	}

	var active int
	activeQuery := `SELECT COUNT(*) FROM bookings WHERE class_id = $1 AND status = $2`
	if err = tx.QueryRowContext(ctx, activeQuery, id, domain.BookingStatusActive).Scan(&active); err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if active > 0 {
		return domain.ErrClassHasActiveBookings
	}

	query := `UPDATE classes SET deleted_at = now(), updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	return tx.Commit()
}

// lockClassRow takes the row lock that serializes every slot change of a class.
func lockClassRow(ctx context.Context, tx *sql.Tx, id string) error {
	var locked string
	query := `SELECT id FROM classes WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrClassNotFound
		}
		return fmt.Errorf("lock class: %w", err)
	}

	return nil
}
