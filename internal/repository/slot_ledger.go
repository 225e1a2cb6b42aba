package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

// SlotLedger owns classes.slots_left. Both operations run inside the
// caller's transaction and lock the class row, so concurrent reservations
// of one class are serialized.
type SlotLedger struct{}

func (SlotLedger) Reserve(ctx context.Context, tx *sql.Tx, classID string) (*domain.Class, error) {
	c, err := selectClassForUpdate(ctx, tx, classID)
	if err != nil {
		return nil, err
	}

	if c.SlotsLeft <= 0 {
		return nil, domain.ErrClassFull
	}

	return updateSlotsLeft(ctx, tx, classID, c.SlotsLeft-1)
}

// Release gives one slot back. The count never exceeds capacity; clamped
// reports that it would have.
func (SlotLedger) Release(ctx context.Context, tx *sql.Tx, classID string) (*domain.Class, bool, error) {
	c, err := selectClassForUpdate(ctx, tx, classID)
	if err != nil {
		return nil, false, err
	}

	if c.SlotsLeft >= c.Capacity {
		return c, true, nil
	}

	c, err = updateSlotsLeft(ctx, tx, classID, c.SlotsLeft+1)
	if err != nil {
		return nil, false, err
	}

	return c, false, nil
}

func selectClassForUpdate(ctx context.Context, tx *sql.Tx, classID string) (*domain.Class, error) {
	query := `SELECT ` + classColumns + `
			  FROM classes
			  WHERE id = $1 AND deleted_at IS NULL
			  FOR UPDATE`

	c, err := scanClass(tx.QueryRowContext(ctx, query, classID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("lock class slots: %w", err)
	}

	return c, nil
}

func updateSlotsLeft(ctx context.Context, tx *sql.Tx, classID string, slotsLeft int) (*domain.Class, error) {
	query := `UPDATE classes
			  SET slots_left = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + classColumns

	c, err := scanClass(tx.QueryRowContext(ctx, query, classID, slotsLeft))
	if err != nil {
		return nil, fmt.Errorf("update slots left: %w", err)
	}

	return c, nil
}
