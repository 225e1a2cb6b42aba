package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/sealed"
	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// credentialRow is the stored form: tokens only ever leave this package sealed.
type credentialRow struct {
	UserID    string    `db:"user_id"`
	Sealed    []byte    `db:"sealed"`
	ExpiresAt time.Time `db:"expires_at"`
}

type credentialPayload struct {
	AccessToken  string `cbor:"1,keyasint"`
	RefreshToken string `cbor:"2,keyasint,omitempty"`
	ExpiryUnix   int64  `cbor:"3,keyasint"`
}

type CredentialRepository struct {
	db       *dbpg.DB
	x        *sqlx.DB
	sealer   *sealed.Sealer
	strategy retry.Strategy
}

func NewCredentialRepo(db *dbpg.DB, sealer *sealed.Sealer) *CredentialRepository {
	return &CredentialRepository{
		db:     db,
		x:      sqlx.NewDb(db.Master, "postgres"),
		sealer: sealer,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CredentialRepository) Get(ctx context.Context, userID string) (*domain.Credential, error) {
	var row credentialRow
	query := `SELECT user_id, sealed, expires_at FROM calendar_credentials WHERE user_id = $1`
	if err := r.x.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}

	var p credentialPayload
	if err := r.sealer.Open(row.Sealed, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredentialUnreadable, err)
	}

	return &domain.Credential{
		UserID:       row.UserID,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		Expiry:       time.Unix(p.ExpiryUnix, 0).UTC(),
	}, nil
}

func (r *CredentialRepository) Upsert(ctx context.Context, c *domain.Credential) error {
	blob, err := r.sealer.Seal(credentialPayload{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ExpiryUnix:   c.Expiry.Unix(),
	})
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}

	query, args, err := pg.Insert("calendar_credentials").Prepared(true).
		Rows(goqu.Record{
			"user_id":    c.UserID,
			"sealed":     blob,
			"expires_at": c.Expiry.UTC(),
			"updated_at": goqu.L("now()"),
		}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"sealed":     goqu.L("EXCLUDED.sealed"),
			"expires_at": goqu.L("EXCLUDED.expires_at"),
			"updated_at": goqu.L("now()"),
		})).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build credential upsert: %w", err)
	}

	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, args...); err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM calendar_credentials WHERE user_id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	return nil
}
