package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var pg = goqu.Dialect("postgres")

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query, args, err := pg.Insert("notifications").Prepared(true).Rows(goqu.Record{
		"id":          n.ID,
		"user_id":     n.UserID,
		"class_id":    n.ClassID,
		"business_id": n.BusinessID,
		"type":        string(n.Type),
		"title":       n.Title,
		"message":     n.Message,
		"read":        n.Read,
		"created_at":  n.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build notification insert: %w", err)
	}

	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, args...); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}
