package ports

import (
	"context"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// OperatorAlerter pushes a message to whoever operates the service.
type OperatorAlerter interface {
	Alert(ctx context.Context, subject, detail string)
}
