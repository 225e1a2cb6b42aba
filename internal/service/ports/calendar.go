package ports

import (
	"context"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

type CalendarProvider interface {
	CreateEventForClass(ctx context.Context, accessToken string, class *domain.Class) (string, error)
	UpdateEventForClass(ctx context.Context, accessToken string, class *domain.Class, eventID string) error
	DeleteEvent(ctx context.Context, accessToken, eventID string) error
}

// CalendarMirror keeps a class's external calendar event in step with the
// class, acting with the given user's credential.
type CalendarMirror interface {
	EnsureClassEvent(ctx context.Context, userID string, class *domain.Class) error
	SyncClassUpdate(ctx context.Context, userID string, class *domain.Class) error
	RemoveClassEvent(ctx context.Context, userID string, class *domain.Class) error
}

// AccessTokenSource returns "" when the user has no usable credential.
type AccessTokenSource interface {
	GetValidAccessToken(ctx context.Context, userID string) (string, error)
	ForceRefresh(ctx context.Context, userID string) (string, error)
}
