package ports

import (
	"context"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

type ClassRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	IsOwnedBy(ctx context.Context, classID, userID string) (bool, error)
	UpdateDetails(ctx context.Context, id string, input domain.UpdateClassInput) (*domain.Class, error)
	// SetExternalEventID stores eventID, together with the user whose calendar
	// holds it, only when the class has none yet and reports whether it did.
	SetExternalEventID(ctx context.Context, id, eventID, ownerUserID string) (bool, error)
	SoftDelete(ctx context.Context, id string) error
}
