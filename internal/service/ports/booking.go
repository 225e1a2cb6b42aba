package ports

import (
	"context"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetActive(ctx context.Context, userID, classID string) (*domain.Booking, error)
	// Create reserves a slot and inserts the booking in one transaction.
	Create(ctx context.Context, b *domain.Booking) (*domain.Class, error)
	// Cancel releases the slot and marks the booking cancelled in one transaction.
	Cancel(ctx context.Context, input domain.CancelBookingInput) (*domain.Cancellation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
