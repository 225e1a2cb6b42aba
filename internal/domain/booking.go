package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const DefaultCancellationReason = "Cancelled by user"

type Booking struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	ClassID            string        `json:"class_id"`
	Status             BookingStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CancellationReason *string       `json:"cancellation_reason,omitempty"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// BookingResult is what the booking endpoints hand back: the booking and the
// class as it looks after the slot change.
type BookingResult struct {
	Booking *Booking `json:"booking"`
	Class   *Class   `json:"class"`
}

type CancelBookingInput struct {
	BookingID string
	UserID    string
	Reason    string
	At        time.Time
}

// Cancellation is the outcome of the cancel transaction. SlotClamped reports
// that releasing the slot would have pushed slots_left past capacity.
type Cancellation struct {
	Booking     *Booking
	Class       *Class
	SlotClamped bool
}
