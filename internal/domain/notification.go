package domain

import "time"

type NotificationType string

const (
	NotificationBookingConfirmation NotificationType = "booking_confirmation"
	NotificationClassCancelled      NotificationType = "class_cancelled"
)

type Notification struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	ClassID    string           `json:"class_id"`
	BusinessID string           `json:"business_id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Read       bool             `json:"read"`
	CreatedAt  time.Time        `json:"created_at"`
}
