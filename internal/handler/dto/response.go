package dto

import (
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

const DateLayout = "2006-01-02"

type ClassResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"business_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Instructor      string  `json:"instructor"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	StartDate       string  `json:"start_date"`
	Time            string  `json:"time"`
	Duration        int     `json:"duration"`
	Capacity        int     `json:"capacity"`
	SlotsLeft       int     `json:"slots_left"`
	ExternalEventID *string `json:"external_event_id,omitempty"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	ClassID            string  `json:"class_id"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

type BookingResultResponse struct {
	Class   ClassResponse   `json:"class"`
	Booking BookingResponse `json:"booking"`
}

type CalendarAuthResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	URL         string `json:"url,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ID:              c.ID,
		BusinessID:      c.BusinessID,
		Name:            c.Name,
		Description:     c.Description,
		Instructor:      c.Instructor,
		Location:        c.Location,
		Price:           c.Price,
		StartDate:       c.StartDate.Format(DateLayout),
		Time:            c.Time,
		Duration:        c.Duration,
		Capacity:        c.Capacity,
		SlotsLeft:       c.SlotsLeft,
		ExternalEventID: c.ExternalEventID,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		ClassID:            b.ClassID,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		CancellationReason: b.CancellationReason,
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}

	return resp
}

func ToBookingResultResponse(r *domain.BookingResult) BookingResultResponse {
	return BookingResultResponse{
		Class:   ToClassResponse(r.Class),
		Booking: ToBookingResponse(r.Booking),
	}
}
