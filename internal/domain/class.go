package domain

import "time"

// ClassTimeLayout is the wall-clock format of Class.Time.
const ClassTimeLayout = "15:04"

type Class struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"business_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Instructor      string    `json:"instructor"`
	Location        string    `json:"location"`
	Price           float64   `json:"price"`
	StartDate       time.Time `json:"start_date"`
	Time            string    `json:"time"`
	Duration        int       `json:"duration"`
	Capacity        int       `json:"capacity"`
	SlotsLeft       int       `json:"slots_left"`
	ExternalEventID *string   `json:"external_event_id,omitempty"`
	// ExternalEventUserID owns the calendar holding ExternalEventID.
	ExternalEventUserID *string   `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (c *Class) HasExternalEvent() bool {
	return c.ExternalEventID != nil && *c.ExternalEventID != ""
}

// UpdateClassInput carries the descriptive fields a business owner may edit.
// Capacity is fixed at creation and is not part of it.
type UpdateClassInput struct {
	Name        string
	Description string
	Instructor  string
	Location    string
	Price       float64
	StartDate   time.Time
	Time        string
	Duration    int
}
