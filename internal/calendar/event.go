package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	gcal "google.golang.org/api/calendar/v3"
)

// classWindow resolves a class's start date and "HH:MM" time in loc.
func classWindow(c *domain.Class, loc *time.Location) (time.Time, time.Time, error) {
	clock, err := time.Parse(domain.ClassTimeLayout, c.Time)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: class time %q", domain.ErrValidation, c.Time)
	}

	y, m, d := c.StartDate.Date()
	start := time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc)
	end := start.Add(time.Duration(c.Duration) * time.Minute)

	return start, end, nil
}

func describeClass(c *domain.Class) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instructor: %s\n", c.Instructor)
	fmt.Fprintf(&b, "Price: %.2f\n", c.Price)
	fmt.Fprintf(&b, "Capacity: %d\n", c.Capacity)
	fmt.Fprintf(&b, "Slots available: %d", c.SlotsLeft)
	if c.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Description)
	}

	return b.String()
}

func eventFromClass(c *domain.Class, loc *time.Location) (*gcal.Event, error) {
	start, end, err := classWindow(c, loc)
	if err != nil {
		return nil, err
	}

	return &gcal.Event{
		Summary:     c.Name,
		Description: describeClass(c),
		Location:    c.Location,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}, nil
}
