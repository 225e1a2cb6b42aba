package calendar

import (
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClass() *domain.Class {
	return &domain.Class{
		ID:          "c1",
		Name:        "Morning Yoga",
		Description: "Bring a mat.",
		Instructor:  "Sam",
		Location:    "Studio 2",
		Price:       15,
		StartDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:        "07:30",
		Duration:    90,
		Capacity:    12,
		SlotsLeft:   5,
	}
}

func TestEventFromClass(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	ev, err := eventFromClass(sampleClass(), loc)

	require.NoError(t, err)
	assert.Equal(t, "Morning Yoga", ev.Summary)
	assert.Equal(t, "Studio 2", ev.Location)
	assert.Equal(t, "2025-03-10T07:30:00+02:00", ev.Start.DateTime)
	assert.Equal(t, "2025-03-10T09:00:00+02:00", ev.End.DateTime)
	assert.Equal(t,
		"Instructor: Sam\nPrice: 15.00\nCapacity: 12\nSlots available: 5\n\nBring a mat.",
		ev.Description,
	)
}

func TestEventFromClass_CrossesMidnight(t *testing.T) {
	c := sampleClass()
	c.Time = "23:30"
	c.Duration = 60

	ev, err := eventFromClass(c, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-11T00:30:00Z", ev.End.DateTime)
}

func TestEventFromClass_NoDescription(t *testing.T) {
	c := sampleClass()
	c.Description = ""

	ev, err := eventFromClass(c, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, "Instructor: Sam\nPrice: 15.00\nCapacity: 12\nSlots available: 5", ev.Description)
}

func TestEventFromClass_BadTime(t *testing.T) {
	c := sampleClass()
	c.Time = "7.30pm"

	_, err := eventFromClass(c, time.UTC)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
