package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func newTestCalendar(t *testing.T, h http.HandlerFunc) *GoogleCalendar {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := NewGoogleCalendar("primary", "UTC", 2*time.Second, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return g
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": http.StatusText(code)},
	})
}

func TestGoogleCalendar_CreateEventForClass(t *testing.T) {
	var got gcal.Event
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ev1"})
	})

	id, err := g.CreateEventForClass(context.Background(), "tok", sampleClass())

	require.NoError(t, err)
	assert.Equal(t, "ev1", id)
	assert.Equal(t, "Morning Yoga", got.Summary)
	assert.Equal(t, "2025-03-10T07:30:00Z", got.Start.DateTime)
}

func TestGoogleCalendar_CreateEventForClass_Unauthorized(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, _ *http.Request) {
		writeAPIError(w, http.StatusUnauthorized)
	})

	_, err := g.CreateEventForClass(context.Background(), "expired", sampleClass())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCalendarUnauthorized)
}

func TestGoogleCalendar_CreateEventForClass_ServerError(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, _ *http.Request) {
		writeAPIError(w, http.StatusInternalServerError)
	})

	_, err := g.CreateEventForClass(context.Background(), "tok", sampleClass())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)
	assert.NotErrorIs(t, err, domain.ErrCalendarUnauthorized)
}

func TestGoogleCalendar_UpdateEventForClass(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/calendars/primary/events/ev1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ev1"})
	})

	require.NoError(t, g.UpdateEventForClass(context.Background(), "tok", sampleClass(), "ev1"))
}

func TestGoogleCalendar_DeleteEvent(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/calendars/primary/events/ev1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, g.DeleteEvent(context.Background(), "tok", "ev1"))
}

func TestGoogleCalendar_DeleteEvent_AlreadyGone(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, _ *http.Request) {
		writeAPIError(w, http.StatusGone)
	})

	require.NoError(t, g.DeleteEvent(context.Background(), "tok", "ev1"))
}

func TestGoogleCalendar_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	g, err := NewGoogleCalendar("primary", "UTC", 50*time.Millisecond, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, err = g.CreateEventForClass(context.Background(), "tok", sampleClass())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)
}

func TestNewGoogleCalendar_BadTimeZone(t *testing.T) {
	_, err := NewGoogleCalendar("primary", "Mars/Olympus", time.Second)

	require.Error(t, err)
}
