// Package calendar talks to Google Calendar: it turns classes into events
// and runs the OAuth 2.0 flow that grants access to a user's calendar.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type GoogleCalendar struct {
	calendarID string
	loc        *time.Location
	timeout    time.Duration
	// extra client options, used to point the client at a test server
	opts []option.ClientOption
}

func NewGoogleCalendar(calendarID, timeZone string, timeout time.Duration, opts ...option.ClientOption) (*GoogleCalendar, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", timeZone, err)
	}

	return &GoogleCalendar{
		calendarID: calendarID,
		loc:        loc,
		timeout:    timeout,
		opts:       opts,
	}, nil
}

func (g *GoogleCalendar) CreateEventForClass(ctx context.Context, accessToken string, class *domain.Class) (string, error) {
	ev, err := eventFromClass(class, g.loc)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	svc, err := g.service(ctx, accessToken)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(g.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", classifyError("insert event", err)
	}

	return created.Id, nil
}

func (g *GoogleCalendar) UpdateEventForClass(ctx context.Context, accessToken string, class *domain.Class, eventID string) error {
	ev, err := eventFromClass(class, g.loc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	svc, err := g.service(ctx, accessToken)
	if err != nil {
		return err
	}

	if _, err = svc.Events.Patch(g.calendarID, eventID, ev).Context(ctx).Do(); err != nil {
		return classifyError("patch event", err)
	}

	return nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	svc, err := g.service(ctx, accessToken)
	if err != nil {
		return err
	}

	err = svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		// already gone
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return nil
		}
		return classifyError("delete event", err)
	}

	return nil
}

func (g *GoogleCalendar) service(ctx context.Context, accessToken string) (*gcal.Service, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, g.opts...)

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: calendar client: %w", domain.ErrIntegration, err)
	}

	return svc, nil
}

func classifyError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, domain.ErrCalendarUnauthorized)
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrIntegration, op, err)
}
