package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

// CalendarMirror mirrors classes onto an external calendar. One event exists
// per class; its id and the user whose calendar holds it live on the class
// row, and later updates and deletes go through that user's credential.
type CalendarMirror struct {
	provider  ports.CalendarProvider
	tokens    ports.AccessTokenSource
	classRepo ports.ClassRepo
	timeout   time.Duration
	logger    logger.Logger
}

// NewCalendarMirror bounds every mirroring step, token refresh and retry
// included, by timeout.
func NewCalendarMirror(
	provider ports.CalendarProvider,
	tokens ports.AccessTokenSource,
	classRepo ports.ClassRepo,
	timeout time.Duration,
	logger logger.Logger,
) *CalendarMirror {
	return &CalendarMirror{
		provider:  provider,
		tokens:    tokens,
		classRepo: classRepo,
		timeout:   timeout,
		logger:    logger,
	}
}

func (m *CalendarMirror) EnsureClassEvent(ctx context.Context, userID string, class *domain.Class) error {
	if class.HasExternalEvent() {
		return nil
	}

	ctx, span := tracer.Start(ctx, "CalendarMirror.EnsureClassEvent")
	defer span.End()
	span.SetAttributes(attribute.String("class_id", class.ID))

	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var eventID, usedToken string
	err := m.withToken(callCtx, userID, func(token string) error {
		id, err := m.provider.CreateEventForClass(callCtx, token, class)
		if err != nil {
			return err
		}
		eventID, usedToken = id, token
		return nil
	})
	if err != nil {
		return failSpan(span, fmt.Errorf("create calendar event: %w", err))
	}

	// The event exists now; record it even if the budget ran out meanwhile.
	stored, err := m.classRepo.SetExternalEventID(context.WithoutCancel(ctx), class.ID, eventID, userID)
	if err != nil {
		return failSpan(span, fmt.Errorf("store external event id: %w", err))
	}

	if !stored {
		// Another request mirrored the class first; drop the duplicate.
		m.logger.Warn("class already has a calendar event, removing duplicate",
			logger.String("class_id", class.ID),
			logger.String("event_id", eventID),
		)
		if err = m.provider.DeleteEvent(callCtx, usedToken, eventID); err != nil {
			m.logger.Error("failed to delete duplicate calendar event",
				logger.String("class_id", class.ID),
				logger.String("event_id", eventID),
				logger.String("error", err.Error()),
			)
		}
		return nil
	}

	class.ExternalEventID = &eventID
	class.ExternalEventUserID = &userID
	m.logger.Info("calendar event created",
		logger.String("class_id", class.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}

func (m *CalendarMirror) SyncClassUpdate(ctx context.Context, userID string, class *domain.Class) error {
	if !class.HasExternalEvent() {
		return nil
	}

	ctx, span := tracer.Start(ctx, "CalendarMirror.SyncClassUpdate")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.withToken(ctx, eventOwner(class, userID), func(token string) error {
		return m.provider.UpdateEventForClass(ctx, token, class, *class.ExternalEventID)
	})
	if err != nil {
		return failSpan(span, fmt.Errorf("update calendar event: %w", err))
	}

	return nil
}

func (m *CalendarMirror) RemoveClassEvent(ctx context.Context, userID string, class *domain.Class) error {
	if !class.HasExternalEvent() {
		return nil
	}

	ctx, span := tracer.Start(ctx, "CalendarMirror.RemoveClassEvent")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.withToken(ctx, eventOwner(class, userID), func(token string) error {
		return m.provider.DeleteEvent(ctx, token, *class.ExternalEventID)
	})
	if err != nil {
		return failSpan(span, fmt.Errorf("delete calendar event: %w", err))
	}

	return nil
}

// eventOwner is the user whose calendar holds the class event. Rows mirrored
// before the owner was recorded fall back to the acting user.
func eventOwner(class *domain.Class, actingUserID string) string {
	if class.ExternalEventUserID != nil && *class.ExternalEventUserID != "" {
		return *class.ExternalEventUserID
	}
	return actingUserID
}

// withToken runs call with the user's access token and, if the provider
// rejects it, once more with a freshly refreshed one.
func (m *CalendarMirror) withToken(ctx context.Context, userID string, call func(token string) error) error {
	token, err := m.tokens.GetValidAccessToken(ctx, userID)
	if err != nil {
		return err
	}
	if token == "" {
		return domain.ErrCalendarNotConnected
	}

	err = call(token)
	if !errors.Is(err, domain.ErrCalendarUnauthorized) {
		return err
	}

	token, err = m.tokens.ForceRefresh(ctx, userID)
	if err != nil {
		return err
	}
	if token == "" {
		return domain.ErrCalendarNotConnected
	}

	return call(token)
}

func reportMirrorFailure(
	ctx context.Context,
	log logger.Logger,
	alerter ports.OperatorAlerter,
	op, userID, classID string,
	err error,
) {
	if errors.Is(err, domain.ErrCalendarNotConnected) {
		log.Debug("calendar mirroring skipped, no credential",
			logger.String("op", op),
			logger.String("user_id", userID),
			logger.String("class_id", classID),
		)
		return
	}

	log.Error("calendar mirroring failed",
		logger.String("op", op),
		logger.String("user_id", userID),
		logger.String("class_id", classID),
		logger.String("error", err.Error()),
	)
	alerter.Alert(ctx, "Calendar mirroring failed",
		fmt.Sprintf("%s for class %s (user %s): %v", op, classID, userID, err))
}
