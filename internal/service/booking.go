package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/AbbasJay/be-well-web-sub000/internal/service")

type BookingService struct {
	bookingRepo      ports.BookingRepo
	classRepo        ports.ClassRepo
	notificationRepo ports.NotificationRepo
	mirror           ports.CalendarMirror
	alerter          ports.OperatorAlerter
	logger           logger.Logger
	now              func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	classRepo ports.ClassRepo,
	notificationRepo ports.NotificationRepo,
	mirror ports.CalendarMirror,
	alerter ports.OperatorAlerter,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		classRepo:        classRepo,
		notificationRepo: notificationRepo,
		mirror:           mirror,
		alerter:          alerter,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Create(ctx context.Context, userID, classID string) (*domain.BookingResult, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID), attribute.String("class_id", classID))

	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, failSpan(span, fmt.Errorf("check class: %w", err))
	}

	_, err := s.bookingRepo.GetActive(ctx, userID, classID)
	switch {
	case err == nil:
		return nil, failSpan(span, domain.ErrAlreadyBooked)
	case !errors.Is(err, domain.ErrBookingNotFound):
		return nil, failSpan(span, fmt.Errorf("check active booking: %w", err))
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClassID:   classID,
		Status:    domain.BookingStatusActive,
		CreatedAt: s.now(),
	}
	class, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("create booking: %w", err))
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("class_id", classID),
		logger.String("user_id", userID),
		logger.Int("slots_left", class.SlotsLeft),
	)

	s.notify(ctx, booking, class, domain.NotificationBookingConfirmation,
		"Booking confirmed",
		fmt.Sprintf("Your booking for %s on %s at %s is confirmed.", class.Name, class.StartDate.Format("2006-01-02"), class.Time),
	)

	// Awaited so the response carries the stored event id, but never fatal.
	if err = s.mirror.EnsureClassEvent(ctx, userID, class); err != nil {
		reportMirrorFailure(ctx, s.logger, s.alerter, "create", userID, class.ID, err)
	}

	return &domain.BookingResult{Booking: booking, Class: class}, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.BookingResult, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Cancel")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID), attribute.String("booking_id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("get booking: %w", err))
	}
	if booking.UserID != userID {
		return nil, failSpan(span, domain.ErrBookingNotFound)
	}
	if !booking.IsActive() {
		return nil, failSpan(span, domain.ErrAlreadyCancelled)
	}

	if reason == "" {
		reason = domain.DefaultCancellationReason
	}

	res, err := s.bookingRepo.Cancel(ctx, domain.CancelBookingInput{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    reason,
		At:        s.now(),
	})
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("cancel booking: %w", err))
	}

	if res.SlotClamped {
		s.logger.Error("slot release clamped at capacity",
			logger.String("booking_id", bookingID),
			logger.String("class_id", res.Class.ID),
			logger.Int("capacity", res.Class.Capacity),
		)
		s.alerter.Alert(ctx, "Slot ledger clamp",
			fmt.Sprintf("class %s was already at capacity %d when booking %s released its slot",
				res.Class.ID, res.Class.Capacity, bookingID),
		)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("class_id", res.Class.ID),
		logger.String("user_id", userID),
	)

	s.notify(ctx, res.Booking, res.Class, domain.NotificationClassCancelled,
		"Booking cancelled",
		fmt.Sprintf("Your booking for %s on %s at %s has been cancelled.", res.Class.Name, res.Class.StartDate.Format("2006-01-02"), res.Class.Time),
	)

	return &domain.BookingResult{Booking: res.Booking, Class: res.Class}, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) notify(
	ctx context.Context,
	b *domain.Booking,
	c *domain.Class,
	typ domain.NotificationType,
	title, message string,
) {
	n := &domain.Notification{
		ID:         uuid.New().String(),
		UserID:     b.UserID,
		ClassID:    c.ID,
		BusinessID: c.BusinessID,
		Type:       typ,
		Title:      title,
		Message:    message,
		CreatedAt:  s.now(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("failed to create notification",
			logger.String("type", string(typ)),
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
	}
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
