package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookingRepo      *mocks.MockBookingRepo
	classRepo        *mocks.MockClassRepo
	notificationRepo *mocks.MockNotificationRepo
	mirror           *mocks.MockCalendarMirror
	alerter          *mocks.MockOperatorAlerter
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookingRepo:      mocks.NewMockBookingRepo(t),
		classRepo:        mocks.NewMockClassRepo(t),
		notificationRepo: mocks.NewMockNotificationRepo(t),
		mirror:           mocks.NewMockCalendarMirror(t),
		alerter:          mocks.NewMockOperatorAlerter(t),
	}
	svc := NewBookingService(d.bookingRepo, d.classRepo, d.notificationRepo, d.mirror, d.alerter, newTestLogger(t))
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, d
}

func testClass(slotsLeft int) *domain.Class {
	return &domain.Class{
		ID:         "c1",
		BusinessID: "b1",
		Name:       "Morning Yoga",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       "07:30",
		Duration:   60,
		Capacity:   10,
		SlotsLeft:  slotsLeft,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, d := newBookingService(t)
	booked := testClass(4)

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(5), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == "u1" && b.ClassID == "c1" && b.Status == domain.BookingStatusActive && b.ID != ""
	})).Return(booked, nil)
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationBookingConfirmation && n.UserID == "u1" && n.BusinessID == "b1"
	})).Return(nil)
	d.mirror.EXPECT().EnsureClassEvent(mock.Anything, "u1", booked).Return(nil)

	res, err := svc.Create(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.Equal(t, 4, res.Class.SlotsLeft)
	assert.Equal(t, domain.BookingStatusActive, res.Booking.Status)
	assert.Equal(t, "u1", res.Booking.UserID)
	assert.Equal(t, svc.now(), res.Booking.CreatedAt)
}

func TestBookingService_Create_ClassNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.classRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClassNotFound)

	_, err := svc.Create(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Create_AlreadyBooked(t *testing.T) {
	svc, d := newBookingService(t)

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(5), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").
		Return(&domain.Booking{ID: "bk1", Status: domain.BookingStatusActive}, nil)

	_, err := svc.Create(context.Background(), "u1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Create_ClassFull(t *testing.T) {
	svc, d := newBookingService(t)

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(0), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrClassFull)

	_, err := svc.Create(context.Background(), "u1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassFull)
	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestBookingService_Create_LookupError(t *testing.T) {
	svc, d := newBookingService(t)
	dbErr := errors.New("connection reset")

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(5), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").Return(nil, dbErr)

	_, err := svc.Create(context.Background(), "u1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestBookingService_Create_SideEffectFailuresAbsorbed(t *testing.T) {
	svc, d := newBookingService(t)
	booked := testClass(4)

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(5), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(booked, nil)
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	d.mirror.EXPECT().EnsureClassEvent(mock.Anything, "u1", booked).
		Return(errors.New("calendar timeout"))
	d.alerter.EXPECT().Alert(mock.Anything, "Calendar mirroring failed", mock.Anything).Return()

	res, err := svc.Create(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.Equal(t, 4, res.Class.SlotsLeft)
}

func TestBookingService_Create_NoCalendarConnected(t *testing.T) {
	svc, d := newBookingService(t)
	booked := testClass(4)

	d.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testClass(5), nil)
	d.bookingRepo.EXPECT().GetActive(mock.Anything, "u1", "c1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(booked, nil)
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.mirror.EXPECT().EnsureClassEvent(mock.Anything, "u1", booked).Return(domain.ErrCalendarNotConnected)

	_, err := svc.Create(context.Background(), "u1", "c1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, d := newBookingService(t)
	at := svc.now()
	reason := domain.DefaultCancellationReason

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "u1", ClassID: "c1", Status: domain.BookingStatusActive}, nil)
	d.bookingRepo.EXPECT().Cancel(mock.Anything, domain.CancelBookingInput{
		BookingID: "bk1", UserID: "u1", Reason: reason, At: at,
	}).Return(&domain.Cancellation{
		Booking: &domain.Booking{
			ID: "bk1", UserID: "u1", ClassID: "c1",
			Status: domain.BookingStatusCancelled, CancelledAt: &at, CancellationReason: &reason,
		},
		Class: testClass(6),
	}, nil)
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationClassCancelled && n.ClassID == "c1"
	})).Return(nil)

	res, err := svc.Cancel(context.Background(), "bk1", "u1", "")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
	assert.Equal(t, reason, *res.Booking.CancellationReason)
	assert.Equal(t, 6, res.Class.SlotsLeft)
}

func TestBookingService_Cancel_CustomReason(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "u1", ClassID: "c1", Status: domain.BookingStatusActive}, nil)
	d.bookingRepo.EXPECT().Cancel(mock.Anything, mock.MatchedBy(func(in domain.CancelBookingInput) bool {
		return in.Reason == "sick"
	})).Return(&domain.Cancellation{
		Booking: &domain.Booking{ID: "bk1", UserID: "u1", Status: domain.BookingStatusCancelled},
		Class:   testClass(6),
	}, nil)
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Cancel(context.Background(), "bk1", "u1", "sick")

	require.NoError(t, err)
}

func TestBookingService_Cancel_OtherUsersBooking(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "someone-else", Status: domain.BookingStatusActive}, nil)

	_, err := svc.Cancel(context.Background(), "bk1", "u1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "u1", Status: domain.BookingStatusCancelled}, nil)

	_, err := svc.Cancel(context.Background(), "bk1", "u1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_LostRaceToOtherCancel(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "u1", Status: domain.BookingStatusActive}, nil)
	d.bookingRepo.EXPECT().Cancel(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyCancelled)

	_, err := svc.Cancel(context.Background(), "bk1", "u1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_ClampReported(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "bk1").
		Return(&domain.Booking{ID: "bk1", UserID: "u1", Status: domain.BookingStatusActive}, nil)
	d.bookingRepo.EXPECT().Cancel(mock.Anything, mock.Anything).Return(&domain.Cancellation{
		Booking:     &domain.Booking{ID: "bk1", UserID: "u1", Status: domain.BookingStatusCancelled},
		Class:       testClass(10),
		SlotClamped: true,
	}, nil)
	d.alerter.EXPECT().Alert(mock.Anything, "Slot ledger clamp", mock.Anything).Return()
	d.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Cancel(context.Background(), "bk1", "u1", "")

	require.NoError(t, err)
	assert.Equal(t, 10, res.Class.SlotsLeft)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, d := newBookingService(t)
	list := []*domain.Booking{{ID: "bk1"}, {ID: "bk2"}}

	d.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(list, nil)

	res, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, res, 2)
}
