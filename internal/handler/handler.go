package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/handler/dto"
	"github.com/AbbasJay/be-well-web-sub000/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, userID, classID string) (*domain.BookingResult, error)
	Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.BookingResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type ClassSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	Update(ctx context.Context, id, userID string, input domain.UpdateClassInput) (*domain.Class, error)
	Delete(ctx context.Context, id, userID string) error
}

type CalendarAuthSvc interface {
	Connect(ctx context.Context, userID string) (*domain.CalendarAuth, error)
	Callback(ctx context.Context, code, state string) error
	Disconnect(ctx context.Context, userID string) error
}

type Handler struct {
	bookingService      BookingSvc
	classService        ClassSvc
	calendarAuthService CalendarAuthSvc
	// where the OAuth callback sends the browser; JSON reply when empty
	successRedirectURL string
}

func NewHandler(
	bookingService BookingSvc,
	classService ClassSvc,
	calendarAuthService CalendarAuthSvc,
	successRedirectURL string,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		classService:        classService,
		calendarAuthService: calendarAuthService,
		successRedirectURL:  successRedirectURL,
	}
}

// Bookings

func (h *Handler) BookClass(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), currentUser(c), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResultResponse(res))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	// body is optional
	var req dto.CancelBookingRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	res, err := h.bookingService.Cancel(c.Request.Context(), bookingID, currentUser(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResultResponse(res))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Classes

func (h *Handler) GetClass(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) UpdateClass(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.UpdateClassInput{
		Name:        req.Name,
		Description: req.Description,
		Instructor:  req.Instructor,
		Location:    req.Location,
		Price:       req.Price,
		StartDate:   startDate,
		Time:        req.Time,
		Duration:    req.Duration,
	}

	class, err := h.classService.Update(c.Request.Context(), id, currentUser(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) DeleteClass(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	if err := h.classService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Calendar

func (h *Handler) CalendarAuth(c *ginext.Context) {
	res, err := h.calendarAuthService.Connect(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarAuthResponse{AccessToken: res.AccessToken, URL: res.URL})
}

func (h *Handler) DisconnectCalendar(c *ginext.Context) {
	if err := h.calendarAuthService.Disconnect(c.Request.Context(), currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "disconnected"})
}

func (h *Handler) CalendarCallback(c *ginext.Context) {
	if reason := c.Query("error"); reason != "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "authorization denied: " + reason})
		return
	}

	err := h.calendarAuthService.Callback(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.successRedirectURL != "" {
		c.Redirect(http.StatusFound, h.successRedirectURL)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "connected"})
}

func currentUser(c *ginext.Context) string {
	return c.GetString(middleware.UserIDKey)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacity),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
