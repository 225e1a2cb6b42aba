package domain

import (
	"errors"
	"fmt"
)

// Categories. Specific errors wrap one of these so callers can branch on
// either level with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrCapacity     = errors.New("capacity error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrIntegration  = errors.New("integration error")
)

var (
	ErrClassNotFound      = fmt.Errorf("%w: class not found", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("%w: booking not found", ErrNotFound)
	ErrCredentialNotFound = fmt.Errorf("%w: calendar credential not found", ErrNotFound)
)

var (
	ErrClassFull = fmt.Errorf("%w: class is full", ErrCapacity)
)

var (
	ErrAlreadyBooked          = fmt.Errorf("%w: user already has an active booking for this class", ErrConflict)
	ErrAlreadyCancelled       = fmt.Errorf("%w: booking is already cancelled", ErrConflict)
	ErrClassHasActiveBookings = fmt.Errorf("%w: class has active bookings", ErrConflict)
)

var (
	ErrInvalidOAuthState = fmt.Errorf("%w: invalid or expired oauth state", ErrUnauthorized)
)

var (
	ErrCalendarNotConnected = fmt.Errorf("%w: calendar not connected", ErrIntegration)
	ErrCalendarUnauthorized = fmt.Errorf("%w: calendar provider rejected the access token", ErrIntegration)
	ErrTokenRefresh         = fmt.Errorf("%w: token refresh failed", ErrIntegration)
	ErrCredentialUnreadable = fmt.Errorf("%w: stored calendar credential cannot be opened", ErrIntegration)
)
