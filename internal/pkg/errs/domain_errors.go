package errs

import "errors"

// Sentinel errors shared by the usecase, tool and handler layers.
// Callers attach context with Wrap/Mark and test with Is.
var (
	// Startup
	ErrConfiguration = errors.New("configuration error")

	// Webhook
	ErrAuthentication = errors.New("invalid webhook token")

	// Booking
	ErrNoAvailability   = errors.New("no rooms of the requested type are available")
	ErrUnknownUser      = errors.New("user is not registered")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidRoomType  = errors.New("invalid room type")

	// Storage and upstream services
	ErrPersistence         = errors.New("persistence failure")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
