package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDestinationConflict = errors.New("destination with these coordinates already exists")
	ErrRouteNotFound       = errors.New("no route found between origin and destination")
	ErrPlaceNotResolved    = errors.New("shared link could not be resolved to a place")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrInvalidPage         = errors.New("invalid pagination parameters")
	ErrInvalidDailyLimit   = errors.New("daily limit must be positive")
	ErrUpstreamFailure     = errors.New("upstream provider error")
	ErrUpstreamTimeout     = errors.New("upstream provider timed out")
	ErrDatabaseError       = errors.New("database error")
)
