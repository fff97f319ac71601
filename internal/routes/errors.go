package routes

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for route table construction and lookups.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrRouteNotFound indicates no route exists between the requested cities.
	// This is an expected, recoverable result: callers should fall back to
	// manual distance entry rather than treat it as a failure.
	ErrRouteNotFound = constError("route not found")

	// ErrInvalidRoute indicates a route record with a missing city name or a
	// non-positive distance. Routes are validated once, at table construction.
	ErrInvalidRoute = constError("invalid route")
)
