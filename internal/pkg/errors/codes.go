package errors

import "net/http"

var (
	ErrInvalidRoute = New(
		"INVALID_ROUTE",
		"Route must contain at least one point",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidConfig = New(
		"INVALID_CONFIG",
		"Invalid simulation configuration",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Invalid filter",
		http.StatusBadRequest,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrDisposalPointNotFound = New(
		"DISPOSAL_POINT_NOT_FOUND",
		"Disposal point not found",
		http.StatusNotFound,
	)

	ErrTruckPositionNotFound = New(
		"TRUCK_POSITION_NOT_FOUND",
		"No position has been published for this truck yet",
		http.StatusNotFound,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Address could not be geocoded",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrUpstreamError = New(
		"UPSTREAM_ERROR",
		"Upstream provider failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
