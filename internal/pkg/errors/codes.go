package errors

import "net/http"

var (
	ErrDataLoading = New(
		"DATA_LOADING",
		"Wineries are still loading",
		http.StatusServiceUnavailable,
	)

	ErrFetchFailed = New(
		"FETCH_FAILED",
		"Failed to fetch wineries",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidLocation = New(
		"INVALID_LOCATION",
		"Invalid page location",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
