package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the marketplace engine. Expected business failures of
// seat reservation are not errors; they travel as models.ReservationResult.
var (
	// ErrValidation marks malformed input: plate, time, seats, empty names.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown ride or wallet id.
	ErrNotFound = errors.New("not found")

	// ErrRideDeparted marks a mutation attempted after departure.
	ErrRideDeparted = errors.New("ride already departed")

	// ErrCapacity marks a seat change below the confirmed passenger count.
	ErrCapacity = errors.New("seat capacity below passenger count")

	// ErrInsufficientFunds is internal to the payment processor; the ride
	// store translates it into a reservation failure reason.
	ErrInsufficientFunds = errors.New("insufficient wallet funds")

	// ErrNoCreditAvailable is internal to the payment processor; the ride
	// store translates it into a reservation failure reason.
	ErrNoCreditAvailable = errors.New("no ride credit available")
)

// HTTPStatus maps an engine error to the status code the HTTP surface returns
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRideDeparted), errors.Is(err, ErrCapacity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
