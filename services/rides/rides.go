package rides

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// RideStore defines the interface for the ride collection and its lifecycle.
// Every read path settles departed rides first, so observers never see a
// stale unsettled ride; every mutating call ends by re-broadcasting the full
// snapshot to subscribers.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/piresc/tumpangan/services/rides RideStore
type RideStore interface {
	// Publish validates the payload, prices the ride and inserts it at the
	// front of the collection
	Publish(ctx context.Context, req models.PublishRideRequest) (*models.Ride, error)

	// Edit re-validates only the supplied fields; rejected after departure
	Edit(ctx context.Context, id string, patch models.RidePatch) (*models.Ride, error)

	// Remove deletes a ride before departure and notifies its passengers
	Remove(ctx context.Context, id string) error

	// ReserveSeat atomically checks capacity, charges the payer and appends
	// the passenger. Business failures come back in the tagged result; the
	// error is reserved for an unknown ride id.
	ReserveSeat(ctx context.Context, id, passengerID string, method models.PaymentMethod) (models.ReservationResult, error)

	// ConfirmReservation allocates a seat without charging (pre-accepted or
	// offline-settled requests); nil on any no-op
	ConfirmReservation(ctx context.Context, id, passengerID string) *models.Ride

	// CancelReservation frees the passenger's seat; nil no-op when the
	// passenger holds none
	CancelReservation(ctx context.Context, id, passengerID string) *models.Ride

	// GetRides returns a settled snapshot of the collection
	GetRides(ctx context.Context) []models.Ride

	// GetRide returns one settled ride
	GetRide(ctx context.Context, id string) (*models.Ride, error)

	// Subscribe registers a snapshot listener and replays the current
	// collection; the returned func unsubscribes
	Subscribe(fn func([]models.Ride)) func()

	// PurgeUserRides removes the identity's own rides and strips it from
	// every other ride
	PurgeUserRides(ctx context.Context, userID string)
}

// PricingEstimator computes a per-seat price; injected collaborator
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/piresc/tumpangan/services/rides PricingEstimator,RouteResolver,RideGW
type PricingEstimator interface {
	ComputePrice(distanceKm float64, seats int, mode models.PricingMode) decimal.Decimal
}

// RouteResolver estimates route distance and resolves origins to interest
// areas; injected collaborator standing in for geocoding
type RouteResolver interface {
	Distance(origin, destination string) float64
	Area(origin string) (string, bool)
}

// RideGW mirrors ride state into external systems, best-effort and
// fire-and-forget from the store's perspective
type RideGW interface {
	MirrorRide(ctx context.Context, ride models.Ride) error
	DeleteRideMirror(ctx context.Context, rideID string) error
	PublishRideEvent(ctx context.Context, subject string, ride models.Ride) error
}
