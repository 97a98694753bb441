package models

import (
	"github.com/shopspring/decimal"
)

// PricingMode determines how the per-seat price is derived
type PricingMode string

const (
	PricingModeSingle PricingMode = "single"
	PricingModeDouble PricingMode = "double"
)

// Ride represents a published carpool offer
type Ride struct {
	ID                 string          `json:"id"`
	DriverName         string          `json:"driver_name"`
	Plate              string          `json:"plate"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	Time               string          `json:"time"` // 24h HH:MM
	Seats              int             `json:"seats"`
	Price              decimal.Decimal `json:"price"` // per seat
	PricingMode        PricingMode     `json:"pricing_mode"`
	OwnerID            string          `json:"owner_id"`
	Passengers         []string        `json:"passengers"`
	CanceledPassengers []string        `json:"canceled_passengers"`
	CreatedAt          int64           `json:"created_at"`   // epoch millis
	UpdatedAt          int64           `json:"updated_at"`   // epoch millis
	DepartureAt        int64           `json:"departure_at"` // epoch millis
	PayoutProcessed    bool            `json:"payout_processed"`
}

// Departed reports whether the ride's departure instant has passed
func (r *Ride) Departed(nowMs int64) bool {
	return r.DepartureAt <= nowMs
}

// HasPassenger reports whether the identity already holds a seat
func (r *Ride) HasPassenger(userID string) bool {
	for _, p := range r.Passengers {
		if p == userID {
			return true
		}
	}
	return false
}

// Full reports whether every seat is taken
func (r *Ride) Full() bool {
	return len(r.Passengers) >= r.Seats
}

// Clone returns a defensive copy with its own passenger slices
func (r *Ride) Clone() Ride {
	c := *r
	c.Passengers = append([]string(nil), r.Passengers...)
	c.CanceledPassengers = append([]string(nil), r.CanceledPassengers...)
	return c
}

// PublishRideRequest carries the fields needed to publish a new ride
type PublishRideRequest struct {
	DriverName  string      `json:"driver_name"`
	Plate       string      `json:"plate"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Time        string      `json:"time"`
	Seats       int         `json:"seats"`
	PricingMode PricingMode `json:"pricing_mode"`
	OwnerID     string      `json:"owner_id"`
}

// RidePatch carries the optional fields of an edit; nil means "leave unchanged"
type RidePatch struct {
	DriverName  *string      `json:"driver_name,omitempty"`
	Plate       *string      `json:"plate,omitempty"`
	Origin      *string      `json:"origin,omitempty"`
	Destination *string      `json:"destination,omitempty"`
	Time        *string      `json:"time,omitempty"`
	Seats       *int         `json:"seats,omitempty"`
	PricingMode *PricingMode `json:"pricing_mode,omitempty"`
}

// ReservationFailureReason tags the expected failure modes of a seat reservation
type ReservationFailureReason string

const (
	ReservationDeparted        ReservationFailureReason = "DEPARTED"
	ReservationAlreadyReserved ReservationFailureReason = "ALREADY_RESERVED"
	ReservationFull            ReservationFailureReason = "FULL"
	ReservationPaymentWallet   ReservationFailureReason = "PAYMENT_WALLET"
	ReservationPaymentPass     ReservationFailureReason = "PAYMENT_PASS"
	ReservationPaymentUnknown  ReservationFailureReason = "PAYMENT_UNKNOWN"
)

// ReservationResult is the tagged outcome of ReserveSeat. Expected business
// failures are returned here rather than as errors so callers can branch and
// offer a fallback payment method.
type ReservationResult struct {
	OK     bool                     `json:"ok"`
	Ride   *Ride                    `json:"ride,omitempty"`
	Reason ReservationFailureReason `json:"reason,omitempty"`
}
