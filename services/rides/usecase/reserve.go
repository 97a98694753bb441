package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// chargeFailureReason maps payment processor errors to reservation failure
// reasons before they cross the store boundary
func chargeFailureReason(err error) models.ReservationFailureReason {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return models.ReservationPaymentWallet
	case errors.Is(err, apperrors.ErrNoCreditAvailable):
		return models.ReservationPaymentPass
	default:
		return models.ReservationPaymentUnknown
	}
}

func (s *rideStore) ReserveSeat(ctx context.Context, id, passengerID string, method models.PaymentMethod) (models.ReservationResult, error) {
	nowMs := s.clock.Now().UnixMilli()
	if method == "" {
		method = models.PaymentMethodCard
	}

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	r := s.findLocked(id)
	if r == nil {
		s.mu.Unlock()
		s.flush(&e)
		return models.ReservationResult{}, fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
	}

	fail := func(reason models.ReservationFailureReason) (models.ReservationResult, error) {
		s.mu.Unlock()
		s.flush(&e)
		return models.ReservationResult{OK: false, Reason: reason}, nil
	}

	if r.Departed(nowMs) {
		return fail(models.ReservationDeparted)
	}
	if r.HasPassenger(passengerID) {
		return fail(models.ReservationAlreadyReserved)
	}
	if r.Full() {
		return fail(models.ReservationFull)
	}

	// Charge while the collection lock is held: capacity check and passenger
	// append must be one atomic unit. Lock order is rides → wallets.
	if _, err := s.payments.ProcessPayment(ctx, r.Clone(), passengerID, method); err != nil {
		reason := chargeFailureReason(err)
		logger.Warn("Seat charge failed",
			logger.String("ride_id", id),
			logger.String("passenger_id", passengerID),
			logger.String("method", string(method)),
			logger.Err(err))
		return fail(reason)
	}

	r.Passengers = append(r.Passengers, passengerID)
	r.UpdatedAt = nowMs

	e.schedules = append(e.schedules, s.reminderLocked(r, passengerID, passengerReminderKey(r.ID, passengerID)))
	e.notes = append(e.notes,
		models.Notification{
			Recipient: passengerID,
			Title:     "Seat confirmed",
			Body:      fmt.Sprintf("Your seat on %s → %s at %s is confirmed", r.Origin, r.Destination, r.Time),
			Data: map[string]interface{}{
				"action":  models.NotifyActionSeatReserved,
				"ride_id": r.ID,
			},
		},
		models.Notification{
			Recipient: r.OwnerID,
			Title:     "Seat reserved",
			Body:      fmt.Sprintf("A passenger reserved a seat on %s → %s (%d/%d taken)", r.Origin, r.Destination, len(r.Passengers), r.Seats),
			Data: map[string]interface{}{
				"action":       models.NotifyActionSeatReserved,
				"ride_id":      r.ID,
				"passenger_id": passengerID,
			},
		})
	e.mirrors = append(e.mirrors, r.Clone())
	eventFor(&e, constants.SubjectRideReserved, r)

	s.captureLocked(&e)
	out := r.Clone()
	s.mu.Unlock()

	s.flush(&e)
	logger.Info("Seat reserved",
		logger.String("ride_id", id),
		logger.String("passenger_id", passengerID),
		logger.String("method", string(method)))
	return models.ReservationResult{OK: true, Ride: &out}, nil
}

func (s *rideStore) ConfirmReservation(ctx context.Context, id, passengerID string) *models.Ride {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	r := s.findLocked(id)
	if r == nil || r.Departed(nowMs) || r.HasPassenger(passengerID) || r.Full() {
		s.mu.Unlock()
		s.flush(&e)
		return nil
	}

	r.Passengers = append(r.Passengers, passengerID)
	r.UpdatedAt = nowMs

	e.schedules = append(e.schedules, s.reminderLocked(r, passengerID, passengerReminderKey(r.ID, passengerID)))
	e.notes = append(e.notes,
		models.Notification{
			Recipient: passengerID,
			Title:     "Seat confirmed",
			Body:      fmt.Sprintf("Your seat on %s → %s at %s is confirmed", r.Origin, r.Destination, r.Time),
			Data: map[string]interface{}{
				"action":  models.NotifyActionSeatReserved,
				"ride_id": r.ID,
			},
		},
		models.Notification{
			Recipient: r.OwnerID,
			Title:     "Seat reserved",
			Body:      fmt.Sprintf("A passenger reserved a seat on %s → %s (%d/%d taken)", r.Origin, r.Destination, len(r.Passengers), r.Seats),
			Data: map[string]interface{}{
				"action":       models.NotifyActionSeatReserved,
				"ride_id":      r.ID,
				"passenger_id": passengerID,
			},
		})
	e.mirrors = append(e.mirrors, r.Clone())
	eventFor(&e, constants.SubjectRideReserved, r)

	s.captureLocked(&e)
	out := r.Clone()
	s.mu.Unlock()

	s.flush(&e)
	return &out
}

func (s *rideStore) CancelReservation(ctx context.Context, id, passengerID string) *models.Ride {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	r := s.findLocked(id)
	if r == nil || r.Departed(nowMs) || !r.HasPassenger(passengerID) {
		s.mu.Unlock()
		s.flush(&e)
		return nil
	}

	r.Passengers = removeString(r.Passengers, passengerID)
	if !containsString(r.CanceledPassengers, passengerID) {
		r.CanceledPassengers = append(r.CanceledPassengers, passengerID)
	}
	r.UpdatedAt = nowMs

	e.cancels = append(e.cancels, passengerReminderKey(r.ID, passengerID))
	e.notes = append(e.notes,
		models.Notification{
			Recipient: passengerID,
			Title:     "Reservation canceled",
			Body:      fmt.Sprintf("You gave up your seat on %s → %s", r.Origin, r.Destination),
			Data: map[string]interface{}{
				"action":  models.NotifyActionSeatCanceled,
				"ride_id": r.ID,
			},
		},
		models.Notification{
			Recipient: r.OwnerID,
			Title:     "Seat freed",
			Body:      fmt.Sprintf("A passenger canceled on %s → %s (%d/%d taken)", r.Origin, r.Destination, len(r.Passengers), r.Seats),
			Data: map[string]interface{}{
				"action":       models.NotifyActionSeatCanceled,
				"ride_id":      r.ID,
				"passenger_id": passengerID,
			},
		})
	e.mirrors = append(e.mirrors, r.Clone())

	s.captureLocked(&e)
	out := r.Clone()
	s.mu.Unlock()

	s.flush(&e)
	return &out
}
