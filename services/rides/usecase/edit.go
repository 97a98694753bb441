package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/r3labs/diff/v3"
)

// rideDelta is the diffable projection of a ride's passenger-visible fields;
// money is compared as a fixed string so the diff stays field-shallow
type rideDelta struct {
	DriverName  string
	Plate       string
	Origin      string
	Destination string
	Time        string
	Seats       int
	Price       string
	PricingMode string
	DepartureAt int64
}

func deltaOf(r models.Ride) rideDelta {
	return rideDelta{
		DriverName:  r.DriverName,
		Plate:       r.Plate,
		Origin:      r.Origin,
		Destination: r.Destination,
		Time:        r.Time,
		Seats:       r.Seats,
		Price:       r.Price.StringFixed(2),
		PricingMode: string(r.PricingMode),
		DepartureAt: r.DepartureAt,
	}
}

// describeChanges folds a field-level changelog into the reader-facing
// categories passengers care about
func describeChanges(changelog diff.Changelog) string {
	seen := map[string]bool{}
	var parts []string
	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			parts = append(parts, label)
		}
	}
	for _, c := range changelog {
		if len(c.Path) == 0 {
			continue
		}
		switch c.Path[0] {
		case "Time", "DepartureAt":
			add("time")
		case "Origin", "Destination":
			add("route")
		case "Seats":
			add("capacity")
		case "Price", "PricingMode":
			add("price")
		case "DriverName", "Plate":
			add("driver details")
		}
	}
	return strings.Join(parts, ", ")
}

func (s *rideStore) Edit(ctx context.Context, id string, patch models.RidePatch) (*models.Ride, error) {
	now := s.clock.Now()
	nowMs := now.UnixMilli()

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	r := s.findLocked(id)
	if r == nil {
		s.mu.Unlock()
		s.flush(&e)
		return nil, fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
	}
	if r.Departed(nowMs) {
		s.mu.Unlock()
		s.flush(&e)
		return nil, fmt.Errorf("ride %s: %w", id, apperrors.ErrRideDeparted)
	}

	before := r.Clone()

	// Validate the supplied fields onto a working copy before committing
	// anything, so a rejected patch leaves the ride untouched
	work := r.Clone()
	priceRelevant := false
	timeChanged := false

	if patch.DriverName != nil {
		name := utils.TitleCase(*patch.DriverName)
		if name == "" {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("driver name is required: %w", apperrors.ErrValidation)
		}
		work.DriverName = name
	}
	if patch.Plate != nil {
		plate, ok := utils.NormalizePlate(*patch.Plate)
		if !ok {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("plate %q does not match the regional format: %w", *patch.Plate, apperrors.ErrValidation)
		}
		work.Plate = plate
	}
	if patch.Origin != nil {
		origin := utils.TitleCase(*patch.Origin)
		if origin == "" {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("origin is required: %w", apperrors.ErrValidation)
		}
		work.Origin = origin
		priceRelevant = true
	}
	if patch.Destination != nil {
		destination := utils.TitleCase(*patch.Destination)
		if destination == "" {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("destination is required: %w", apperrors.ErrValidation)
		}
		work.Destination = destination
		priceRelevant = true
	}
	if patch.Time != nil {
		if !utils.ValidTimeOfDay(*patch.Time) {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("time %q is not a 24h HH:MM time: %w", *patch.Time, apperrors.ErrValidation)
		}
		if *patch.Time != work.Time {
			work.Time = *patch.Time
			timeChanged = true
		}
	}
	if patch.Seats != nil {
		seats := *patch.Seats
		if seats < 1 || seats > s.cfg.Marketplace.MaxSeats {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("seats must be between 1 and %d: %w", s.cfg.Marketplace.MaxSeats, apperrors.ErrValidation)
		}
		if seats < len(work.Passengers) {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("cannot reduce seats below %d confirmed passengers: %w", len(work.Passengers), apperrors.ErrCapacity)
		}
		if seats != work.Seats {
			work.Seats = seats
			priceRelevant = true
		}
	}
	if patch.PricingMode != nil {
		mode := *patch.PricingMode
		if mode != models.PricingModeSingle && mode != models.PricingModeDouble {
			s.mu.Unlock()
			s.flush(&e)
			return nil, fmt.Errorf("unknown pricing mode %q: %w", mode, apperrors.ErrValidation)
		}
		if mode != work.PricingMode {
			work.PricingMode = mode
			priceRelevant = true
		}
	}

	if timeChanged {
		work.DepartureAt = nextDepartureMs(now, work.Time)
	}
	if priceRelevant {
		distance := s.routes.Distance(work.Origin, work.Destination)
		work.Price = s.pricing.ComputePrice(distance, work.Seats, work.PricingMode)
	}
	work.UpdatedAt = nowMs

	// Commit the working copy (its slices are already defensive copies)
	*r = work

	if timeChanged {
		e.schedules = append(e.schedules, s.reminderLocked(r, r.OwnerID, driverReminderKey(r.ID)))
		for _, p := range r.Passengers {
			e.schedules = append(e.schedules, s.reminderLocked(r, p, passengerReminderKey(r.ID, p)))
		}
	}

	changelog, err := diff.Diff(deltaOf(before), deltaOf(work))
	if err != nil {
		logger.Warn("Failed to diff ride versions", logger.String("ride_id", id), logger.Err(err))
	}
	if summary := describeChanges(changelog); summary != "" {
		for _, p := range r.Passengers {
			e.notes = append(e.notes, models.Notification{
				Recipient: p,
				Title:     "Ride updated",
				Body:      fmt.Sprintf("Your ride %s → %s changed: %s", r.Origin, r.Destination, summary),
				Data: map[string]interface{}{
					"action":  models.NotifyActionRideUpdated,
					"ride_id": r.ID,
					"changed": summary,
				},
			})
		}
	}

	e.mirrors = append(e.mirrors, r.Clone())
	eventFor(&e, constants.SubjectRideUpdated, r)
	s.captureLocked(&e)
	out := r.Clone()
	s.mu.Unlock()

	s.flush(&e)
	return &out, nil
}

func (s *rideStore) Remove(ctx context.Context, id string) error {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	r := s.findLocked(id)
	if r == nil {
		s.mu.Unlock()
		s.flush(&e)
		return fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
	}
	if r.Departed(nowMs) {
		s.mu.Unlock()
		s.flush(&e)
		return fmt.Errorf("ride %s: %w", id, apperrors.ErrRideDeparted)
	}

	for _, p := range r.Passengers {
		e.notes = append(e.notes, models.Notification{
			Recipient: p,
			Title:     "Ride canceled",
			Body:      fmt.Sprintf("The ride %s → %s at %s was canceled by the driver", r.Origin, r.Destination, r.Time),
			Data: map[string]interface{}{
				"action":  models.NotifyActionRideCanceled,
				"ride_id": r.ID,
			},
		})
	}
	cancelAllRemindersLocked(&e, r)
	e.deletes = append(e.deletes, r.ID)
	eventFor(&e, constants.SubjectRideRemoved, r)

	s.removeLocked(id)
	s.captureLocked(&e)
	s.mu.Unlock()

	s.flush(&e)
	logger.Info("Ride removed", logger.String("ride_id", id))
	return nil
}
