package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
)

// nextDepartureMs computes the next future occurrence of the HH:MM time of
// day, rolling to the next day when the instant has already passed
func nextDepartureMs(now time.Time, hhmm string) int64 {
	var hour, minute int
	fmt.Sscanf(hhmm, "%d:%d", &hour, &minute)
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.Add(24 * time.Hour)
	}
	return candidate.UnixMilli()
}

func (s *rideStore) Publish(ctx context.Context, req models.PublishRideRequest) (*models.Ride, error) {
	now := s.clock.Now()
	nowMs := now.UnixMilli()

	driverName := utils.TitleCase(req.DriverName)
	if driverName == "" {
		return nil, fmt.Errorf("driver name is required: %w", apperrors.ErrValidation)
	}
	plate, ok := utils.NormalizePlate(req.Plate)
	if !ok {
		return nil, fmt.Errorf("plate %q does not match the regional format: %w", req.Plate, apperrors.ErrValidation)
	}
	origin := utils.TitleCase(req.Origin)
	destination := utils.TitleCase(req.Destination)
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("origin and destination are required: %w", apperrors.ErrValidation)
	}
	if !utils.ValidTimeOfDay(req.Time) {
		return nil, fmt.Errorf("time %q is not a 24h HH:MM time: %w", req.Time, apperrors.ErrValidation)
	}
	if req.Seats < 1 || req.Seats > s.cfg.Marketplace.MaxSeats {
		return nil, fmt.Errorf("seats must be between 1 and %d: %w", s.cfg.Marketplace.MaxSeats, apperrors.ErrValidation)
	}
	mode := req.PricingMode
	if mode == "" {
		mode = models.PricingModeSingle
	}
	if mode != models.PricingModeSingle && mode != models.PricingModeDouble {
		return nil, fmt.Errorf("unknown pricing mode %q: %w", req.PricingMode, apperrors.ErrValidation)
	}
	if req.OwnerID == "" {
		return nil, fmt.Errorf("owner identity is required: %w", apperrors.ErrValidation)
	}

	distance := s.routes.Distance(origin, destination)
	price := s.pricing.ComputePrice(distance, req.Seats, mode)
	if price.IsNegative() {
		return nil, fmt.Errorf("computed price is negative: %w", apperrors.ErrValidation)
	}

	ride := &models.Ride{
		ID:          uuid.New().String(),
		DriverName:  driverName,
		Plate:       plate,
		Origin:      origin,
		Destination: destination,
		Time:        req.Time,
		Seats:       req.Seats,
		Price:       price,
		PricingMode: mode,
		OwnerID:     req.OwnerID,
		CreatedAt:   nowMs,
		UpdatedAt:   nowMs,
		DepartureAt: nextDepartureMs(now, req.Time),
	}

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)
	s.rides = append([]*models.Ride{ride}, s.rides...)

	e.schedules = append(e.schedules, s.reminderLocked(ride, ride.OwnerID, driverReminderKey(ride.ID)))
	e.mirrors = append(e.mirrors, ride.Clone())
	eventFor(&e, constants.SubjectRidePublished, ride)

	// Area fan-out: everyone interested in the origin's area except the owner
	if area, ok := s.routes.Area(origin); ok {
		for _, sub := range s.bus.GetAreaSubscribers(area) {
			if sub == ride.OwnerID {
				continue
			}
			e.notes = append(e.notes, models.Notification{
				Recipient: sub,
				Title:     "New ride in " + area,
				Body:      fmt.Sprintf("%s → %s at %s, %s per seat", origin, destination, ride.Time, price.StringFixed(2)),
				Data: map[string]interface{}{
					"action":  models.NotifyActionNewRide,
					"ride_id": ride.ID,
					"area":    area,
				},
			})
		}
	}

	s.captureLocked(&e)
	out := ride.Clone()
	s.mu.Unlock()

	s.flush(&e)
	logger.Info("Ride published",
		logger.String("ride_id", ride.ID),
		logger.String("owner_id", ride.OwnerID),
		logger.String("route", origin+" → "+destination),
		logger.Int("seats", ride.Seats),
		logger.String("price", price.String()))
	return &out, nil
}
