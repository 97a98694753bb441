package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/notification"
	"github.com/piresc/tumpangan/services/payment"
	"github.com/piresc/tumpangan/services/revenue"
	"github.com/piresc/tumpangan/services/rides"
	"github.com/piresc/tumpangan/services/wallet"
)

// rideStore implements rides.RideStore. One mutex guards the collection; the
// lock is held across "check capacity → charge → append" so reservations are
// atomic per ride. Lock order everywhere is rides → wallets: the ledger never
// calls back into the store.
type rideStore struct {
	cfg      *models.Config
	clock    clockwork.Clock
	wallets  wallet.Ledger
	payments payment.Processor
	bus      notification.Bus
	revenue  revenue.Aggregator
	pricing  rides.PricingEstimator
	routes   rides.RouteResolver
	gw       rides.RideGW // optional, nil disables mirroring

	mu        sync.Mutex
	rides     []*models.Ride // newest first
	listeners map[int]func([]models.Ride)
	nextSub   int
}

// NewRideStore creates a new ride store
func NewRideStore(
	cfg *models.Config,
	clock clockwork.Clock,
	wallets wallet.Ledger,
	payments payment.Processor,
	bus notification.Bus,
	rev revenue.Aggregator,
	pricing rides.PricingEstimator,
	routes rides.RouteResolver,
	gw rides.RideGW,
) rides.RideStore {
	return &rideStore{
		cfg:       cfg,
		clock:     clock,
		wallets:   wallets,
		payments:  payments,
		bus:       bus,
		revenue:   rev,
		pricing:   pricing,
		routes:    routes,
		gw:        gw,
		listeners: make(map[int]func([]models.Ride)),
	}
}

// effects collects side effects gathered under the collection lock and
// performed after it is released (snapshot-then-publish)
type effects struct {
	notes     []models.Notification
	schedules []scheduleReq
	cancels   []string
	mirrors   []models.Ride
	events    []eventReq
	deletes   []string
	broadcast bool
	snapshot  []models.Ride
	fns       []func([]models.Ride)
}

type scheduleReq struct {
	n   models.Notification
	at  int64
	key string
}

type eventReq struct {
	subject string
	ride    models.Ride
}

// captureLocked records the snapshot plus the listener set for a broadcast
func (s *rideStore) captureLocked(e *effects) {
	e.broadcast = true
	e.snapshot = s.snapshotLocked()
	for _, fn := range s.listeners {
		e.fns = append(e.fns, fn)
	}
}

// flush performs the collected effects. Must be called without the lock.
func (s *rideStore) flush(e *effects) {
	for _, key := range e.cancels {
		s.bus.Cancel(key)
	}
	for _, sc := range e.schedules {
		s.bus.Schedule(sc.n, sc.at, sc.key)
	}
	for _, n := range e.notes {
		s.bus.Push(n)
	}
	if s.gw != nil {
		mirrors := e.mirrors
		events := e.events
		deletes := e.deletes
		go func() {
			ctx := context.Background()
			for _, r := range mirrors {
				if err := s.gw.MirrorRide(ctx, r); err != nil {
					logger.Warn("Ride mirror write failed",
						logger.String("ride_id", r.ID), logger.Err(err))
				}
			}
			for _, ev := range events {
				if err := s.gw.PublishRideEvent(ctx, ev.subject, ev.ride); err != nil {
					logger.Warn("Ride event publish failed",
						logger.String("subject", ev.subject), logger.Err(err))
				}
			}
			for _, id := range deletes {
				if err := s.gw.DeleteRideMirror(ctx, id); err != nil {
					logger.Warn("Ride mirror delete failed",
						logger.String("ride_id", id), logger.Err(err))
				}
			}
		}()
	}
	if e.broadcast {
		for _, fn := range e.fns {
			fn(e.snapshot)
		}
	}
}

func (s *rideStore) snapshotLocked() []models.Ride {
	out := make([]models.Ride, 0, len(s.rides))
	for _, r := range s.rides {
		out = append(out, r.Clone())
	}
	return out
}

func (s *rideStore) findLocked(id string) *models.Ride {
	for _, r := range s.rides {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *rideStore) removeLocked(id string) {
	for i, r := range s.rides {
		if r.ID == id {
			s.rides = append(s.rides[:i], s.rides[i+1:]...)
			return
		}
	}
}

// Reminder cancel keys, stable per ride and per passenger
func driverReminderKey(rideID string) string {
	return fmt.Sprintf("ride:%s:driver", rideID)
}

func passengerReminderKey(rideID, passengerID string) string {
	return fmt.Sprintf("ride:%s:passenger:%s", rideID, passengerID)
}

// reminderLocked builds the departure reminder schedule request for one party
func (s *rideStore) reminderLocked(r *models.Ride, recipient, key string) scheduleReq {
	lead := int64(s.cfg.Marketplace.ReminderLeadMinutes) * 60_000
	return scheduleReq{
		n: models.Notification{
			Recipient: recipient,
			Title:     "Departure soon",
			Body:      fmt.Sprintf("Your ride %s → %s departs at %s", r.Origin, r.Destination, r.Time),
			Data: map[string]interface{}{
				"action":  models.NotifyActionDepartureSoon,
				"ride_id": r.ID,
			},
		},
		at:  r.DepartureAt - lead,
		key: key,
	}
}

// cancelAllRemindersLocked collects the cancel keys of every reminder tied to
// the ride
func cancelAllRemindersLocked(e *effects, r *models.Ride) {
	e.cancels = append(e.cancels, driverReminderKey(r.ID))
	for _, p := range r.Passengers {
		e.cancels = append(e.cancels, passengerReminderKey(r.ID, p))
	}
}

func (s *rideStore) GetRides(ctx context.Context) []models.Ride {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	settled := s.settleLocked(nowMs, &e)
	snapshot := s.snapshotLocked()
	if settled {
		s.captureLocked(&e)
	}
	s.mu.Unlock()

	s.flush(&e)
	return snapshot
}

func (s *rideStore) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	settled := s.settleLocked(nowMs, &e)
	r := s.findLocked(id)
	var out *models.Ride
	if r != nil {
		c := r.Clone()
		out = &c
	}
	if settled {
		s.captureLocked(&e)
	}
	s.mu.Unlock()

	s.flush(&e)
	if out == nil {
		return nil, fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
	}
	return out, nil
}

func (s *rideStore) Subscribe(fn func([]models.Ride)) func() {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	settled := s.settleLocked(nowMs, &e)
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	replay := s.snapshotLocked()
	if settled {
		s.captureLocked(&e)
	}
	s.mu.Unlock()

	s.flush(&e)
	fn(replay)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *rideStore) PurgeUserRides(ctx context.Context, userID string) {
	nowMs := s.clock.Now().UnixMilli()

	var e effects
	s.mu.Lock()
	s.settleLocked(nowMs, &e)

	changed := false
	kept := s.rides[:0]
	for _, r := range s.rides {
		if r.OwnerID == userID {
			cancelAllRemindersLocked(&e, r)
			e.deletes = append(e.deletes, r.ID)
			changed = true
			continue
		}
		if r.HasPassenger(userID) {
			r.Passengers = removeString(r.Passengers, userID)
			r.UpdatedAt = nowMs
			e.cancels = append(e.cancels, passengerReminderKey(r.ID, userID))
			e.mirrors = append(e.mirrors, r.Clone())
			changed = true
		}
		if containsString(r.CanceledPassengers, userID) {
			r.CanceledPassengers = removeString(r.CanceledPassengers, userID)
			r.UpdatedAt = nowMs
			changed = true
		}
		kept = append(kept, r)
	}
	s.rides = kept

	if changed {
		s.captureLocked(&e)
	}
	s.mu.Unlock()

	s.flush(&e)
	if changed {
		logger.Info("Purged user rides", logger.String("user_id", userID))
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// eventFor queues a NATS event for the mutated ride
func eventFor(e *effects, subject string, r *models.Ride) {
	e.events = append(e.events, eventReq{subject: subject, ride: r.Clone()})
}
