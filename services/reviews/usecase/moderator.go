package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/notification"
	"github.com/piresc/tumpangan/services/reviews"
)

// reviewModerator keeps the review collection in memory, newest first, with
// the same snapshot-broadcast pattern as the ride store.
type reviewModerator struct {
	clock clockwork.Clock
	bus   notification.Bus

	mu        sync.Mutex
	reviews   []*models.Review
	listeners map[int]func([]models.Review)
	nextSub   int
}

// NewReviewModerator creates a new review moderator
func NewReviewModerator(clock clockwork.Clock, bus notification.Bus) reviews.Moderator {
	return &reviewModerator{
		clock:     clock,
		bus:       bus,
		listeners: make(map[int]func([]models.Review)),
	}
}

func (m *reviewModerator) Submit(ctx context.Context, rideID, authorID, targetID string, rating int, comment string) (*models.Review, error) {
	if rideID == "" || authorID == "" || targetID == "" {
		return nil, fmt.Errorf("ride, author and target are required: %w", apperrors.ErrValidation)
	}
	if authorID == targetID {
		return nil, fmt.Errorf("cannot review yourself: %w", apperrors.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}

	nowMs := m.clock.Now().UnixMilli()
	r := &models.Review{
		ID:        uuid.NewString(),
		RideID:    rideID,
		AuthorID:  authorID,
		TargetID:  targetID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Status:    models.ReviewStatusPending,
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}

	m.mu.Lock()
	m.reviews = append([]*models.Review{r}, m.reviews...)
	snapshot, fns := m.captureLocked()
	out := *r
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
	return &out, nil
}

func (m *reviewModerator) Moderate(ctx context.Context, id string, approve bool) (*models.Review, error) {
	nowMs := m.clock.Now().UnixMilli()

	m.mu.Lock()
	r := m.findLocked(id)
	if r == nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("review %s: %w", id, apperrors.ErrNotFound)
	}
	if r.Status != models.ReviewStatusPending {
		m.mu.Unlock()
		return nil, fmt.Errorf("review %s already moderated: %w", id, apperrors.ErrValidation)
	}

	if approve {
		r.Status = models.ReviewStatusPublished
	} else {
		r.Status = models.ReviewStatusRejected
	}
	r.UpdatedAt = nowMs

	snapshot, fns := m.captureLocked()
	out := *r
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
	if out.Status == models.ReviewStatusPublished {
		m.bus.Push(models.Notification{
			Recipient: out.TargetID,
			Title:     "New review",
			Body:      fmt.Sprintf("You received a %d-star review", out.Rating),
			Data: map[string]interface{}{
				"action":    models.NotifyActionReviewPublished,
				"review_id": out.ID,
				"ride_id":   out.RideID,
			},
		})
	}
	return &out, nil
}

func (m *reviewModerator) ListForTarget(ctx context.Context, targetID string) []models.Review {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Review, 0)
	for _, r := range m.reviews {
		if r.TargetID == targetID && r.Status == models.ReviewStatusPublished {
			out = append(out, *r)
		}
	}
	return out
}

func (m *reviewModerator) Subscribe(fn func([]models.Review)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.listeners[id] = fn
	replay := m.snapshotLocked()
	m.mu.Unlock()

	fn(replay)

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *reviewModerator) findLocked(id string) *models.Review {
	for _, r := range m.reviews {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *reviewModerator) snapshotLocked() []models.Review {
	out := make([]models.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		out = append(out, *r)
	}
	return out
}

func (m *reviewModerator) captureLocked() ([]models.Review, []func([]models.Review)) {
	snapshot := m.snapshotLocked()
	fns := make([]func([]models.Review), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	return snapshot, fns
}
