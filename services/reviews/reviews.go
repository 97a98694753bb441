package reviews

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// Moderator manages ride reviews through their moderation lifecycle.
//
//go:generate mockgen -destination=mocks/mock_moderator.go -package=mocks github.com/piresc/tumpangan/services/reviews Moderator
type Moderator interface {
	// Submit validates and stores a new review in pending state
	Submit(ctx context.Context, rideID, authorID, targetID string, rating int, comment string) (*models.Review, error)

	// Moderate publishes or rejects a pending review; publishing notifies
	// the review's target
	Moderate(ctx context.Context, id string, approve bool) (*models.Review, error)

	// ListForTarget returns the published reviews about one identity,
	// newest first
	ListForTarget(ctx context.Context, targetID string) []models.Review

	// Subscribe registers a snapshot listener and replays the current
	// collection; the returned func unsubscribes
	Subscribe(fn func([]models.Review)) func()
}
