package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/services/rides"
)

// rideGW mirrors ride snapshots into Redis and publishes lifecycle events
// over NATS. Both backends are optional; failures bubble up to the caller,
// which logs and drops them.
type rideGW struct {
	redis *database.RedisClient
	nats  *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(redis *database.RedisClient, nats *natspkg.Client) rides.RideGW {
	return &rideGW{redis: redis, nats: nats}
}

func (g *rideGW) MirrorRide(ctx context.Context, ride models.Ride) error {
	if g.redis == nil {
		return nil
	}

	data, err := json.Marshal(ride)
	if err != nil {
		return fmt.Errorf("failed to marshal ride: %w", err)
	}

	key := constants.KeyRideMirror + ride.ID
	if err := g.redis.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("failed to mirror ride: %w", err)
	}
	return nil
}

func (g *rideGW) DeleteRideMirror(ctx context.Context, rideID string) error {
	if g.redis == nil {
		return nil
	}

	if err := g.redis.Delete(ctx, constants.KeyRideMirror+rideID); err != nil {
		return fmt.Errorf("failed to delete ride mirror: %w", err)
	}
	return nil
}

func (g *rideGW) PublishRideEvent(ctx context.Context, subject string, ride models.Ride) error {
	if g.nats == nil {
		return nil
	}

	if err := g.nats.PublishJSON(subject, ride); err != nil {
		return fmt.Errorf("failed to publish ride event: %w", err)
	}
	return nil
}
