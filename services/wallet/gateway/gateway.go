package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/services/wallet"
)

// walletGW mirrors wallet snapshots into Redis and publishes update events
// over NATS. Both backends are optional; failures bubble up to the caller,
// which logs and drops them.
type walletGW struct {
	redis *database.RedisClient
	nats  *natspkg.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(redis *database.RedisClient, nats *natspkg.Client) wallet.WalletGW {
	return &walletGW{redis: redis, nats: nats}
}

func (g *walletGW) MirrorWallet(ctx context.Context, w models.Wallet) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}

	if g.redis != nil {
		key := constants.KeyWalletMirror + w.OwnerID
		if err := g.redis.Set(ctx, key, data, 0); err != nil {
			return fmt.Errorf("failed to mirror wallet: %w", err)
		}
	}

	if g.nats != nil {
		if err := g.nats.Publish(constants.SubjectWalletUpdated, data); err != nil {
			return fmt.Errorf("failed to publish wallet event: %w", err)
		}
	}

	return nil
}
