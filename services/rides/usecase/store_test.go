package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/notification"
	notificationuc "github.com/piresc/tumpangan/services/notification/usecase"
	"github.com/piresc/tumpangan/services/payment"
	paymentuc "github.com/piresc/tumpangan/services/payment/usecase"
	"github.com/piresc/tumpangan/services/revenue"
	revenueuc "github.com/piresc/tumpangan/services/revenue/usecase"
	"github.com/piresc/tumpangan/services/rides"
	"github.com/piresc/tumpangan/services/rides/services"
	"github.com/piresc/tumpangan/services/wallet"
	walletuc "github.com/piresc/tumpangan/services/wallet/usecase"
)

type fixture struct {
	clock  *clockwork.FakeClock
	bus    notification.Bus
	ledger wallet.Ledger
	agg    revenue.Aggregator
	store  rides.RideStore

	payments payment.Processor
}

func storeConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{BaseFare: 1.0, RatePerKm: 0.25, Currency: "EUR"},
		Marketplace: models.MarketplaceConfig{
			CommissionRate:      0.10,
			ReminderLeadMinutes: 30,
			WithdrawalDelayDays: 30,
			MaxSeats:            3,
			RevenueHistoryLimit: 100,
			PointsPerPassenger:  10,
		},
	}
}

// newFixture wires a store over real collaborators and a fake clock starting
// at 2025-01-02 08:00 UTC
func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := storeConfig()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC))
	bus := notificationuc.NewNotificationBus(clock)
	t.Cleanup(bus.Close)

	ledger := walletuc.NewWalletLedger(cfg, clock, nil)
	t.Cleanup(ledger.Close)
	processor := paymentuc.NewPaymentProcessor(clock, ledger, bus)
	agg := revenueuc.NewRevenueAggregator(clock, cfg.Marketplace.RevenueHistoryLimit)

	// 36 km Jakarta → Bogor prices a seat at exactly 1.00 + 0.25*36 = 10.00
	pricing := services.NewStandardPricing(cfg.Pricing)
	routes := services.NewStaticRoutes(
		map[string]float64{"jakarta|bogor": 36},
		map[string]string{"jakarta": "jabodetabek"},
		25,
	)

	store := NewRideStore(cfg, clock, ledger, processor, bus, agg, pricing, routes, nil)
	return &fixture{
		clock:    clock,
		bus:      bus,
		ledger:   ledger,
		agg:      agg,
		store:    store,
		payments: processor,
	}
}

func publishReq() models.PublishRideRequest {
	return models.PublishRideRequest{
		DriverName:  "budi santoso",
		Plate:       "1abc123",
		Origin:      "jakarta",
		Destination: "bogor",
		Time:        "09:00",
		Seats:       2,
		OwnerID:     "driver-1",
	}
}

func TestPublishNormalizesAndPrices(t *testing.T) {
	f := newFixture(t)

	ride, err := f.store.Publish(context.Background(), publishReq())
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", ride.DriverName)
	assert.Equal(t, "1-ABC-123", ride.Plate)
	assert.Equal(t, "Jakarta", ride.Origin)
	assert.Equal(t, "Bogor", ride.Destination)
	assert.Equal(t, models.PricingModeSingle, ride.PricingMode)
	assert.True(t, ride.Price.Equal(decimal.RequireFromString("10.00")), "got %s", ride.Price)
	assert.False(t, ride.PayoutProcessed)

	// Departs at the next 09:00, one hour from the fixture's now
	departure := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, departure, ride.DepartureAt)

	got, err := f.store.GetRide(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.Equal(t, ride.ID, got.ID)
}

func TestPublishTimeAlreadyPassedRollsToNextDay(t *testing.T) {
	f := newFixture(t)

	req := publishReq()
	req.Time = "07:00" // an hour before the fixture's now
	ride, err := f.store.Publish(context.Background(), req)
	require.NoError(t, err)

	departure := time.Date(2025, 1, 3, 7, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, departure, ride.DepartureAt)
}

func TestPublishValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.PublishRideRequest)
	}{
		{"empty driver name", func(r *models.PublishRideRequest) { r.DriverName = "  " }},
		{"malformed plate", func(r *models.PublishRideRequest) { r.Plate = "ABC-1-234" }},
		{"empty origin", func(r *models.PublishRideRequest) { r.Origin = "" }},
		{"empty destination", func(r *models.PublishRideRequest) { r.Destination = "" }},
		{"bad time", func(r *models.PublishRideRequest) { r.Time = "25:61" }},
		{"zero seats", func(r *models.PublishRideRequest) { r.Seats = 0 }},
		{"too many seats", func(r *models.PublishRideRequest) { r.Seats = 4 }},
		{"unknown pricing mode", func(r *models.PublishRideRequest) { r.PricingMode = "triple" }},
		{"missing owner", func(r *models.PublishRideRequest) { r.OwnerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := publishReq()
			tt.mutate(&req)
			_, err := f.store.Publish(ctx, req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	assert.Empty(t, f.store.GetRides(ctx))
}

func TestPublishDoubleModeDoublesPrice(t *testing.T) {
	f := newFixture(t)

	req := publishReq()
	req.PricingMode = models.PricingModeDouble
	ride, err := f.store.Publish(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, ride.Price.Equal(decimal.RequireFromString("20.00")), "got %s", ride.Price)
}

func TestPublishNotifiesAreaSubscribers(t *testing.T) {
	f := newFixture(t)

	f.bus.RegisterAreaInterest("jabodetabek", "nearby-user")
	f.bus.RegisterAreaInterest("jabodetabek", "driver-1") // owner skipped

	_, err := f.store.Publish(context.Background(), publishReq())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(f.bus.GetNotifications("nearby-user")) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, f.bus.GetNotifications("driver-1"))

	n := f.bus.GetNotifications("nearby-user")[0]
	assert.Equal(t, models.NotifyActionNewRide, n.Data["action"])
}

func TestGetRidesNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	second, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	list := f.store.GetRides(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestGetRideUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.GetRide(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSubscribeReplayAndBroadcast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	var snapshots [][]models.Ride
	unsub := f.store.Subscribe(func(rs []models.Ride) {
		snapshots = append(snapshots, rs)
	})

	require.Len(t, snapshots, 1)
	assert.Len(t, snapshots[0], 1)

	_, err = f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[1], 2)

	unsub()
	_, err = f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}

func TestDriverReminderFires(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Publish(context.Background(), publishReq())
	require.NoError(t, err)

	// Reminder lead is 30 minutes before the 09:00 departure
	f.clock.Advance(31 * time.Minute)

	require.Eventually(t, func() bool {
		for _, n := range f.bus.GetNotifications("driver-1") {
			if n.Data["action"] == models.NotifyActionDepartureSoon {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEditRecomputesDepartureAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	newTime := "10:30"
	updated, err := f.store.Edit(ctx, ride.ID, models.RidePatch{Time: &newTime})
	require.NoError(t, err)

	assert.Equal(t, "10:30", updated.Time)
	departure := time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, departure, updated.DepartureAt)

	require.Eventually(t, func() bool {
		for _, n := range f.bus.GetNotifications("pax-1") {
			if n.Data["action"] == models.NotifyActionRideUpdated {
				return n.Data["changed"] == "time"
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEditSeatsBelowPassengers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	for _, pax := range []string{"pax-1", "pax-2"} {
		res, err := f.store.ReserveSeat(ctx, ride.ID, pax, models.PaymentMethodCard)
		require.NoError(t, err)
		require.True(t, res.OK)
	}

	one := 1
	_, err = f.store.Edit(ctx, ride.ID, models.RidePatch{Seats: &one})
	assert.ErrorIs(t, err, apperrors.ErrCapacity)

	// Rejected patch left the ride untouched
	got, err := f.store.GetRide(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Seats)
}

func TestEditAfterDeparture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	newTime := "12:00"
	_, err = f.store.Edit(ctx, ride.ID, models.RidePatch{Time: &newTime})
	assert.ErrorIs(t, err, apperrors.ErrRideDeparted)
}

func TestRemoveNotifiesPassengers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	require.NoError(t, f.store.Remove(ctx, ride.ID))

	_, err = f.store.GetRide(ctx, ride.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.Eventually(t, func() bool {
		for _, n := range f.bus.GetNotifications("pax-1") {
			if n.Data["action"] == models.NotifyActionRideCanceled {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, f.store.Remove(ctx, "missing"), apperrors.ErrNotFound)
}

func TestSettlementCreditsDriverExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.ledger.Credit("pax-1", decimal.RequireFromString("10.00"), "seed", "")
	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodWallet)
	require.NoError(t, err)
	require.True(t, res.OK)
	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-2", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	f.clock.Advance(2 * time.Hour) // past the 09:00 departure

	// Every read path settles; repeated reads must not settle twice
	_ = f.store.GetRides(ctx)
	_ = f.store.GetRides(ctx)
	settledRide, err := f.store.GetRide(ctx, ride.ID)
	require.NoError(t, err)
	assert.True(t, settledRide.PayoutProcessed)

	// Gross 2 × 10.00, commission 10% = 2.00, net 18.00
	w := f.ledger.GetWallet("driver-1")
	assert.True(t, w.Balance.Equal(decimal.RequireFromString("18.00")), "got %s", w.Balance)
	credits := 0
	for _, tx := range w.Transactions {
		if tx.Type == models.TransactionCredit {
			credits++
		}
	}
	assert.Equal(t, 1, credits)
	assert.Equal(t, 20, w.Points)

	snap := f.agg.Snapshot()
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("2.00")), "got %s", snap.Total)
	require.Len(t, snap.Latest, 1)
	assert.Equal(t, ride.ID, snap.Latest[0].RideID)

	require.Eventually(t, func() bool {
		for _, n := range f.bus.GetNotifications("driver-1") {
			if n.Data["action"] == models.NotifyActionPayoutSettled {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSettlementSkipsEmptyRide(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	settled, err := f.store.GetRide(ctx, ride.ID)
	require.NoError(t, err)
	assert.True(t, settled.PayoutProcessed)

	assert.True(t, f.ledger.GetWallet("driver-1").Balance.IsZero())
	assert.Equal(t, 0, f.ledger.GetWallet("driver-1").Points)
	assert.True(t, f.agg.Snapshot().Total.IsZero())
}

func TestPurgeUserRides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	otherReq := publishReq()
	otherReq.OwnerID = "driver-2"
	other, err := f.store.Publish(ctx, otherReq)
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, other.ID, "driver-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	f.store.PurgeUserRides(ctx, "driver-1")

	_, err = f.store.GetRide(ctx, mine.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	kept, err := f.store.GetRide(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, kept.HasPassenger("driver-1"))
}
