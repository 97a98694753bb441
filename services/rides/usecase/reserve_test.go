package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/rides/mocks"
)

func TestReserveSeatCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)

	require.True(t, res.OK)
	require.NotNil(t, res.Ride)
	assert.True(t, res.Ride.HasPassenger("pax-1"))

	receipts := f.payments.GetPaymentsForPassenger("pax-1")
	require.Len(t, receipts, 1)
	assert.Equal(t, ride.ID, receipts[0].RideID)

	require.Eventually(t, func() bool {
		for _, n := range f.bus.GetNotifications("pax-1") {
			if n.Data["action"] == models.NotifyActionSeatReserved {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReserveSeatDefaultsToCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", "")
	require.NoError(t, err)
	require.True(t, res.OK)

	receipts := f.payments.GetPaymentsForPassenger("pax-1")
	require.Len(t, receipts, 1)
	assert.Equal(t, models.PaymentMethodCard, receipts[0].Method)
}

func TestReserveSeatWalletCharges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.ledger.Credit("pax-1", decimal.RequireFromString("12.00"), "seed", "")
	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodWallet)
	require.NoError(t, err)
	require.True(t, res.OK)

	assert.True(t, f.ledger.GetWallet("pax-1").Balance.Equal(decimal.RequireFromString("2.00")))
}

func TestReserveSeatWalletInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.ledger.Credit("pax-1", decimal.RequireFromString("9.99"), "seed", "")
	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodWallet)
	require.NoError(t, err)

	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationPaymentWallet, res.Reason)

	// Failed charge left no seat behind
	got, err := f.store.GetRide(ctx, ride.ID)
	require.NoError(t, err)
	assert.False(t, got.HasPassenger("pax-1"))
}

func TestReserveSeatPassWithoutCredit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodPass)
	require.NoError(t, err)

	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationPaymentPass, res.Reason)
}

func TestReserveSeatUnknownMethod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethod("crypto"))
	require.NoError(t, err)

	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationPaymentUnknown, res.Reason)
}

func TestReserveSeatWalletListenerReadsStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	f.ledger.Credit("pax-1", decimal.RequireFromString("12.00"), "seed", "")

	// A wallet subscriber that reads back through the store must not block
	// the reservation holding the ride lock
	observed := make(chan int, 4)
	unsub := f.ledger.Subscribe("pax-1", func(w models.Wallet) {
		observed <- len(f.store.GetRides(ctx))
	})
	defer unsub()

	done := make(chan models.ReservationResult, 1)
	go func() {
		res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodWallet)
		if err == nil {
			done <- res
		}
	}()

	select {
	case res := <-done:
		require.True(t, res.OK)
	case <-time.After(2 * time.Second):
		t.Fatal("ReserveSeat blocked on a wallet listener")
	}

	// Listener fires for the seed credit and again for the seat debit
	require.Eventually(t, func() bool {
		select {
		case n := <-observed:
			return n == 1
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReserveSeatStateGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.ReserveSeat(ctx, "missing", "pax-1", models.PaymentMethodCard)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	// Double reservation by the same passenger
	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationAlreadyReserved, res.Reason)

	// Fill the second seat, then the ride is full
	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-2", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-3", models.PaymentMethodCard)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationFull, res.Reason)

	// Departed rides reject new passengers outright
	f.clock.Advance(2 * time.Hour)
	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-4", models.PaymentMethodCard)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, models.ReservationDeparted, res.Reason)
}

func TestReserveSeatRaceExactlyOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := publishReq()
	req.Seats = 1
	ride, err := f.store.Publish(ctx, req)
	require.NoError(t, err)

	results := make([]models.ReservationResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, pax := range []string{"pax-1", "pax-2"} {
		wg.Add(1)
		go func(i int, pax string) {
			defer wg.Done()
			results[i], errs[i] = f.store.ReserveSeat(ctx, ride.ID, pax, models.PaymentMethodCard)
		}(i, pax)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	wins, fulls := 0, 0
	for _, res := range results {
		if res.OK {
			wins++
		} else if res.Reason == models.ReservationFull {
			fulls++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, fulls)
}

func TestConfirmReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	got := f.store.ConfirmReservation(ctx, ride.ID, "pax-1")
	require.NotNil(t, got)
	assert.True(t, got.HasPassenger("pax-1"))

	// No charge for a confirmed seat
	assert.Empty(t, f.payments.GetPaymentsForPassenger("pax-1"))

	// No-ops return nil
	assert.Nil(t, f.store.ConfirmReservation(ctx, ride.ID, "pax-1"))
	assert.Nil(t, f.store.ConfirmReservation(ctx, "missing", "pax-2"))

	got = f.store.ConfirmReservation(ctx, ride.ID, "pax-2")
	require.NotNil(t, got)
	assert.Nil(t, f.store.ConfirmReservation(ctx, ride.ID, "pax-3")) // full
}

func TestCancelReservationSymmetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)

	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	got := f.store.CancelReservation(ctx, ride.ID, "pax-1")
	require.NotNil(t, got)
	assert.False(t, got.HasPassenger("pax-1"))
	assert.Equal(t, []string{"pax-1"}, got.CanceledPassengers)

	// Second cancel is a nil no-op and the canceled list stays deduplicated
	assert.Nil(t, f.store.CancelReservation(ctx, ride.ID, "pax-1"))

	// The freed seat can be taken again
	res, err = f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	got = f.store.CancelReservation(ctx, ride.ID, "pax-1")
	require.NotNil(t, got)
	assert.Equal(t, []string{"pax-1"}, got.CanceledPassengers)
}

func TestCancelReservationAfterDeparture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ride, err := f.store.Publish(ctx, publishReq())
	require.NoError(t, err)
	res, err := f.store.ReserveSeat(ctx, ride.ID, "pax-1", models.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, res.OK)

	f.clock.Advance(2 * time.Hour)

	// Departed rides are immutable except for settlement
	assert.Nil(t, f.store.CancelReservation(ctx, ride.ID, "pax-1"))
}

func TestGatewayMirrorsMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockRideGW(ctrl)
	mirrored := make(chan models.Ride, 16)
	gw.EXPECT().MirrorRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Ride) error {
			mirrored <- r
			return nil
		}).AnyTimes()
	gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().DeleteRideMirror(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := newFixture(t)
	storeWithGW := NewRideStore(
		storeConfig(), f.clock, f.ledger, f.payments, f.bus, f.agg,
		f.store.(*rideStore).pricing, f.store.(*rideStore).routes, gw,
	)

	ride, err := storeWithGW.Publish(context.Background(), publishReq())
	require.NoError(t, err)

	select {
	case r := <-mirrored:
		assert.Equal(t, ride.ID, r.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mirror write")
	}
}
