package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/notification"
	"github.com/piresc/tumpangan/services/payment"
	"github.com/piresc/tumpangan/services/wallet"
)

// paymentProcessor implements payment.Processor. It is pure with respect to
// ride state: the only store it mutates is the wallet ledger.
type paymentProcessor struct {
	clock   clockwork.Clock
	wallets wallet.Ledger
	bus     notification.Bus

	mu        sync.Mutex
	payments  []models.Payment
	listeners map[int]func(models.Payment)
	nextSub   int
}

// NewPaymentProcessor creates a new payment processor
func NewPaymentProcessor(clock clockwork.Clock, wallets wallet.Ledger, bus notification.Bus) payment.Processor {
	return &paymentProcessor{
		clock:     clock,
		wallets:   wallets,
		bus:       bus,
		listeners: make(map[int]func(models.Payment)),
	}
}

func (p *paymentProcessor) ProcessPayment(ctx context.Context, ride models.Ride, payerID string, method models.PaymentMethod) (*models.Payment, error) {
	switch method {
	case models.PaymentMethodWallet:
		if ok := p.wallets.Debit(payerID, ride.Price, fmt.Sprintf("Seat on %s → %s", ride.Origin, ride.Destination), ride.ID); !ok {
			return nil, apperrors.ErrInsufficientFunds
		}
	case models.PaymentMethodPass:
		if ok := p.wallets.ConsumeRideCredit(payerID); !ok {
			return nil, apperrors.ErrNoCreditAvailable
		}
	case models.PaymentMethodCard:
		// External card rail, treated as always authorized
	default:
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}

	pay := models.Payment{
		ID:          uuid.New().String(),
		RideID:      ride.ID,
		PassengerID: payerID,
		Amount:      ride.Price,
		Method:      method,
		Status:      models.PaymentStatusPaid,
		CreatedAt:   p.clock.Now().UnixMilli(),
	}

	p.mu.Lock()
	p.payments = append(p.payments, pay)
	var fns []func(models.Payment)
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	// Listener fan-out off the caller's goroutine: the ride store invokes
	// ProcessPayment while holding its collection lock
	if len(fns) > 0 {
		go func() {
			for _, fn := range fns {
				fn(pay)
			}
		}()
	}

	p.bus.Push(models.Notification{
		Recipient: payerID,
		Title:     "Payment confirmed",
		Body:      fmt.Sprintf("You paid %s for a seat on %s → %s", pay.Amount.StringFixed(2), ride.Origin, ride.Destination),
		Data: map[string]interface{}{
			"action":  models.NotifyActionPaymentReceived,
			"ride_id": ride.ID,
			"method":  string(method),
		},
	})
	p.bus.Push(models.Notification{
		Recipient: ride.OwnerID,
		Title:     "Seat paid",
		Body:      fmt.Sprintf("A passenger paid %s for your ride %s → %s", pay.Amount.StringFixed(2), ride.Origin, ride.Destination),
		Data: map[string]interface{}{
			"action":  models.NotifyActionPaymentReceived,
			"ride_id": ride.ID,
			"method":  string(method),
		},
	})

	logger.Info("Payment processed",
		logger.String("payment_id", pay.ID),
		logger.String("ride_id", ride.ID),
		logger.String("payer_id", payerID),
		logger.String("method", string(method)),
		logger.String("amount", pay.Amount.String()))

	return &pay, nil
}

func (p *paymentProcessor) GetPaymentsForPassenger(passengerID string) []models.Payment {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.Payment
	for _, pay := range p.payments {
		if pay.PassengerID == passengerID {
			out = append(out, pay)
		}
	}
	return out
}

func (p *paymentProcessor) Subscribe(fn func(models.Payment)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}
