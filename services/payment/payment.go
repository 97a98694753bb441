package payment

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// Processor defines the interface for charging passengers. A Payment record
// is only ever constructed after the money moved: callers rely on
// "Payment exists ⇒ money moved".
type Processor interface {
	// ProcessPayment charges the payer for one seat on the ride using the
	// requested method. Wallet charges fail with apperrors.ErrInsufficientFunds,
	// pass charges with apperrors.ErrNoCreditAvailable; card charges are
	// treated as always authorized by the external rail.
	ProcessPayment(ctx context.Context, ride models.Ride, payerID string, method models.PaymentMethod) (*models.Payment, error)

	// GetPaymentsForPassenger lists the passenger's receipts, oldest first
	GetPaymentsForPassenger(passengerID string) []models.Payment

	// Subscribe registers a listener for new payments
	Subscribe(fn func(models.Payment)) func()
}
