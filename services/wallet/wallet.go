package wallet

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// Ledger defines the interface for per-user wallet accounting. Balances are
// the fold of the transaction history; a debit below zero never mutates.
type Ledger interface {
	// GetWallet returns a copy of the owner's wallet, creating it lazily
	GetWallet(ownerID string) models.Wallet

	// Subscribe registers a listener for one owner's wallet snapshots
	Subscribe(ownerID string, fn func(models.Wallet)) func()

	// Credit appends a credit transaction; rideID may be empty
	Credit(ownerID string, amount decimal.Decimal, description, rideID string)

	// Debit appends a debit transaction; false and no mutation on
	// insufficient funds
	Debit(ownerID string, amount decimal.Decimal, description, rideID string) bool

	// AddPoints grants loyalty points
	AddPoints(ownerID string, points int)

	// ConsumeRideCredit burns one pre-purchased ride credit; false if none left
	ConsumeRideCredit(ownerID string) bool

	// GetRideCredits returns the remaining ride credits
	GetRideCredits(ownerID string) int

	// PurchaseRideCreditPack debits the wallet and grants packSize credits
	// atomically; false and no mutation on insufficient funds
	PurchaseRideCreditPack(ownerID string, packSize int, price decimal.Decimal) bool

	// SetPayoutMethod registers the withdrawal destination
	SetPayoutMethod(ownerID, brand, last4 string)

	// RequestMonthlyWithdrawal pays out the full balance, gated by the
	// configured cool-down
	RequestMonthlyWithdrawal(ownerID string) models.WithdrawalResult

	// ToggleChecklistItem flips one onboarding checklist item and returns
	// the new state
	ToggleChecklistItem(ownerID, item string) bool

	// Close drains the listener dispatcher; idempotent
	Close()
}

// WalletGW mirrors wallet snapshots into external systems, best-effort
type WalletGW interface {
	MirrorWallet(ctx context.Context, wallet models.Wallet) error
}
