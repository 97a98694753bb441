package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes ledger entry directions
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// WalletTransaction is one immutable ledger entry. BalanceAfter always equals
// the wallet balance immediately after the entry was applied.
type WalletTransaction struct {
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    int64           `json:"created_at"` // epoch millis
	RideID       string          `json:"ride_id,omitempty"`
}

// PayoutMethod is the registered destination for monthly withdrawals
type PayoutMethod struct {
	Brand   string `json:"brand"`
	Last4   string `json:"last4"`
	AddedAt int64  `json:"added_at"` // epoch millis
}

// Wallet holds a user's balance, loyalty points and ride credits
type Wallet struct {
	OwnerID             string              `json:"owner_id"`
	Balance             decimal.Decimal     `json:"balance"`
	Points              int                 `json:"points"`
	RideCredits         int                 `json:"ride_credits"`
	Transactions        []WalletTransaction `json:"transactions"`
	PayoutMethod        *PayoutMethod       `json:"payout_method,omitempty"`
	LastWithdrawalAt    int64               `json:"last_withdrawal_at"` // epoch millis, 0 = never
	WithdrawalDelayDays int                 `json:"withdrawal_delay_days"`
	Checklist           map[string]bool     `json:"checklist"`
}

// Clone returns a defensive copy with its own transaction slice and checklist
func (w *Wallet) Clone() Wallet {
	c := *w
	c.Transactions = append([]WalletTransaction(nil), w.Transactions...)
	c.Checklist = make(map[string]bool, len(w.Checklist))
	for k, v := range w.Checklist {
		c.Checklist[k] = v
	}
	if w.PayoutMethod != nil {
		pm := *w.PayoutMethod
		c.PayoutMethod = &pm
	}
	return c
}

// Withdrawal failure reasons
const (
	WithdrawalReasonEmpty          = "empty"
	WithdrawalReasonNoPayoutMethod = "no-payout-method"
	WithdrawalReasonTooSoon        = "too-soon"
)

// WithdrawalResult is the tagged outcome of a monthly withdrawal request
type WithdrawalResult struct {
	OK     bool            `json:"ok"`
	Amount decimal.Decimal `json:"amount,omitempty"`
	Reason string          `json:"reason,omitempty"`
	Next   int64           `json:"next,omitempty"` // epoch millis when the gate reopens
}
