package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/wallet"
	"github.com/shopspring/decimal"
)

const millisPerDay = int64(86400000)

// walletJob carries one wallet snapshot plus the listener set captured while
// the ledger lock was held
type walletJob struct {
	snapshot models.Wallet
	fns      []func(models.Wallet)
}

// walletLedger implements wallet.Ledger. One mutex guards the whole
// collection so balance checks and mutations form one atomic unit. Listener
// callbacks run on a single dispatcher goroutine: the ledger is called while
// callers hold their own locks (the ride store charges seats under its ride
// mutex), so fan-out on the caller's goroutine could stall that lock or
// deadlock a listener that reads back through it.
type walletLedger struct {
	cfg   *models.Config
	clock clockwork.Clock
	gw    wallet.WalletGW // optional, nil disables mirroring

	mu        sync.Mutex
	wallets   map[string]*models.Wallet
	listeners map[string]map[int]func(models.Wallet)
	nextSub   int

	// sendMu serializes enqueue against Close so the jobs channel is never
	// written after it is closed
	sendMu sync.RWMutex
	closed bool
	jobs   chan walletJob
	done   chan struct{}
	once   sync.Once
}

// NewWalletLedger creates a new wallet ledger
func NewWalletLedger(cfg *models.Config, clock clockwork.Clock, gw wallet.WalletGW) wallet.Ledger {
	l := &walletLedger{
		cfg:       cfg,
		clock:     clock,
		gw:        gw,
		wallets:   make(map[string]*models.Wallet),
		listeners: make(map[string]map[int]func(models.Wallet)),
		jobs:      make(chan walletJob, 256),
		done:      make(chan struct{}),
	}
	go l.dispatch()
	return l
}

func (l *walletLedger) dispatch() {
	defer close(l.done)
	for job := range l.jobs {
		for _, fn := range job.fns {
			fn(job.snapshot)
		}
	}
}

// walletLocked returns the owner's wallet, creating it lazily
func (l *walletLedger) walletLocked(ownerID string) *models.Wallet {
	w, ok := l.wallets[ownerID]
	if !ok {
		w = &models.Wallet{
			OwnerID:             ownerID,
			Balance:             decimal.Zero,
			WithdrawalDelayDays: l.cfg.Marketplace.WithdrawalDelayDays,
			Checklist:           make(map[string]bool),
		}
		l.wallets[ownerID] = w
	}
	return w
}

// publish clones the wallet under the lock, then notifies listeners and the
// mirror outside of it
func (l *walletLedger) publishLocked(w *models.Wallet) (models.Wallet, []func(models.Wallet)) {
	snapshot := w.Clone()
	var fns []func(models.Wallet)
	for _, fn := range l.listeners[w.OwnerID] {
		fns = append(fns, fn)
	}
	return snapshot, fns
}

func (l *walletLedger) notify(snapshot models.Wallet, fns []func(models.Wallet)) {
	if len(fns) > 0 {
		l.sendMu.RLock()
		if !l.closed {
			l.jobs <- walletJob{snapshot: snapshot, fns: fns}
		}
		l.sendMu.RUnlock()
	}
	if l.gw != nil {
		go func() {
			if err := l.gw.MirrorWallet(context.Background(), snapshot); err != nil {
				logger.Warn("Wallet mirror write failed",
					logger.String("owner_id", snapshot.OwnerID),
					logger.Err(err))
			}
		}()
	}
}

func (l *walletLedger) GetWallet(ownerID string) models.Wallet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.walletLocked(ownerID).Clone()
}

func (l *walletLedger) Subscribe(ownerID string, fn func(models.Wallet)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	if l.listeners[ownerID] == nil {
		l.listeners[ownerID] = make(map[int]func(models.Wallet))
	}
	l.listeners[ownerID][id] = fn
	snapshot := l.walletLocked(ownerID).Clone()
	l.mu.Unlock()

	fn(snapshot)

	return func() {
		l.mu.Lock()
		delete(l.listeners[ownerID], id)
		l.mu.Unlock()
	}
}

// appendTransactionLocked applies one credit/debit and records the entry with
// the post-mutation balance. nowMs is the operation's single clock read.
func (l *walletLedger) appendTransactionLocked(w *models.Wallet, txType models.TransactionType, amount decimal.Decimal, description, rideID string, nowMs int64) {
	if txType == models.TransactionCredit {
		w.Balance = w.Balance.Add(amount)
	} else {
		w.Balance = w.Balance.Sub(amount)
	}
	w.Transactions = append(w.Transactions, models.WalletTransaction{
		ID:           uuid.New().String(),
		Type:         txType,
		Amount:       amount,
		Description:  description,
		BalanceAfter: w.Balance,
		CreatedAt:    nowMs,
		RideID:       rideID,
	})
}

func (l *walletLedger) Credit(ownerID string, amount decimal.Decimal, description, rideID string) {
	nowMs := l.clock.Now().UnixMilli()

	l.mu.Lock()
	w := l.walletLocked(ownerID)
	l.appendTransactionLocked(w, models.TransactionCredit, amount, description, rideID, nowMs)
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
}

func (l *walletLedger) Debit(ownerID string, amount decimal.Decimal, description, rideID string) bool {
	nowMs := l.clock.Now().UnixMilli()

	l.mu.Lock()
	w := l.walletLocked(ownerID)
	if w.Balance.LessThan(amount) {
		l.mu.Unlock()
		return false
	}
	l.appendTransactionLocked(w, models.TransactionDebit, amount, description, rideID, nowMs)
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
	return true
}

func (l *walletLedger) AddPoints(ownerID string, points int) {
	l.mu.Lock()
	w := l.walletLocked(ownerID)
	w.Points += points
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
}

func (l *walletLedger) ConsumeRideCredit(ownerID string) bool {
	l.mu.Lock()
	w := l.walletLocked(ownerID)
	if w.RideCredits <= 0 {
		l.mu.Unlock()
		return false
	}
	w.RideCredits--
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
	return true
}

func (l *walletLedger) GetRideCredits(ownerID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.walletLocked(ownerID).RideCredits
}

func (l *walletLedger) PurchaseRideCreditPack(ownerID string, packSize int, price decimal.Decimal) bool {
	if packSize <= 0 {
		return false
	}
	nowMs := l.clock.Now().UnixMilli()

	l.mu.Lock()
	w := l.walletLocked(ownerID)
	if w.Balance.LessThan(price) {
		l.mu.Unlock()
		return false
	}
	l.appendTransactionLocked(w, models.TransactionDebit, price, "Ride credit pack purchase", "", nowMs)
	w.RideCredits += packSize
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
	return true
}

func (l *walletLedger) SetPayoutMethod(ownerID, brand, last4 string) {
	nowMs := l.clock.Now().UnixMilli()

	l.mu.Lock()
	w := l.walletLocked(ownerID)
	w.PayoutMethod = &models.PayoutMethod{
		Brand:   brand,
		Last4:   last4,
		AddedAt: nowMs,
	}
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
}

func (l *walletLedger) RequestMonthlyWithdrawal(ownerID string) models.WithdrawalResult {
	nowMs := l.clock.Now().UnixMilli()

	l.mu.Lock()
	w := l.walletLocked(ownerID)

	if w.Balance.LessThanOrEqual(decimal.Zero) {
		l.mu.Unlock()
		return models.WithdrawalResult{OK: false, Reason: models.WithdrawalReasonEmpty}
	}
	if w.PayoutMethod == nil {
		l.mu.Unlock()
		return models.WithdrawalResult{OK: false, Reason: models.WithdrawalReasonNoPayoutMethod}
	}
	if w.LastWithdrawalAt > 0 {
		next := w.LastWithdrawalAt + int64(w.WithdrawalDelayDays)*millisPerDay
		if nowMs < next {
			l.mu.Unlock()
			return models.WithdrawalResult{OK: false, Reason: models.WithdrawalReasonTooSoon, Next: next}
		}
	}

	amount := w.Balance
	l.appendTransactionLocked(w, models.TransactionDebit, amount, "Monthly payout withdrawal", "", nowMs)
	w.LastWithdrawalAt = nowMs
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
	logger.Info("Monthly withdrawal processed",
		logger.String("owner_id", ownerID),
		logger.String("amount", amount.String()))
	return models.WithdrawalResult{OK: true, Amount: amount}
}

func (l *walletLedger) ToggleChecklistItem(ownerID, item string) bool {
	l.mu.Lock()
	w := l.walletLocked(ownerID)
	w.Checklist[item] = !w.Checklist[item]
	state := w.Checklist[item]
	snapshot, fns := l.publishLocked(w)
	l.mu.Unlock()

	l.notify(snapshot, fns)
	return state
}

func (l *walletLedger) Close() {
	l.once.Do(func() {
		l.sendMu.Lock()
		l.closed = true
		close(l.jobs)
		l.sendMu.Unlock()
	})
	<-l.done
}
