package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/notification"
)

// dispatchJob carries one stored notification plus the listener snapshot taken
// while the mailbox lock was held
type dispatchJob struct {
	n         models.Notification
	listeners []func(models.Notification)
}

// notificationBus implements notification.Bus. Listener callbacks run on a
// single dispatcher goroutine so a slow subscriber never stalls a caller's
// critical section, and fan-out order matches push order.
type notificationBus struct {
	clock clockwork.Clock

	mu        sync.Mutex
	mailboxes map[string][]models.Notification
	listeners map[string]map[int]func(models.Notification)
	nextSub   int
	scheduled map[string]clockwork.Timer
	areas     map[string][]string
	closed    bool

	// sendMu serializes enqueue against Close so the jobs channel is never
	// written after it is closed
	sendMu sync.RWMutex
	jobs   chan dispatchJob
	done   chan struct{}
	once   sync.Once
}

// NewNotificationBus creates a new notification bus
func NewNotificationBus(clock clockwork.Clock) notification.Bus {
	b := &notificationBus{
		clock:     clock,
		mailboxes: make(map[string][]models.Notification),
		listeners: make(map[string]map[int]func(models.Notification)),
		scheduled: make(map[string]clockwork.Timer),
		areas:     make(map[string][]string),
		jobs:      make(chan dispatchJob, 256),
		done:      make(chan struct{}),
	}
	go b.dispatch()
	return b
}

func (b *notificationBus) dispatch() {
	defer close(b.done)
	for job := range b.jobs {
		for _, fn := range job.listeners {
			fn(job.n)
		}
	}
}

func (b *notificationBus) Push(n models.Notification) models.Notification {
	// The mailbox owns its own Data map; neither the caller nor any
	// consumer copy can reach back into it
	n = n.Clone()

	b.mu.Lock()
	n.ID = uuid.New().String()
	n.CreatedAt = b.clock.Now().UnixMilli()
	n.Read = false
	b.mailboxes[n.Recipient] = append(b.mailboxes[n.Recipient], n)

	var snapshot []func(models.Notification)
	for _, fn := range b.listeners[n.Recipient] {
		snapshot = append(snapshot, fn)
	}
	b.mu.Unlock()

	if len(snapshot) > 0 {
		b.sendMu.RLock()
		if !b.closed {
			b.jobs <- dispatchJob{n: n.Clone(), listeners: snapshot}
		}
		b.sendMu.RUnlock()
	}
	return n.Clone()
}

func (b *notificationBus) Subscribe(recipient string, fn func(models.Notification)) func() {
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	if b.listeners[recipient] == nil {
		b.listeners[recipient] = make(map[int]func(models.Notification))
	}
	b.listeners[recipient][id] = fn
	replay := make([]models.Notification, 0, len(b.mailboxes[recipient]))
	for i := range b.mailboxes[recipient] {
		replay = append(replay, b.mailboxes[recipient][i].Clone())
	}
	b.mu.Unlock()

	// Replay the current mailbox to the new listener before any new pushes
	// reach it through the dispatcher
	for _, n := range replay {
		fn(n)
	}

	return func() {
		b.mu.Lock()
		delete(b.listeners[recipient], id)
		b.mu.Unlock()
	}
}

func (b *notificationBus) GetNotifications(recipient string) []models.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Notification, 0, len(b.mailboxes[recipient]))
	for i := range b.mailboxes[recipient] {
		out = append(out, b.mailboxes[recipient][i].Clone())
	}
	return out
}

func (b *notificationBus) MarkAsRead(recipient, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	box := b.mailboxes[recipient]
	for i := range box {
		if box[i].ID == id {
			box[i].Read = true
			return true
		}
	}
	return false
}

func (b *notificationBus) Clear(recipient string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.mailboxes, recipient)
}

func (b *notificationBus) Schedule(n models.Notification, atMs int64, cancelKey string) {
	delay := time.Duration(atMs-b.clock.Now().UnixMilli()) * time.Millisecond
	if delay <= 0 {
		b.Push(n)
		return
	}

	b.mu.Lock()
	if prev, ok := b.scheduled[cancelKey]; ok {
		prev.Stop()
	}
	b.scheduled[cancelKey] = b.clock.AfterFunc(delay, func() {
		b.mu.Lock()
		delete(b.scheduled, cancelKey)
		b.mu.Unlock()
		b.Push(n)
	})
	b.mu.Unlock()

	logger.Debug("Scheduled notification",
		logger.String("cancel_key", cancelKey),
		logger.Int64("at_ms", atMs))
}

func (b *notificationBus) Cancel(cancelKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.scheduled[cancelKey]; ok {
		t.Stop()
		delete(b.scheduled, cancelKey)
	}
}

func (b *notificationBus) RegisterAreaInterest(area, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.areas[area] {
		if existing == userID {
			return
		}
	}
	b.areas[area] = append(b.areas[area], userID)
}

func (b *notificationBus) GetAreaSubscribers(area string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.areas[area]...)
}

func (b *notificationBus) Close() {
	b.once.Do(func() {
		b.mu.Lock()
		for key, t := range b.scheduled {
			t.Stop()
			delete(b.scheduled, key)
		}
		b.mu.Unlock()

		b.sendMu.Lock()
		b.closed = true
		close(b.jobs)
		b.sendMu.Unlock()
	})
	<-b.done
}
