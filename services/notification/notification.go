package notification

import (
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// Bus defines the interface for per-recipient mailboxes with pub/sub fan-out
// and deferred, cancellable delivery
type Bus interface {
	// Push assigns id and timestamp, stores the notification unread and fans
	// it out to the recipient's listeners
	Push(n models.Notification) models.Notification

	// Subscribe registers a listener for one recipient and replays the
	// current mailbox immediately; the returned func unsubscribes
	Subscribe(recipient string, fn func(models.Notification)) func()

	// GetNotifications returns a copy of the recipient's mailbox, newest last
	GetNotifications(recipient string) []models.Notification

	// MarkAsRead flags one mailbox entry; false if unknown
	MarkAsRead(recipient, id string) bool

	// Clear drops the recipient's mailbox
	Clear(recipient string)

	// Schedule defers delivery until atMs; a later Schedule or Cancel with
	// the same cancelKey replaces or drops the pending delivery
	Schedule(n models.Notification, atMs int64, cancelKey string)

	// Cancel drops a pending scheduled delivery by key
	Cancel(cancelKey string)

	// RegisterAreaInterest opts a user into "new ride" fan-out for an area
	RegisterAreaInterest(area, userID string)

	// GetAreaSubscribers lists the users interested in an area
	GetAreaSubscribers(area string) []string

	// Close stops the dispatcher; pending fan-outs are drained first
	Close()
}
