package models

// Notification is a single mailbox entry for one recipient
type Notification struct {
	ID        string                 `json:"id"`
	Recipient string                 `json:"recipient"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Data      map[string]interface{} `json:"data,omitempty"` // action tag + contextual fields
	CreatedAt int64                  `json:"created_at"`     // epoch millis
	Read      bool                   `json:"read"`
}

// Clone returns a defensive copy with its own Data map
func (n *Notification) Clone() Notification {
	c := *n
	if n.Data != nil {
		c.Data = make(map[string]interface{}, len(n.Data))
		for k, v := range n.Data {
			c.Data[k] = v
		}
	}
	return c
}

// Well-known notification action tags
const (
	NotifyActionNewRide         = "new_ride"
	NotifyActionRideUpdated     = "ride_updated"
	NotifyActionRideCanceled    = "ride_canceled"
	NotifyActionSeatReserved    = "seat_reserved"
	NotifyActionSeatCanceled    = "seat_canceled"
	NotifyActionDepartureSoon   = "departure_soon"
	NotifyActionPayoutSettled   = "payout_settled"
	NotifyActionPaymentReceived = "payment_received"
	NotifyActionReviewPublished = "review_published"
)
