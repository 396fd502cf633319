package order

import (
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// NotificationKind classifies the messages produced by step changes.
type NotificationKind int

const (
	KindUnknown NotificationKind = iota
	// KindSentToKitchen follows TransferToKitchen.
	KindSentToKitchen
	// KindInProgress follows an advance whose new step is one step away from ready.
	KindInProgress
	// KindReady follows an advance whose new step is one step away from released.
	KindReady
)

// Display colors understood by the kitchen screens.
const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorGreen  = "green"
)

func (k NotificationKind) String() string {
	switch k {
	case KindSentToKitchen:
		return "sent_to_kitchen"
	case KindInProgress:
		return "in_progress"
	case KindReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Notification is a user-facing message about an order: what to display, for how
// long and in which color.
type Notification struct {
	orderID         kernel.UUID
	kind            NotificationKind
	message         string
	displayDuration time.Duration
	color           string
}

func newSentToKitchenNotification(orderID kernel.UUID) Notification {
	return Notification{
		orderID:         orderID,
		kind:            KindSentToKitchen,
		message:         fmt.Sprintf("Order %s sent to Kitchen", orderID),
		displayDuration: 15 * time.Second,
		color:           ColorRed,
	}
}

func newInProgressNotification(orderID kernel.UUID) Notification {
	return Notification{
		orderID:         orderID,
		kind:            KindInProgress,
		message:         fmt.Sprintf("Order %s in Progress", orderID),
		displayDuration: 5 * time.Second,
		color:           ColorOrange,
	}
}

func newReadyNotification(orderID kernel.UUID) Notification {
	return Notification{
		orderID:         orderID,
		kind:            KindReady,
		message:         fmt.Sprintf("Order %s Ready", orderID),
		displayDuration: 10 * time.Second,
		color:           ColorGreen,
	}
}

// notificationAfterAdvance classifies an advance by the successor of the step that
// was just entered.
func notificationAfterAdvance(orderID kernel.UUID, entered Step) *Notification {
	var n Notification
	switch {
	case entered.IsNext(Ready):
		n = newInProgressNotification(orderID)
	case entered.IsNext(Released):
		n = newReadyNotification(orderID)
	default:
		return nil
	}
	return &n
}

func (n Notification) OrderID() kernel.UUID {
	return n.orderID
}

func (n Notification) Kind() NotificationKind {
	return n.kind
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) DisplayDuration() time.Duration {
	return n.displayDuration
}

// DisplayDurationMs is the display duration in whole milliseconds, as sent to sinks.
func (n Notification) DisplayDurationMs() int64 {
	return n.displayDuration.Milliseconds()
}

func (n Notification) Color() string {
	return n.color
}
