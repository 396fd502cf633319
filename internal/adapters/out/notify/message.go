// Package notify fans order notifications out to the delivery sinks and defines
// the payload they share.
package notify

import (
	"kitchen/internal/core/domain/model/order"
)

// Message is the wire form of an order notification, sent to kafka and to the
// kitchen screens.
type Message struct {
	OrderID           string `json:"order_id"`
	Kind              string `json:"kind"`
	Message           string `json:"message"`
	DisplayDurationMs int64  `json:"display_duration_ms"`
	Color             string `json:"color"`
}

// NewMessage converts a notification into its wire form.
func NewMessage(n order.Notification) Message {
	return Message{
		OrderID:           n.OrderID().String(),
		Kind:              n.Kind().String(),
		Message:           n.Message(),
		DisplayDurationMs: n.DisplayDurationMs(),
		Color:             n.Color(),
	}
}
