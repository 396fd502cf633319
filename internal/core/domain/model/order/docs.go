// Package order provides the Order aggregate of the kitchen workflow and the rules
// that keep its line items consistent.
//
// The package includes:
//   - Order: the aggregate root owning its line items and the current step
//   - OrderItem: a (product, quantity) line owned by exactly one order
//   - Step: the fixed, strictly linear preparation sequence
//     new -> queued -> in_progress -> ready -> released
//   - ItemSubmission: a raw, string-typed line item as submitted by staff
//   - Notification: the message a step change asks the notifier to display
//
// Key business rules:
//   - An order is created at step new and only ever moves one step forward,
//     except for TransferToKitchen which forces queued from any step
//   - Advancing past released is rejected with ErrInvalidTransition
//   - Items with quantity 0 or without a product never persist; they are pruned
//     by RemoveInvalidItems (attached state) and CleanSubmissions (submitted
//     strings), two checks that run at different points of an update
//   - Step changes return their Notification instead of sending it, so delivery
//     failures cannot affect the transition
package order
