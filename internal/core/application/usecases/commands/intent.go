package commands

import "errors"

var (
	// ErrIntentIsRequired is returned when a submission sets none of the intent flags.
	ErrIntentIsRequired = errors.New("one of add_new_item, transfer_to_kitchen or delete_order is required")
	// ErrIntentIsAmbiguous is returned when add_new_item and transfer_to_kitchen are both set.
	ErrIntentIsAmbiguous = errors.New("add_new_item and transfer_to_kitchen cannot be combined")
	// ErrIntentIsUnknown is returned for an Intent value outside of the defined ones.
	ErrIntentIsUnknown = errors.New("intent is unknown")
)

// Intent is what a create or update submission asks for. Exactly one intent is
// carried by each command.
type Intent int

const (
	IntentUnknown Intent = iota
	// IntentAddItem saves the edits and keeps the order open for more items.
	IntentAddItem
	// IntentSubmitToKitchen saves the edits and queues the order.
	IntentSubmitToKitchen
	// IntentDelete destroys the order.
	IntentDelete
)

func (i Intent) String() string {
	switch i {
	case IntentAddItem:
		return "add_item"
	case IntentSubmitToKitchen:
		return "submit_to_kitchen"
	case IntentDelete:
		return "delete"
	default:
		return "unknown"
	}
}

func (i Intent) validate() error {
	switch i {
	case IntentAddItem, IntentSubmitToKitchen, IntentDelete:
		return nil
	default:
		return ErrIntentIsUnknown
	}
}

// IntentFlags are the three action flags of an order form.
type IntentFlags struct {
	AddNewItem        bool
	TransferToKitchen bool
	DeleteOrder       bool
}

// ResolveIntent turns the form flags into a single intent.
//
// Rules:
//   - exactly one flag: its intent
//   - delete_order with any other flag: IntentDelete, the order is gone either way
//   - add_new_item with transfer_to_kitchen: ErrIntentIsAmbiguous
//   - no flag: ErrIntentIsRequired
func ResolveIntent(flags IntentFlags) (Intent, error) {
	switch {
	case flags.DeleteOrder:
		return IntentDelete, nil
	case flags.AddNewItem && flags.TransferToKitchen:
		return IntentUnknown, ErrIntentIsAmbiguous
	case flags.AddNewItem:
		return IntentAddItem, nil
	case flags.TransferToKitchen:
		return IntentSubmitToKitchen, nil
	default:
		return IntentUnknown, ErrIntentIsRequired
	}
}
