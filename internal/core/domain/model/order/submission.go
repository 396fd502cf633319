package order

import (
	"strings"

	"kitchen/internal/core/domain/model/kernel"
)

// ItemSubmission is a line item exactly as staff submitted it: every field is the
// raw form string. Numbers are read the lenient way a form is read: leading
// whitespace is skipped, the leading run of digits is used and anything that does
// not start with a number reads as 0. So "2", " 2" and "2 pcs" are all 2 while
// "", "abc" and "-" are 0.
type ItemSubmission struct {
	// ID of a persisted line, empty for a new line
	ID        string
	ProductID string
	Quantity  string
}

// SubmittedProductID returns the product id the row reads as; 0 means none.
func (s ItemSubmission) SubmittedProductID() int64 {
	return leadingInt(s.ProductID)
}

// SubmittedQuantity returns the quantity the row reads as, clamped to [0, MaxQuantity].
func (s ItemSubmission) SubmittedQuantity() int {
	q := leadingInt(s.Quantity)
	if q > MaxQuantity {
		return 0
	}
	return int(q)
}

// IsBlank reports whether the submitted row would create an invalid item: its
// quantity or its product id reads as 0.
func (s ItemSubmission) IsBlank() bool {
	return s.SubmittedQuantity() <= 0 || s.SubmittedProductID() <= 0
}

// IsZombie reports whether the row targets a persisted item that staff zeroed: it
// carries an id, its quantity reads as 0 and a product is still selected.
func (s ItemSubmission) IsZombie() bool {
	return strings.TrimSpace(s.ID) != "" &&
		s.SubmittedQuantity() <= 0 &&
		strings.TrimSpace(s.ProductID) != ""
}

// CleanSubmissions drops blank rows so they never reach an order. It returns a new
// slice and is idempotent.
func CleanSubmissions(submissions []ItemSubmission) []ItemSubmission {
	cleaned := make([]ItemSubmission, 0, len(submissions))
	for _, s := range submissions {
		if s.IsBlank() {
			continue
		}
		cleaned = append(cleaned, s)
	}
	return cleaned
}

// ZombieItemIDs returns the ids of the persisted rows that the submission zeroed.
// Rows whose id does not parse are ignored.
func ZombieItemIDs(submissions []ItemSubmission) []kernel.UUID {
	var ids []kernel.UUID
	for _, s := range submissions {
		if !s.IsZombie() {
			continue
		}
		id, err := kernel.UUIDFromString(strings.TrimSpace(s.ID))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// leadingInt reads the optional sign and leading digits of s; negative values and
// values that do not fit int64 read as 0.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int64(r - '0')
		if n > (1<<63-1-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	if negative {
		return 0
	}
	return n
}
