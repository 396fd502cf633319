package order

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an order cannot move to the next step,
// either because its step is not part of the sequence or because it is released.
var ErrInvalidTransition = errors.New("cannot advance an order with an unrecognized or terminal step")

// Step is the position of an order in the kitchen preparation sequence.
//
//	New ──> Queued ──> InProgress ──> Ready ──> Released
//
// The sequence is strictly linear: no branching, no cycles. Released is terminal.
// Steps are persisted and exposed by their literal names ("new", "queued",
// "in_progress", "ready", "released").
type Step int

const (
	// Unknown is the zero value and never a valid step.
	Unknown Step = iota
	New
	Queued
	InProgress
	Ready
	Released
)

// sequence is the ordered preparation sequence; a step's successor is the next element.
var sequence = []Step{New, Queued, InProgress, Ready, Released}

func getStepNames() map[Step]string {
	return map[Step]string{
		New:        "new",
		Queued:     "queued",
		InProgress: "in_progress",
		Ready:      "ready",
		Released:   "released",
	}
}

// Steps returns the preparation sequence in order.
func Steps() []Step {
	out := make([]Step, len(sequence))
	copy(out, sequence)
	return out
}

// QueueSteps returns the steps that have a kitchen queue view.
func QueueSteps() []Step {
	return []Step{Queued, InProgress, Ready, Released}
}

// ParseStep resolves a literal step name.
func ParseStep(name string) (Step, error) {
	for step, stepName := range getStepNames() {
		if stepName == name {
			return step, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"step is invalid",
		fmt.Errorf("%q is not a valid step", name),
	)
}

// Validate rejects Unknown and any value outside of the sequence.
func (s Step) Validate() error {
	if s.index() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the literal step name, or "unknown".
func (s Step) String() string {
	if name, ok := getStepNames()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the step has no successor.
func (s Step) IsTerminal() bool {
	return s == sequence[len(sequence)-1]
}

// Next returns the successor of the step.
//
// The successor is found by index lookup in the sequence, with an explicit bounds
// check: Released and steps outside of the sequence return an error wrapping both
// ErrInvalidTransition and errs.ErrValueIsInvalid.
func (s Step) Next() (Step, error) {
	i := s.index()
	if i < 0 || i+1 >= len(sequence) {
		return Unknown, fmt.Errorf("%w: %w", ErrInvalidTransition, errs.NewValueIsInvalidErrorWithCause(
			"step is invalid",
			fmt.Errorf("%s has no next step", s),
		))
	}
	return sequence[i+1], nil
}

// IsNext reports whether candidate immediately follows s. A step without a
// successor is followed by nothing.
func (s Step) IsNext(candidate Step) bool {
	next, err := s.Next()
	return err == nil && next == candidate
}

func (s Step) index() int {
	for i, step := range sequence {
		if step == s {
			return i
		}
	}
	return -1
}
