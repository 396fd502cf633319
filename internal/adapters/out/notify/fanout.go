package notify

import (
	"context"
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// DeliveryRecorder counts delivery outcomes per sink.
type DeliveryRecorder interface {
	RecordNotification(kind, sink string, err error)
}

// Sink is a named notification destination.
type Sink struct {
	Name     string
	Notifier ports.Notifier
}

// Fanout delivers every notification to all of its sinks. A failing sink does not
// stop delivery to the others.
type Fanout struct {
	sinks    []Sink
	recorder DeliveryRecorder
}

var _ ports.Notifier = (*Fanout)(nil)

// NewFanout creates a fanout over the given sinks. The recorder may be nil.
func NewFanout(recorder DeliveryRecorder, sinks ...Sink) *Fanout {
	active := make([]Sink, 0, len(sinks))
	for _, sink := range sinks {
		if sink.Notifier != nil {
			active = append(active, sink)
		}
	}
	return &Fanout{sinks: active, recorder: recorder}
}

// Notify delivers the notification and returns the joined sink errors, if any.
func (f *Fanout) Notify(ctx context.Context, notification order.Notification) error {
	var errs []error
	for _, sink := range f.sinks {
		err := sink.Notifier.Notify(ctx, notification)
		if f.recorder != nil {
			f.recorder.RecordNotification(notification.Kind().String(), sink.Name, err)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Sinks returns the names of the active sinks.
func (f *Fanout) Sinks() []string {
	names := make([]string, 0, len(f.sinks))
	for _, sink := range f.sinks {
		names = append(names, sink.Name)
	}
	return names
}
