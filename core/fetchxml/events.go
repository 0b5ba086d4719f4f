package fetchxml

import (
	"time"

	"github.com/asaidimu/go-events"
)

// BuilderEventType identifies the kind of mutation a BuilderEvent describes.
type BuilderEventType string

// Event types emitted by the builder, one per mutating operation.
const (
	EventSelect    BuilderEventType = "query:select"
	EventFilter    BuilderEventType = "query:filter"
	EventLink      BuilderEventType = "query:link"
	EventOrder     BuilderEventType = "query:order"
	EventAggregate BuilderEventType = "query:aggregate"
	EventGroupBy   BuilderEventType = "query:groupby"
	EventLoad      BuilderEventType = "query:load"
)

// BuilderEvent describes a single mutation applied to a builder's document.
// Delivery order across event types is a property of the bus; the Sequence
// field records the builder's own mutation order regardless.
type BuilderEvent struct {
	Type      BuilderEventType `json:"type"`              // The kind of mutation.
	Sequence  int64            `json:"sequence"`          // Position in the builder's emitted mutation order, from 1.
	Timestamp int64            `json:"timestamp"`         // When the mutation occurred (Unix milliseconds).
	Entity    string           `json:"entity"`            // Name of the builder's current entity.
	Context   map[string]any   `json:"context,omitempty"` // Operation-specific details.
}

// NewEventBus creates an event bus suitable for passing to WithEventBus.
func NewEventBus() (*events.TypedEventBus[BuilderEvent], error) {
	return events.NewTypedEventBus[BuilderEvent](events.DefaultConfig())
}

// emit publishes an event on the attached bus, if any.
func (b *Builder) emit(eventType BuilderEventType, context map[string]any) {
	if b.bus == nil {
		return
	}
	b.seq++
	b.bus.Emit(string(eventType), BuilderEvent{
		Type:      eventType,
		Sequence:  b.seq,
		Timestamp: time.Now().UnixMilli(),
		Entity:    b.EntityName(),
		Context:   context,
	})
}
