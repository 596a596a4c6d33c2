package priorityadapter

import (
	"fmt"
	"time"
)

// Field names used when an Event is turned into log context.
const (
	FieldMessage      = "message"
	FieldPriority     = "priority"
	FieldPriorityName = "priorityName"
	FieldTimestamp    = "timestamp"
)

// Event is a single record produced by the legacy facility.
type Event struct {
	Priority     Priority
	Message      string
	PriorityName string
	Timestamp    time.Time
	// Extra holds facility-specific fields. Keys that collide with the
	// named fields above are overwritten by them; a "message" key is dropped.
	Extra map[string]any
}

// Fields returns every field of e except the message. Empty PriorityName and
// zero Timestamp are omitted.
func (e Event) Fields() map[string]any {
	out := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		if k == FieldMessage {
			continue
		}
		out[k] = v
	}
	out[FieldPriority] = e.Priority
	if e.PriorityName != "" {
		out[FieldPriorityName] = e.PriorityName
	}
	if !e.Timestamp.IsZero() {
		out[FieldTimestamp] = e.Timestamp
	}
	return out
}

// buildFields converts alternating key/value pairs into a map. Keys are
// stringified and a trailing key without a value maps to nil.
func buildFields(keyvals []any) map[string]any {
	if len(keyvals) == 0 {
		return nil
	}

	out := make(map[string]any, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		var val any
		if i+1 < len(keyvals) {
			val = keyvals[i+1]
		}
		out[key] = val
	}
	return out
}
