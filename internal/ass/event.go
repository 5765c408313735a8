package ass

import (
	"fmt"
	"strconv"
)

// Event wraps one timed line from the [Events] section. Type is the line's
// label in the source text ("Dialogue", "Comment", or whatever the file
// carried) and is not one of the fields.
type Event struct {
	Type   string
	Fields map[string]string
}

// NewEvent wraps the given field map under the given line type.
func NewEvent(eventType string, fields map[string]string) *Event {
	return &Event{Type: eventType, Fields: fields}
}

// Clone returns an event with an independent copy of the field map and the
// same line type.
func (e *Event) Clone() *Event {
	fields := make(map[string]string, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = v
	}
	return &Event{Type: e.Type, Fields: fields}
}

func (e *Event) intField(key string) (int, error) {
	value, err := strconv.Atoi(e.Fields[key])
	if err != nil {
		return 0, fmt.Errorf("%w: event field %s=%q: not an integer", ErrCodec, key, e.Fields[key])
	}
	return value, nil
}

func (e *Event) Layer() (int, error) { return e.intField("Layer") }
func (e *Event) SetLayer(value int)  { e.Fields["Layer"] = strconv.Itoa(value) }

// Start returns the event start in seconds.
func (e *Event) Start() (float64, error) {
	value, err := ParseTime(e.Fields["Start"])
	if err != nil {
		return 0, fmt.Errorf("event Start: %w", err)
	}
	return value, nil
}

// SetStart stores the start time, re-encoded at centisecond precision.
func (e *Event) SetStart(seconds float64) { e.Fields["Start"] = FormatTime(seconds) }

// End returns the event end in seconds.
func (e *Event) End() (float64, error) {
	value, err := ParseTime(e.Fields["End"])
	if err != nil {
		return 0, fmt.Errorf("event End: %w", err)
	}
	return value, nil
}

// SetEnd stores the end time, re-encoded at centisecond precision.
func (e *Event) SetEnd(seconds float64) { e.Fields["End"] = FormatTime(seconds) }

// StyleName returns the name of the style the event renders with.
func (e *Event) StyleName() string { return e.Fields["Style"] }

// SetStyleName sets the referenced style name.
func (e *Event) SetStyleName(value string) { e.Fields["Style"] = value }

// Name returns the event's Name (actor) field. The pipeline overloads it as
// the language tag, and the literal "ref" marks a cross-reference event.
func (e *Event) Name() string { return e.Fields["Name"] }

// SetName sets the Name field.
func (e *Event) SetName(value string) { e.Fields["Name"] = value }

func (e *Event) MarginL() (int, error) { return e.intField("MarginL") }
func (e *Event) SetMarginL(value int)  { e.Fields["MarginL"] = strconv.Itoa(value) }

func (e *Event) MarginR() (int, error) { return e.intField("MarginR") }
func (e *Event) SetMarginR(value int)  { e.Fields["MarginR"] = strconv.Itoa(value) }

func (e *Event) MarginV() (int, error) { return e.intField("MarginV") }
func (e *Event) SetMarginV(value int)  { e.Fields["MarginV"] = strconv.Itoa(value) }

// Effect returns the Effect field. Cross-reference events overload it as
// "document!key"; chapter comments leave it empty.
func (e *Event) Effect() string { return e.Fields["Effect"] }

// SetEffect sets the Effect field.
func (e *Event) SetEffect(value string) { e.Fields["Effect"] = value }

// Text returns the event text.
func (e *Event) Text() string { return e.Fields["Text"] }

// SetText sets the event text.
func (e *Event) SetText(value string) { e.Fields["Text"] = value }
