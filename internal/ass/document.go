package ass

// DefaultStyleFormat is the canonical V4+ style column layout used when a
// document is built from scratch rather than parsed.
var DefaultStyleFormat = []string{
	"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour",
	"OutlineColour", "BackColour", "Bold", "Italic", "Underline", "StrikeOut",
	"ScaleX", "ScaleY", "Spacing", "Angle", "BorderStyle", "Outline", "Shadow",
	"Alignment", "MarginL", "MarginR", "MarginV", "Encoding",
}

// DefaultEventFormat is the canonical event column layout.
var DefaultEventFormat = []string{
	"Layer", "Start", "End", "Style", "Name",
	"MarginL", "MarginR", "MarginV", "Effect", "Text",
}

// Document is one parsed ASS subtitle file: script metadata, the style table,
// and the event table. Field orders are per-document state taken from the
// file's Format lines; they define the column layout for rendering and are
// not assumed to match the canonical defaults.
//
// Documents are single-owner. Nothing here is safe for concurrent mutation,
// and nothing needs to be: the pipeline processes documents sequentially.
type Document struct {
	ScriptInfo  *ScriptInfo
	StyleFormat []string
	EventFormat []string
	Styles      []*Style
	Events      []*Event
}

// NewDocument returns an empty document seeded with the canonical field
// orders. Parsed documents get their field orders from the input instead.
func NewDocument() *Document {
	return &Document{
		ScriptInfo:  NewScriptInfo(),
		StyleFormat: append([]string(nil), DefaultStyleFormat...),
		EventFormat: append([]string(nil), DefaultEventFormat...),
	}
}

// ScriptInfo is the ordered key/value block from the [Script Info] section.
// Keys keep their first-insertion position; setting an existing key updates
// the value in place, matching how the section is edited by authoring tools.
type ScriptInfo struct {
	keys   []string
	values map[string]string
}

// NewScriptInfo returns an empty script info block.
func NewScriptInfo() *ScriptInfo {
	return &ScriptInfo{values: make(map[string]string)}
}

// Set stores value under key, preserving the key's original position when it
// already exists.
func (si *ScriptInfo) Set(key, value string) {
	if _, ok := si.values[key]; !ok {
		si.keys = append(si.keys, key)
	}
	si.values[key] = value
}

// Get returns the value for key and whether it was present.
func (si *ScriptInfo) Get(key string) (string, bool) {
	value, ok := si.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (si *ScriptInfo) Keys() []string {
	return append([]string(nil), si.keys...)
}

// Len returns the number of stored keys.
func (si *ScriptInfo) Len() int {
	return len(si.keys)
}

// Clone returns an independent copy of the block.
func (si *ScriptInfo) Clone() *ScriptInfo {
	out := &ScriptInfo{
		keys:   append([]string(nil), si.keys...),
		values: make(map[string]string, len(si.values)),
	}
	for k, v := range si.values {
		out.values[k] = v
	}
	return out
}
