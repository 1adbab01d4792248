package codec

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
)

// Field names of a codec entry.
const (
	FieldID               = "id"
	FieldDescription      = "description"
	FieldName             = "name"
	FieldAccessMode       = "access_mode"
	FieldDataType         = "data_type"
	FieldValueType        = "value_type"
	FieldBacnetType       = "bacnet_type"
	FieldUnit             = "unit"
	FieldBacnetUnitTypeID = "bacnet_unit_type_id"
	FieldBacnetUnitType   = "bacnet_unit_type"
	FieldReference        = "reference"
	FieldValue            = "value"
	FieldValues           = "values"
	FieldMaxLength        = "max_length"
)

// UnknownID is reported for entries without a usable id.
const UnknownID = "unknown"

// Document is a parsed codec definition.
type Document struct {
	Version string
	Entries []*Entry

	indexOnce sync.Once
	idCount   map[string]int
}

// NewDocument creates a document from entries. Entry indices are assigned in order.
func NewDocument(version string, entries ...*Entry) *Document {
	for i, e := range entries {
		e.Index = i
	}
	return &Document{Version: version, Entries: entries}
}

// IDCount returns how many entries declare the given id.
func (d *Document) IDCount(id string) int {
	d.buildIndex()
	return d.idCount[id]
}

// Occurrences returns how many entries share the id of e. Entries without
// an id report zero.
func (d *Document) Occurrences(e *Entry) int {
	key, ok := e.idKey()
	if !ok {
		return 0
	}
	return d.IDCount(key)
}

// HasID returns true if at least one entry declares the given id.
func (d *Document) HasID(id string) bool {
	return d.IDCount(id) > 0
}

// IDs returns the set of declared ids.
func (d *Document) IDs() map[string]struct{} {
	d.buildIndex()
	ids := make(map[string]struct{}, len(d.idCount))
	for id := range d.idCount {
		ids[id] = struct{}{}
	}
	return ids
}

// Entry returns the first entry with the given id, or nil.
func (d *Document) Entry(id string) *Entry {
	for _, e := range d.Entries {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

func (d *Document) buildIndex() {
	d.indexOnce.Do(func() {
		d.idCount = make(map[string]int, len(d.Entries))
		for _, e := range d.Entries {
			if key, ok := e.idKey(); ok {
				d.idCount[key]++
			}
		}
	})
}

// Entry is one declared data point. Field values are kept as decoded from
// JSON (string, json.Number, bool, []any, map[string]any) so that rules can
// report type errors instead of failing to decode.
type Entry struct {
	// Index is the position of the entry in the object array.
	Index int

	fields map[string]any
}

// NewEntry creates an entry from decoded field values.
func NewEntry(fields map[string]any) *Entry {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Entry{fields: fields}
}

// Get returns a field value. Absent fields and JSON null both report false.
func (e *Entry) Get(name string) (any, bool) {
	v, ok := e.fields[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Provided reports whether a field carries a value. Absent fields, null and
// the empty string count as not provided.
func (e *Entry) Provided(name string) bool {
	v, ok := e.Get(name)
	if !ok {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

// String returns a field as string. It reports false when the field is not
// provided or is not a string.
func (e *Entry) String(name string) (string, bool) {
	v, ok := e.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// ID returns the entry id, or "" if the id is missing or not a string.
func (e *Entry) ID() string {
	id, _ := e.String(FieldID)
	return id
}

// DisplayID returns the id used as prefix in report lines.
func (e *Entry) DisplayID() string {
	if !e.Provided(FieldID) {
		return UnknownID
	}
	v, _ := e.Get(FieldID)
	return FormatValue(v)
}

// Fields returns a shallow copy of the raw field map.
func (e *Entry) Fields() map[string]any {
	out := make(map[string]any, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the entry with its original fields.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields)
}

// idKey returns the comparison key used for uniqueness checks. Non-string ids
// take part in the check through their formatted value.
func (e *Entry) idKey() (string, bool) {
	if !e.Provided(FieldID) {
		return "", false
	}
	v, _ := e.Get(FieldID)
	if s, ok := v.(string); ok {
		return s, true
	}
	return TypeName(v) + ":" + FormatValue(v), true
}

// TypeName returns the JSON type name of a decoded value.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FormatValue renders a decoded value for messages.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any, map[string]any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

// AsInteger converts a decoded number to int64. It reports false for
// non-numbers and numbers with a fractional part.
func AsInteger(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(x)
	case float32:
		return floatToInt(float64(x))
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
