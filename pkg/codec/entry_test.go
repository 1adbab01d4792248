package codec

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestEntryProvided(t *testing.T) {
	e := NewEntry(map[string]any{
		"id":    "x",
		"empty": "",
		"null":  nil,
		"zero":  json.Number("0"),
		"false": false,
		"list":  []any{},
	})

	assert.True(t, e.Provided("id"))
	assert.False(t, e.Provided("empty"))
	assert.False(t, e.Provided("null"))
	assert.False(t, e.Provided("missing"))
	assert.True(t, e.Provided("zero"))
	assert.True(t, e.Provided("false"))
	assert.True(t, e.Provided("list"))

	_, ok := e.String("zero")
	assert.False(t, ok)
}

func TestEntryDisplayID(t *testing.T) {
	assert.Equal(t, "a.b", NewEntry(map[string]any{"id": "a.b"}).DisplayID())
	assert.Equal(t, UnknownID, NewEntry(map[string]any{"id": ""}).DisplayID())
	assert.Equal(t, UnknownID, NewEntry(nil).DisplayID())
	assert.Equal(t, "42", NewEntry(map[string]any{"id": json.Number("42")}).DisplayID())
}

func TestDocumentIndex(t *testing.T) {
	doc := NewDocument("1",
		NewEntry(map[string]any{"id": "a"}),
		NewEntry(map[string]any{"id": "a"}),
		NewEntry(map[string]any{"id": "b"}),
		NewEntry(map[string]any{"id": json.Number("7")}),
		NewEntry(map[string]any{"id": "7"}),
		NewEntry(map[string]any{}),
	)

	assert.Equal(t, 2, doc.IDCount("a"))
	assert.Equal(t, 1, doc.IDCount("b"))
	assert.True(t, doc.HasID("b"))
	assert.False(t, doc.HasID("c"))

	// A numeric id does not collide with the string of the same digits.
	assert.Equal(t, 1, doc.Occurrences(doc.Entries[3]))
	assert.Equal(t, 1, doc.Occurrences(doc.Entries[4]))
	assert.Equal(t, 0, doc.Occurrences(doc.Entries[5]))

	assert.Same(t, doc.Entries[0], doc.Entry("a"))
	assert.Nil(t, doc.Entry("missing"))
	assert.Contains(t, doc.IDs(), "b")
}

func TestTypeNameAndFormatValue(t *testing.T) {
	tests := []struct {
		value    any
		typeName string
		text     string
	}{
		{nil, "null", "null"},
		{"s", "string", "s"},
		{true, "boolean", "true"},
		{json.Number("1.5"), "number", "1.5"},
		{float64(3), "number", "3"},
		{[]any{"a", json.Number("1")}, "array", `["a",1]`},
		{map[string]any{"k": "v"}, "object", `{"k":"v"}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.typeName, TypeName(tt.value))
		assert.Equal(t, tt.text, FormatValue(tt.value))
	}
}

func TestAsInteger(t *testing.T) {
	tests := []struct {
		value any
		want  int64
		ok    bool
	}{
		{json.Number("10"), 10, true},
		{json.Number("-3"), -3, true},
		{json.Number("2.0"), 2, true},
		{json.Number("2.5"), 0, false},
		{json.Number("1e2"), 100, true},
		{float64(7), 7, true},
		{7, 7, true},
		{uint64(1 << 63), 0, false},
		{"7", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := AsInteger(tt.value)
		assert.Equal(t, tt.ok, ok, "%v", tt.value)
		assert.Equal(t, tt.want, got, "%v", tt.value)
	}
}
