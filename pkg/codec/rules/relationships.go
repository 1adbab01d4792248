package rules

import (
	"math"
	"slices"
	"strings"

	"github.com/codec-tools/codec-validator/pkg/codec"
	"github.com/codec-tools/codec-validator/pkg/units"
)

// fieldText renders a field for messages. Missing fields render as "null".
func fieldText(e *codec.Entry, field string) string {
	v, _ := e.Get(field)
	return codec.FormatValue(v)
}

// oneOf reports whether the string field is in the allowed set.
func oneOf(e *codec.Entry, field string, allowed []string) bool {
	s, ok := e.String(field)
	return ok && slices.Contains(allowed, s)
}

// REL001 checks that bacnet_type is legal for the entry's access_mode.
type REL001 struct {
	*codec.BaseRule
}

// NewREL001 creates the REL-001 rule.
func NewREL001() *REL001 {
	return &REL001{
		BaseRule: codec.NewBaseRule("REL-001", "access_mode/bacnet_type combination", codec.CategoryRelationship, codec.SeverityError),
	}
}

// Check implements codec.Rule. An unknown access_mode always fails, even for
// STRUCT points.
func (r *REL001) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	mode, _ := e.String(codec.FieldAccessMode)
	allowed, ok := accessModeObjectTypes[mode]
	if !ok {
		return codec.Fail(e, "无效的 access_mode: "+fieldText(e, codec.FieldAccessMode))
	}

	if vt, _ := e.String(codec.FieldValueType); vt == structValueType {
		return codec.Pass()
	}

	if !oneOf(e, codec.FieldBacnetType, allowed) {
		return codec.Failf(e, "access_mode: %s 不允许使用 bacnet_type: %s", mode, fieldText(e, codec.FieldBacnetType))
	}
	return codec.Pass()
}

// tableRule checks one field against a table keyed by data_type. Data types
// missing from the table are unconstrained.
type tableRule struct {
	*codec.BaseRule
	field string
	table map[string][]string
}

func (r *tableRule) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	dataType, _ := e.String(codec.FieldDataType)
	allowed, ok := r.table[dataType]
	if !ok {
		return codec.Pass()
	}
	if !oneOf(e, r.field, allowed) {
		return codec.Failf(e, "data_type: %s 不允许使用 %s: %s, 允许的类型: %s",
			dataType, r.field, fieldText(e, r.field), strings.Join(allowed, ", "))
	}
	return codec.Pass()
}

// NewREL002 checks that bacnet_type is legal for the entry's data_type.
func NewREL002() codec.Rule {
	return &tableRule{
		BaseRule: codec.NewBaseRule("REL-002", "data_type/bacnet_type combination", codec.CategoryRelationship, codec.SeverityError),
		field:    codec.FieldBacnetType,
		table:    dataTypeObjectTypes,
	}
}

// NewREL003 checks that value_type is legal for the entry's data_type.
func NewREL003() codec.Rule {
	return &tableRule{
		BaseRule: codec.NewBaseRule("REL-003", "data_type/value_type combination", codec.CategoryRelationship, codec.SeverityError),
		field:    codec.FieldValueType,
		table:    dataTypeValueTypes,
	}
}

// REL004 checks unit and bacnet_unit_type against the unit table entry
// selected by bacnet_unit_type_id.
type REL004 struct {
	*codec.BaseRule
}

// NewREL004 creates the REL-004 rule.
func NewREL004() *REL004 {
	return &REL004{
		BaseRule: codec.NewBaseRule("REL-004", "unit consistency", codec.CategoryRelationship, codec.SeverityError),
	}
}

// Check implements codec.Rule. Both unit and bacnet_unit_type must equal the
// table values exactly, including for the custom unit id.
func (r *REL004) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	raw, ok := e.Get(codec.FieldBacnetUnitTypeID)
	if !ok {
		return codec.Pass()
	}

	var (
		def   units.Definition
		found bool
	)
	if id, isInt := codec.AsInteger(raw); isInt && id >= 0 && id <= math.MaxInt32 {
		def, found = units.Lookup(int(id))
	}
	if !found {
		return codec.Fail(e, "无效的 bacnet_unit_type_id: "+codec.FormatValue(raw))
	}

	unit, _ := e.Get(codec.FieldUnit)
	if unit != def.Unit {
		return codec.Fail(e, "无效的 unit: "+fieldText(e, codec.FieldUnit))
	}

	unitType, _ := e.Get(codec.FieldBacnetUnitType)
	if unitType != def.UnitType {
		return codec.Fail(e, "无效的 unit_type: "+fieldText(e, codec.FieldBacnetUnitType))
	}
	return codec.Pass()
}

// REL005 checks that every referenced id is declared by some entry. An entry
// may reference itself.
type REL005 struct {
	*codec.BaseRule
}

// NewREL005 creates the REL-005 rule.
func NewREL005() *REL005 {
	return &REL005{
		BaseRule: codec.NewBaseRule("REL-005", "reference exists", codec.CategoryRelationship, codec.SeverityError),
	}
}

// Check implements codec.Rule. Malformed reference fields are left to FLD-016.
func (r *REL005) Check(e *codec.Entry, doc *codec.Document) codec.Result {
	raw, _ := e.Get(codec.FieldReference)
	refs, ok := raw.([]any)
	if !ok || doc == nil {
		return codec.Pass()
	}
	for _, ref := range refs {
		id, isString := ref.(string)
		if !isString || id == "" || !doc.HasID(id) {
			return codec.Fail(e, "引用的字段不存在: "+codec.FormatValue(ref))
		}
	}
	return codec.Pass()
}
