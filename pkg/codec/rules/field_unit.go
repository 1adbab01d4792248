package rules

import "github.com/codec-tools/codec-validator/pkg/codec"

// FLD012 requires a unit to be declared together with its BACnet unit id and
// unit type.
type FLD012 struct {
	*codec.BaseRule
}

// NewFLD012 creates the FLD-012 rule.
func NewFLD012() *FLD012 {
	return &FLD012{
		BaseRule: codec.NewBaseRule("FLD-012", "unit declaration", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule.
func (r *FLD012) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	if !e.Provided(codec.FieldUnit) {
		return codec.Pass()
	}
	if _, ok := e.Get(codec.FieldBacnetUnitTypeID); !ok {
		return codec.Fail(e, "存在 unit 但缺少 bacnet_unit_type_id")
	}
	if !e.Provided(codec.FieldBacnetUnitType) {
		return codec.Fail(e, "存在 unit 但缺少 bacnet_unit_type")
	}
	return codec.Pass()
}
