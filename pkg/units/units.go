package units

import "sort"

//go:generate go run ../../cmd/codec-unitgen -input ../../docs/units.yaml -output units_gen.go

// CustomUnitTypeID is the unit type ID reserved for custom units.
const CustomUnitTypeID = 95

// Definition describes one standard unit.
type Definition struct {
	UnitTypeID int    `json:"unit_type_id" yaml:"id"`
	Unit       string `json:"unit" yaml:"unit"`
	UnitType   string `json:"unit_type" yaml:"unit_type"`
}

// IsCustom reports whether the definition is the custom unit slot.
func (d Definition) IsCustom() bool {
	return d.UnitTypeID == CustomUnitTypeID
}

var byID = func() map[int]Definition {
	m := make(map[int]Definition, len(definitions))
	for _, d := range definitions {
		m[d.UnitTypeID] = d
	}
	return m
}()

// Lookup returns the definition for a unit type ID.
func Lookup(id int) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// All returns a copy of the unit table ordered by unit type ID.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	sort.Slice(out, func(i, j int) bool { return out[i].UnitTypeID < out[j].UnitTypeID })
	return out
}

// Count returns the number of standard units.
func Count() int {
	return len(definitions)
}

// Categories returns the distinct unit categories in sorted order.
func Categories() []string {
	set := make(map[string]struct{})
	for _, d := range definitions {
		set[d.UnitType] = struct{}{}
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
