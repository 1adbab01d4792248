// Package units exposes the standard BACnet engineering unit table used by
// codec definitions.
//
// Each definition maps a bacnet_unit_type_id to the display unit symbol and
// the unit category that a codec entry must declare in its unit and
// bacnet_unit_type fields. The table is generated from docs/units.yaml by
// cmd/codec-unitgen and is read-only for the lifetime of the process.
//
// Unit type ID 95 (no-units) is the custom unit slot: a codec entry using it
// may carry any unit symbol.
package units
