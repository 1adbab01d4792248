// Package codec provides parsing and validation for codec definition files
// (codec.json).
//
// A codec definition declares the data points a device exposes towards the
// cloud and the BACnet gateway:
//
//	{
//	  "version": "1.0",
//	  "object": [
//	    {
//	      "id": "temperature",
//	      "access_mode": "R",
//	      "data_type": "NUMBER",
//	      "value_type": "FLOAT",
//	      "bacnet_type": "analog_input_object",
//	      "unit": "°C",
//	      "bacnet_unit_type_id": 62,
//	      "bacnet_unit_type": "temperature"
//	    }
//	  ]
//	}
//
// # Validation
//
// Entries are checked by rules held in a [RuleRegistry]. Field rules look at
// one field of one entry; relationship rules combine fields of the same entry
// with the static rule tables or look across all entries of the document.
// The rule set lives in the rules sub-package.
//
// Every failing rule produces a [Result]. The [Validator] collects them into a
// [Report] with one line per failure, formatted as "<id>: <message>".
//
// # Sample checking
//
// [Validator.CheckSample] verifies that every leaf key of a decoded runtime
// payload is declared by an entry id. Numeric array indices in sample keys can
// match ids that use the "_item" wildcard segment.
package codec
