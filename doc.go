// Package dynval provides a dynamically-typed value abstraction with a
// lossless JSON codec and a pluggable text formatter.
//
// A Value holds exactly one of a fixed set of alternatives: invalid,
// undefined, boolean, 32-bit integer, float, date, string, ordered list,
// insertion-ordered map, or an extensible Custom payload.
//
// # Quick Start
//
//	v, err := dynval.FromJSONString(`{"a":1,"b":[true,null,"x"]}`)
//	if err != nil { ... }
//	v.ToMap().Set("c", dynval.Float(2.5))
//	fmt.Println(v.ToJSON(true)) // pretty JSON
//	fmt.Println(v.Format())     // indented human-readable text
//
// # Serialization Paths
//
// There are two deliberately distinct output paths:
//
//   - ToJSON builds a compact intermediate representation and delegates
//     string escaping and pretty-printing to the external JSON printer.
//     Dates encode as raw integer epoch seconds; Custom payloads inject raw
//     pre-formatted fragments.
//   - JSONFormatter streams JSON directly to an io.Writer with its own
//     escaping; dates render as formatted time strings and Custom payloads
//     as quoted strings. TextFormatter renders indented human-readable text.
//
// # Decoding Notes
//
// JSON null decodes to the invalid (zero) Value. A JSON number equal to its
// 32-bit integer truncation decodes as KindInt, so "2.0" becomes Int(2).
// This is an intentional simplification. Decoding recurses per nesting
// level with no explicit depth guard.
//
// # Persistence
//
// Save and Load write a Value as a self-describing blob: the header records
// the codec name and compression algorithm, so blobs remain readable when
// defaults change.
//
// Values are not safe for concurrent mutation; callers synchronize
// externally.
package dynval
