// Package wire defines the line-oriented wire format spoken between the
// monitoring session and the external monitoring process.
//
// The format is a flat sequence of text lines describing a tree. Exactly
// four structural tokens exist: "[" and "]" delimit arrays, "{" and "}"
// delimit records. Everything else is a scalar field line. There are no
// field names and no nesting markers; field order and arity are fixed per
// record type, so encoder and decoder must agree on the schema by
// convention.
//
// # Grammar
//
//	Hardware-list    = "[" { Hardware-item } "]"
//	Hardware-item    = "{" identifier name hardwareType Hardware-list Sensor-list "}"
//	Sensor-list      = "[" { Sensor-item } "]"
//	Sensor-item      = "{" identifier name sensorType value Control-or-empty "}"
//	Control-or-empty = ( "{" identifier minValue maxValue "}" ) | empty-line
//	Update-list      = "[" { Update-item } "]"
//	Update-item      = "{" identifier value "}"
//
// Decoding walks the lines with a single forward-only Cursor, one line per
// read, no lookahead. Any structural violation, truncated input, or
// malformed number is a protocol desynchronization: the error wraps
// ErrDesync and the session that produced the lines must be considered
// unusable.
//
// The encoding direction is limited to scalars: QuoteString and
// FormatValue render identifiers and values safely for embedding in the
// command language of the transport. The scripts that produce the tree
// format live with the transport, not here.
package wire
