// Package formatter converts arbitrary values into their log text form.
//
// Render is total: every value produces a string and no input can make
// it fail. Values with a native text form — strings, byte slices,
// errors, Stringers, and the basic numeric kinds — are rendered
// verbatim through strconv Append-style calls. A *string renders as the
// pointed-to content rather than an address. Everything else (plain
// structs, maps, channels, functions, other pointers) falls back to the
// opaque "<type> at 0x<hex>" representation, which identifies the value
// by static type name and an address-like token without ever reading
// its bytes.
//
// Rendering goes through a pooled bytes.Buffer; buffers larger than
// 64 KiB are not returned to the pool to prevent a single large value
// from permanently inflating memory usage.
package formatter
