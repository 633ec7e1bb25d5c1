// Package literal implements the analog literal engine: it turns the raw
// text body of an ASCII-art literal into a typed geometric value (a line, a
// rectangle, or a cuboid), or into a single positioned validation error.
//
// The engine is a pure, synchronous, single-pass pipeline:
//
//	LoadGrid -> Classify -> validate -> extract
//
// Each invocation owns its intermediate structures outright, so callers may
// parse any number of literals concurrently without coordination. The engine
// performs no I/O and never produces a partial value: the first structural
// inconsistency found (scanning top to bottom, left to right) aborts the
// whole parse.
package literal
