// Package model defines stable boundary types and call-convention adapters
// over package bij256.
//
// The core returns (value, error). This package offers two thin adapters on
// top of it: Try* functions return a tagged Result carrying either the value
// or a CodedError, and Must* functions panic with the core *bij256.Error.
// The JSON-facing structs here are the only types intended for direct
// serialization by consumers.
package model
