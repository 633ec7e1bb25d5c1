// Package schema defines the raw HCL decode targets for shape manifest
// files. These structs mirror the on-disk syntax exactly; translation into
// the format-agnostic model lives in the model package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Shape represents a `shape` block from a user's manifest file. The art
// attribute is kept as an undecoded expression so the loader can retain its
// source range for diagnostics before evaluating it.
type Shape struct {
	Name string         `hcl:"name,label"`
	Art  hcl.Expression `hcl:"art"`
}

// ShapeFile represents the top-level structure of a shape manifest file.
type ShapeFile struct {
	Shapes []*Shape `hcl:"shape,block"`
}
