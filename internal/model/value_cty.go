package model

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/daniel5151/analog-literals/internal/literal"
)

// Result pairs a shape with the outcome of its parse. Exactly one of Value
// and Err is set.
type Result struct {
	Shape *Shape
	Value literal.Value
	Err   *literal.Error
}

// CtyValue converts a parsed value into a cty object for structured output.
// Derived quantities are included so consumers never recompute them.
func CtyValue(v literal.Value) cty.Value {
	switch v := v.(type) {
	case literal.Line:
		return cty.ObjectVal(map[string]cty.Value{
			"kind":   cty.StringVal("line"),
			"length": cty.NumberIntVal(int64(v.Length)),
		})
	case literal.Rectangle:
		return cty.ObjectVal(map[string]cty.Value{
			"kind":   cty.StringVal("rectangle"),
			"width":  cty.NumberIntVal(int64(v.Width)),
			"height": cty.NumberIntVal(int64(v.Height)),
			"area":   cty.NumberIntVal(int64(v.Area())),
		})
	case literal.Cuboid:
		return cty.ObjectVal(map[string]cty.Value{
			"kind":   cty.StringVal("cuboid"),
			"width":  cty.NumberIntVal(int64(v.Width)),
			"height": cty.NumberIntVal(int64(v.Height)),
			"length": cty.NumberIntVal(int64(v.Length)),
			"volume": cty.NumberIntVal(int64(v.Volume())),
		})
	}
	panic("model: unknown literal value type")
}

// MarshalResultsJSON renders the successful results as one JSON object keyed
// by shape name.
func MarshalResultsJSON(results []*Result) ([]byte, error) {
	vals := make(map[string]cty.Value, len(results))
	for _, r := range results {
		if r.Value == nil {
			continue
		}
		vals[r.Shape.Name] = CtyValue(r.Value)
	}
	if len(vals) == 0 {
		return []byte("{}"), nil
	}
	obj := cty.ObjectVal(vals)
	return ctyjson.Marshal(obj, obj.Type())
}
