package literal

// extract maps a validated frame to its typed value. It is infallible by
// construction: every failure mode was exhausted by validation, and the
// derived quantities (area, volume) are plain products of the extracted
// dimensions.
func extract(f *frame) Value {
	switch f.kind {
	case KindLine:
		return Line{Length: f.fill}
	case KindRectangle:
		return Rectangle{Width: f.width, Height: f.height}
	case KindCuboid:
		return Cuboid{Width: f.topWidth, Height: f.height, Length: f.frontWidth}
	}
	panic("literal: extract called with an unclassified frame")
}
