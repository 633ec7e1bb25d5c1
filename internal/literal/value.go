package literal

import "fmt"

// Value is a fully validated geometric value extracted from an analog
// literal. Exactly three concrete types implement it: Line, Rectangle and
// Cuboid. Every dimension field is a strictly positive integer; a value with
// a zero or negative dimension is unrepresentable because validation rejects
// the literal before extraction runs.
type Value interface {
	fmt.Stringer
	sealed()
}

// Line is a 1-dimensional literal: a fill run bounded by matching
// terminators. Its value is the count of fill glyphs.
type Line struct {
	Length int
}

func (Line) sealed() {}

func (l Line) String() string {
	return fmt.Sprintf("line of length %d", l.Length)
}

// Rectangle is a 2-dimensional literal. Width counts the fill glyphs of the
// horizontal borders; Height counts every row, both borders included.
type Rectangle struct {
	Width  int
	Height int
}

func (Rectangle) sealed() {}

// Area returns width times height.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d rectangle (area %d)", r.Width, r.Height, r.Area())
}

// Cuboid is a 3-dimensional literal: a front face plus a top face drawn with
// two parallel diagonal runs. Width comes from the top border's fill run,
// Length from the front face's, and Height from the diagonal step count (1
// when the front face is a single border row).
type Cuboid struct {
	Width  int
	Height int
	Length int
}

func (Cuboid) sealed() {}

// Volume returns width times height times length.
func (c Cuboid) Volume() int {
	return c.Width * c.Height * c.Length
}

// Top returns the rectangle a viewer would see looking down at the cuboid.
func (c Cuboid) Top() Rectangle {
	return Rectangle{Width: c.Width, Height: c.Length}
}

// Side returns the rectangle a viewer would see from the cuboid's side.
func (c Cuboid) Side() Rectangle {
	return Rectangle{Width: c.Length, Height: c.Height}
}

// Front returns the cuboid's front face as a rectangle.
func (c Cuboid) Front() Rectangle {
	return Rectangle{Width: c.Width, Height: c.Height}
}

func (c Cuboid) String() string {
	return fmt.Sprintf("%dx%dx%d cuboid (volume %d)", c.Width, c.Height, c.Length, c.Volume())
}
