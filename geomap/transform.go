package geomap

import "errors"

// Point is a 2D coordinate; whether it lives in data, display or
// figure-fraction space depends on context.
type Point struct {
	X, Y float64
}

// Transform maps points from one coordinate space to another.
type Transform interface {
	Apply(p Point) Point
}

// Rect is an axis-aligned rectangle given by two opposite corners.
// Width and height are signed: they are negative when the corners
// are not in lower-left, upper-right order.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// W returns the signed width X1 - X0.
func (r Rect) W() float64 { return r.X1 - r.X0 }

// H returns the signed height Y1 - Y0.
func (r Rect) H() float64 { return r.Y1 - r.Y0 }

// FigureRect maps the data-coordinate corners (p0, p1) through the
// data to display transform, then through the display to figure
// fraction transform. Corners are not reordered: swapping p0 and p1
// flips the sign of the resulting width and height.
func FigureRect(p0, p1 Point, dataToDisplay, displayToFigure Transform) Rect {
	q0 := displayToFigure.Apply(dataToDisplay.Apply(p0))
	q1 := displayToFigure.Apply(dataToDisplay.Apply(p1))
	return Rect{q0.X, q0.Y, q1.X, q1.Y}
}

// Affine is the 2D affine transform
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Apply implements Transform.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Mult returns the composition applying b first, then m.
func (m Affine) Mult(b Affine) Affine {
	return Affine{
		A: m.A*b.A + m.C*b.B,
		B: m.B*b.A + m.D*b.B,
		C: m.A*b.C + m.C*b.D,
		D: m.B*b.C + m.D*b.D,
		E: m.A*b.E + m.C*b.F + m.E,
		F: m.B*b.E + m.D*b.F + m.F,
	}
}

// Translate returns m with a translation applied before it.
func (m Affine) Translate(x, y float64) Affine {
	return m.Mult(Affine{1, 0, 0, 1, x, y})
}

// Scale returns m with a scaling applied before it.
func (m Affine) Scale(x, y float64) Affine {
	return m.Mult(Affine{x, 0, 0, y, 0, 0})
}

var errSingular = errors.New("geomap: transform is not invertible")

// Invert returns the inverse transform, or an error when m is
// singular.
func (m Affine) Invert() (Affine, error) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Affine{}, errSingular
	}
	return Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, nil
}
