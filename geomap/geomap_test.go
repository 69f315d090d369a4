package geomap

import (
	"errors"
	"math"
	"testing"
)

func TestAffine(t *testing.T) {
	m := Identity.Translate(3, 4).Scale(2, 5)
	p := m.Apply(Point{X: 1, Y: 1})
	if p.X != 5 || p.Y != 9 {
		t.Fatalf("Apply = %+v, want (5, 9)", p)
	}

	inv, err := m.Invert()
	if err != nil {
		t.Fatal(err)
	}
	q := inv.Apply(p)
	if math.Abs(q.X-1) > 1e-12 || math.Abs(q.Y-1) > 1e-12 {
		t.Fatalf("inverse round trip = %+v, want (1, 1)", q)
	}

	if _, err := (Affine{}).Invert(); err == nil {
		t.Fatal("singular transform must not be invertible")
	}
}

func TestFigureRect(t *testing.T) {
	dataToDisplay := Identity.Translate(100, 50).Scale(10, -10)
	figureToDisplay := Affine{A: 800, B: 0, C: 0, D: -600, E: 0, F: 600}
	displayToFigure, err := figureToDisplay.Invert()
	if err != nil {
		t.Fatal(err)
	}

	p0, p1 := Point{X: 1, Y: 2}, Point{X: 3, Y: 5}
	rect := FigureRect(p0, p1, dataToDisplay, displayToFigure)
	if rect.W() <= 0 || rect.H() <= 0 {
		t.Fatalf("expected a positive rect, got %+v", rect)
	}

	// swapping the corners flips the signs, without reordering
	swapped := FigureRect(p1, p0, dataToDisplay, displayToFigure)
	if swapped.W() != -rect.W() || swapped.H() != -rect.H() {
		t.Fatalf("swapped corners: got %+v, want sign-flipped %+v", swapped, rect)
	}
}

func TestGreatCircleKm(t *testing.T) {
	// one degree of longitude at the equator
	got := GreatCircleKm(0, 0, 0, 1)
	if math.Abs(got-111.19) > 0.2 {
		t.Fatalf("equator degree length = %g km, want about 111.19", got)
	}
	if d := GreatCircleKm(0, 1, 0, 0); math.Abs(d-got) > 1e-9 {
		t.Fatalf("distance is not symmetric: %g vs %g", d, got)
	}
}

func TestScaleBarResolve(t *testing.T) {
	extent := Extent{North: 10, South: 0, East: 10, West: 0}
	span, err := ScaleBar{LengthKm: 111, CenterX: 0.5, CenterY: 0.5}.Resolve(extent, nil)
	if err != nil {
		t.Fatal(err)
	}
	if center := (span.LonLeft + span.LonRight) / 2; math.Abs(center-5) > 1e-9 {
		t.Fatalf("span center = %g, want 5", center)
	}
	if span.Lat != 5 {
		t.Fatalf("bar latitude = %g, want 5", span.Lat)
	}
	wantWidth := 111.0 / GreatCircleKm(5, 0, 5, -1)
	if width := span.LonRight - span.LonLeft; math.Abs(width-wantWidth) > 1e-9 {
		t.Fatalf("span width = %g degrees, want %g", width, wantWidth)
	}
}

func TestScaleBarAtPole(t *testing.T) {
	extent := Extent{North: 90.5, South: 89.5, East: 10, West: 0}
	_, err := ScaleBar{LengthKm: 10, CenterX: 0.5, CenterY: 0.5}.Resolve(extent, nil)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DomainError at the pole, got %v", err)
	}
}

func TestScaleBarErrors(t *testing.T) {
	extent := Extent{North: 10, South: 0, East: 1, West: 0}

	_, err := ScaleBar{LengthKm: -5, CenterX: 0.5, CenterY: 0.5}.Resolve(extent, nil)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("negative length: expected a DomainError, got %v", err)
	}

	// a 1000 km bar cannot fit a one degree wide extent
	_, err = ScaleBar{LengthKm: 1000, CenterX: 0.5, CenterY: 0.5}.Resolve(extent, nil)
	if !errors.As(err, &derr) {
		t.Fatalf("oversized bar: expected a DomainError, got %v", err)
	}

	_, err = ScaleBar{LengthKm: 10, CenterX: 0.5, CenterY: 0.5}.
		Resolve(Extent{North: 0, South: 10, East: 1, West: 0}, nil)
	if err == nil {
		t.Fatal("inverted extent must be rejected")
	}
}
