package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var grayRamp = Map{Name: "gray", Stops: []Stop{
	{Pos: 0, R: 0, G: 0, B: 0},
	{Pos: 1, R: 1, G: 1, B: 1},
}}

func TestAt(t *testing.T) {
	for _, tc := range []struct {
		t    float64
		want float64
	}{
		{-0.5, 0}, // clamped
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1}, // clamped
	} {
		r, g, b := grayRamp.At(tc.t)
		if r != tc.want || g != tc.want || b != tc.want {
			t.Errorf("At(%g) = (%g, %g, %g), want %g", tc.t, r, g, b, tc.want)
		}
	}
}

func TestDiscontinuity(t *testing.T) {
	m := Map{Stops: []Stop{
		{Pos: 0, R: 0},
		{Pos: 0.5, R: 1},
		{Pos: 0.5, R: 0},
		{Pos: 1, R: 1},
	}}
	// the later stop defines the right side of the jump
	if r, _, _ := m.At(0.5); r != 0 {
		t.Fatalf("At(0.5) red = %g, want 0", r)
	}
	if r, _, _ := m.At(0.499999); r < 0.99 {
		t.Fatalf("left limit red = %g, want close to 1", r)
	}
}

func TestTable(t *testing.T) {
	table := grayRamp.Table(3)
	want := []color.RGBA{
		{0, 0, 0, 255},
		{128, 128, 128, 255},
		{255, 255, 255, 255},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
	if got := grayRamp.Table(0); got != nil {
		t.Fatal("Table(0) should be empty")
	}
}

func TestNormalizers(t *testing.T) {
	lin := Linear{Vmin: 10, Vmax: 20}
	for _, tc := range []struct{ v, want float64 }{
		{5, 0}, {10, 0}, {15, 0.5}, {20, 1}, {25, 1},
	} {
		if got := lin.Normalize(tc.v); got != tc.want {
			t.Errorf("Linear(%g) = %g, want %g", tc.v, got, tc.want)
		}
	}

	lg := Log{Vmin: 0.1, Vmax: 10}
	if got := lg.Normalize(1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Log(1) = %g, want 0.5", got)
	}
	if got := lg.Normalize(-3); got != 0 {
		t.Errorf("Log of a negative value = %g, want 0", got)
	}
	if got := lg.Normalize(1e6); got != 1 {
		t.Errorf("Log above Vmax = %g, want 1", got)
	}
}

func TestRegistry(t *testing.T) {
	var reg Registry

	if err := reg.Register("", grayRamp, false); err == nil {
		t.Fatal("empty name must be rejected")
	}
	if err := reg.Register("empty", Map{}, false); err == nil {
		t.Fatal("gradient without stops must be rejected")
	}

	if err := reg.Register("gray", grayRamp, false); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("gray", grayRamp, false); err == nil {
		t.Fatal("duplicate registration without overwrite must fail")
	}

	inverted := Map{Stops: []Stop{
		{Pos: 0, R: 1, G: 1, B: 1},
		{Pos: 1, R: 0, G: 0, B: 0},
	}}
	if err := reg.Register("gray", inverted, true); err != nil {
		t.Fatal(err)
	}
	got, ok := reg.Lookup("gray")
	if !ok {
		t.Fatal("gray disappeared from the registry")
	}
	// the overwriting gradient must take effect
	if r, _, _ := got.At(0); r != 1 {
		t.Fatalf("lookup returned the old gradient (red at 0 = %g)", r)
	}
	if len(reg.Names()) != 1 {
		t.Fatalf("unexpected names %v", reg.Names())
	}
}
