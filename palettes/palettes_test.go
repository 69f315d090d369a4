package palettes

import (
	"testing"

	"github.com/benoitkugler/genmap/colormap"
)

func TestRegisterBuiltins(t *testing.T) {
	var reg colormap.Registry
	// loading must be idempotent
	if err := RegisterBuiltins(&reg); err != nil {
		t.Fatal(err)
	}
	if err := RegisterBuiltins(&reg); err != nil {
		t.Fatal(err)
	}

	for _, name := range [...]string{Rainbow, SST, Diverging} {
		cm, ok := reg.Lookup(name)
		if !ok {
			t.Fatalf("builtin %s is not registered", name)
		}
		stops := cm.Stops
		if stops[0].Pos != 0 || stops[len(stops)-1].Pos != 1 {
			t.Fatalf("%s: positions span [%g, %g], want [0, 1]",
				name, stops[0].Pos, stops[len(stops)-1].Pos)
		}
		for i, s := range stops {
			if i > 0 && s.Pos < stops[i-1].Pos {
				t.Fatalf("%s: positions decrease at stop %d", name, i)
			}
			for _, c := range [3]float64{s.R, s.G, s.B} {
				if c < 0 || c > 1 {
					t.Fatalf("%s: stop %d channel %g out of [0,1]", name, i, c)
				}
			}
		}
	}
}

func TestBuiltinsOverwrite(t *testing.T) {
	var reg colormap.Registry
	placeholder := colormap.Map{Stops: []colormap.Stop{
		{Pos: 0, R: 1}, {Pos: 1, R: 1},
	}}
	if err := reg.Register(SST, placeholder, false); err != nil {
		t.Fatal(err)
	}
	if err := RegisterBuiltins(&reg); err != nil {
		t.Fatal(err)
	}
	cm, _ := reg.Lookup(SST)
	if len(cm.Stops) == len(placeholder.Stops) {
		t.Fatal("RegisterBuiltins did not overwrite the existing registration")
	}
}
