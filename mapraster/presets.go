package mapraster

import (
	"fmt"

	"github.com/benoitkugler/genmap/colormap"
	"github.com/benoitkugler/genmap/palettes"
)

// Field describes how a named geophysical field is drawn.
type Field struct {
	Colormap string
	LogScale bool
	Label    string
	Vectors  bool // the field comes with a vector layer drawn on top
}

// Presets lists the builtin field configurations, keyed by the
// short names used in product files.
var Presets = map[string]Field{
	"sst":     {Colormap: palettes.SST, Label: "Sea Surface Temperature (°C)"},
	"chl":     {Colormap: palettes.Rainbow, LogScale: true, Label: "Chlorophyll-a (mg m⁻³)"},
	"sla":     {Colormap: palettes.Diverging, Label: "Sea Level Anomaly (cm)"},
	"wind":    {Colormap: palettes.Rainbow, Label: "Wind speed (m s⁻¹)", Vectors: true},
	"current": {Colormap: palettes.Rainbow, Label: "Current speed (m s⁻¹)", Vectors: true},
}

// DrawField fills the grid using the preset registered under name,
// mapping data values from [vmin, vmax]. The preset label is reused
// by the next Colorbar call.
func (f *Figure) DrawField(name string, lat, lon []float64, data [][]float64, vmin, vmax float64) error {
	preset, ok := Presets[name]
	if !ok {
		return fmt.Errorf("mapraster: unknown field preset %q", name)
	}
	var norm colormap.Normalizer
	if preset.LogScale {
		if vmin <= 0 {
			return fmt.Errorf("mapraster: field %s uses a log scale, vmin %g must be positive", name, vmin)
		}
		norm = colormap.Log{Vmin: vmin, Vmax: vmax}
	} else {
		norm = colormap.Linear{Vmin: vmin, Vmax: vmax}
	}
	if err := f.FillGrid(lat, lon, data, preset.Colormap, norm); err != nil {
		return err
	}
	f.lastLabel = preset.Label
	return nil
}
