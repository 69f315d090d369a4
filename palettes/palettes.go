// Package palettes ships the builtin genmap color tables and their
// registration.
// Nothing is registered implicitly: host applications call
// RegisterBuiltins once at startup, on the registry they own.
package palettes

import (
	"embed"
	"fmt"

	"github.com/benoitkugler/genmap/colormap"
	"github.com/benoitkugler/genmap/cpt"
)

//go:embed *.cpt
var builtins embed.FS

// Names of the builtin colormaps.
const (
	// general purpose multi-hue gradient
	Rainbow = "genmap_rainbow"
	// sea surface temperature
	SST = "genmap_sst"
	// diverging blue-white-red gradient, for anomaly fields
	Diverging = "genmap_rdbu"
)

var builtinFiles = map[string]string{
	Rainbow:   "rainbow.cpt",
	SST:       "sst.cpt",
	Diverging: "rdbu.cpt",
}

// RegisterBuiltins parses the embedded palette tables and registers
// them in reg. Existing registrations under the same names are
// overwritten, so calling it more than once is safe.
func RegisterBuiltins(reg *colormap.Registry) error {
	for name, file := range builtinFiles {
		f, err := builtins.Open(file)
		if err != nil {
			return fmt.Errorf("palettes: opening %s: %w", file, err)
		}
		pal, err := cpt.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("palettes: parsing %s: %w", file, err)
		}
		if err := reg.Register(name, pal.Colormap(name), true); err != nil {
			return fmt.Errorf("palettes: registering %s: %w", name, err)
		}
	}
	return nil
}
