package colormap

import (
	"errors"
	"fmt"
)

var errEmptyName = errors.New("colormap: empty registration name")

// Registry stores colormaps by name; the zero value is ready to use.
// It is not safe for concurrent use: register colormaps once during
// program initialization, before rendering starts.
type Registry struct {
	maps map[string]Map
}

// Register adds m under the given name. When overwrite is false,
// registering an existing name is an error; with overwrite the new
// gradient replaces the previous one, so that initialization may
// safely run more than once.
func (r *Registry) Register(name string, m Map, overwrite bool) error {
	if name == "" {
		return errEmptyName
	}
	if len(m.Stops) == 0 {
		return fmt.Errorf("colormap: registering %q: gradient has no stops", name)
	}
	if !overwrite {
		if _, dup := r.maps[name]; dup {
			return fmt.Errorf("colormap: %q is already registered", name)
		}
	}
	if r.maps == nil {
		r.maps = make(map[string]Map)
	}
	m.Name = name
	r.maps[name] = m
	return nil
}

// Lookup returns the colormap registered under name.
func (r *Registry) Lookup(name string) (Map, bool) {
	m, ok := r.maps[name]
	return m, ok
}

// Names returns the registered names, in unspecified order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.maps))
	for name := range r.maps {
		out = append(out, name)
	}
	return out
}
