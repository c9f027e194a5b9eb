// Package stations maps station names to the dense vertex ids 0..V-1 used by
// the engine, and back. Ids are assigned in first-seen order.
package stations

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for index lookups.
var (
	ErrUnknownStation = errors.New("stations: unknown station")
	ErrUnknownID      = errors.New("stations: unknown id")
	ErrEmptyName      = errors.New("stations: empty station name")
)

// Index is a bidirectional name↔id mapping. Both directions are O(1).
// The zero value is ready to use. Not safe for concurrent mutation.
type Index struct {
	ids   map[string]int
	names []string
}

// New returns an empty Index sized for about n stations.
func New(n int) *Index {
	return &Index{ids: make(map[string]int, n), names: make([]string, 0, n)}
}

// Add returns the id of name, assigning the next free id on first sight.
// Surrounding whitespace is trimmed.
func (x *Index) Add(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if id, ok := x.ids[name]; ok {
		return id, nil
	}
	if x.ids == nil {
		x.ids = make(map[string]int)
	}
	id := len(x.names)
	x.ids[name] = id
	x.names = append(x.names, name)

	return id, nil
}

// ID looks up a station by name.
func (x *Index) ID(name string) (int, error) {
	id, ok := x.ids[strings.TrimSpace(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}

	return id, nil
}

// Name looks up a station by id.
func (x *Index) Name(id int) (string, error) {
	if id < 0 || id >= len(x.names) {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return x.names[id], nil
}

// Names translates a vertex path into station names.
func (x *Index) Names(path []int) ([]string, error) {
	out := make([]string, len(path))
	for i, id := range path {
		name, err := x.Name(id)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}

	return out, nil
}

// Len returns the number of stations.
func (x *Index) Len() int { return len(x.names) }

// All returns the station names in id order.
func (x *Index) All() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)

	return out
}
