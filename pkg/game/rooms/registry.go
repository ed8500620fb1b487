package rooms

import (
	"fmt"
	"sort"
)

// Factory builds a fresh, unplaced room
type Factory func() Room

var factories = map[string]Factory{}

func init() {
	Register("entrance", func() Room { return NewEntrance() })
	Register("key", func() Room { return NewKeyRoom() })
}

// Register makes a room variant available to New under name.
// Registering the same name twice panics.
func Register(name string, factory Factory) {
	if factory == nil {
		panic("rooms: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("rooms: Register called twice for variant " + name)
	}
	factories[name] = factory
}

// New builds an unplaced room of the named variant
func New(name string) (Room, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
	}
	return factory(), nil
}

// Variants returns the registered variant names, sorted
func Variants() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
