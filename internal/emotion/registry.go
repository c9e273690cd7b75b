package emotion

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Registry maps lower-cased names to personalities.
//
// Each registry is an independent mapping: NewRegistry seeds a fresh one with
// the built-in personalities, and EmotionalOptimizer constructs its own
// unless one is supplied with WithRegistry. There is no hidden process-wide
// registry.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	personalities map[string]Personality
}

// NewRegistry creates a registry pre-populated with the built-in
// personalities.
func NewRegistry() *Registry {
	r := &Registry{personalities: make(map[string]Personality)}
	for name, p := range builtins() {
		r.personalities[name] = p
	}
	return r
}

// Register adds a personality under a name. Names are compared
// case-insensitively.
//
// Registering a name that already exists fails with
// ErrDuplicatePersonality unless overwrite is true.
func (r *Registry) Register(name string, p Personality, overwrite bool) error {
	if p == nil {
		return fmt.Errorf("emotion: cannot register nil personality %q", name)
	}
	key := normalize(name)
	if _, exists := r.personalities[key]; exists && !overwrite {
		return fmt.Errorf("%w: %q", ErrDuplicatePersonality, name)
	}
	r.personalities[key] = p
	return nil
}

// Resolve looks up a personality by name, case-insensitively.
//
// An unknown name fails with ErrUnknownPersonality; the error message lists
// all registered names.
func (r *Registry) Resolve(name string) (Personality, error) {
	p, ok := r.personalities[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownPersonality, name, strings.Join(r.sortedNames(), ", "))
	}
	return p, nil
}

// Names returns the registered names in alphabetical order.
//
// The sequence is computed lazily and can be ranged over multiple times.
func (r *Registry) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.sortedNames() {
			if !yield(name) {
				return
			}
		}
	}
}

// normalize maps a personality name to its registry key.
func normalize(name string) string {
	return strings.ToLower(name)
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.personalities))
	for name := range r.personalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
