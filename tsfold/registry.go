package tsfold

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps language identifiers to descriptors. It is safe for
// concurrent use; updates replace whole entries.
type Registry struct {
	mu    sync.RWMutex
	langs map[string]*LanguageDescriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{langs: make(map[string]*LanguageDescriptor)}
}

// DefaultRegistry creates a registry seeded with the built-in languages.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for id, d := range builtinDescriptors() {
		r.langs[id] = d
	}
	return r
}

func builtinDescriptors() map[string]*LanguageDescriptor {
	return map[string]*LanguageDescriptor{
		"c": MustDescriptor([]string{"function_definition"}, "body"),
		"go": MustDescriptor([]string{
			"function_declaration",
			"method_declaration",
			"func_literal",
		}, "body"),
		"javascript": MustDescriptor([]string{
			"function_declaration",
			"function_expression",
			"generator_function",
			"generator_function_declaration",
			"arrow_function",
			"method_definition",
		}, "body"),
		"python": MustDescriptor([]string{"function_definition"}, "body"),
		"rust":   MustDescriptor([]string{"function_item"}, "body"),
	}
}

// Register adds or replaces the descriptor for a language.
func (r *Registry) Register(id string, d *LanguageDescriptor) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty language id", ErrInvalidDescriptor)
	}
	if d == nil {
		return fmt.Errorf("%w: nil descriptor for %s", ErrInvalidDescriptor, id)
	}
	// Descriptors built by hand (not through NewDescriptor) are re-validated.
	if len(d.functionNodeTypes) == 0 || d.bodyField == "" {
		return fmt.Errorf("%w: %s", ErrInvalidDescriptor, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.langs[id] = d
	return nil
}

// RegisterTypes validates the raw values and registers the result.
func (r *Registry) RegisterTypes(id string, functionNodeTypes []string, bodyField string) error {
	d, err := NewDescriptor(functionNodeTypes, bodyField)
	if err != nil {
		return fmt.Errorf("register %s: %w", id, err)
	}
	return r.Register(id, d)
}

// Lookup returns the descriptor for a language. The boolean is false when
// the language is not configured, which callers treat as "feature inactive".
func (r *Registry) Lookup(id string) (*LanguageDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.langs[id]
	return d, ok
}

// Languages returns the configured language ids in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.langs))
	for name := range r.langs {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Default is the process-wide registry used by the package-level helpers.
var Default = DefaultRegistry()

// Register adds or replaces a descriptor in the Default registry.
func Register(id string, d *LanguageDescriptor) error {
	return Default.Register(id, d)
}

// Lookup returns a descriptor from the Default registry.
func Lookup(id string) (*LanguageDescriptor, bool) {
	return Default.Lookup(id)
}
