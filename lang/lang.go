// Package lang registers the tree-sitter grammars tsfold can parse.
package lang

import (
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Grammar defines a parseable language.
type Grammar interface {
	// Name returns the language identifier (e.g., "go", "python").
	// It is the same key used by the descriptor registry.
	Name() string

	// Extensions returns file extensions for this language (e.g., [".go"]).
	Extensions() []string

	// TreeSitterLang returns the tree-sitter language grammar.
	TreeSitterLang() *sitter.Language
}

// registry holds all registered grammars.
var registry = make(map[string]Grammar)

// Register adds a grammar to the registry.
// This is typically called from init() functions in grammar files.
func Register(g Grammar) {
	registry[g.Name()] = g
}

// Get returns a grammar by name, or nil if not found.
func Get(name string) Grammar {
	return registry[name]
}

// List returns all registered grammar names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByExtension finds a grammar by file extension (with the leading dot).
func ByExtension(ext string) Grammar {
	ext = strings.ToLower(ext)
	for _, g := range registry {
		for _, e := range g.Extensions() {
			if e == ext {
				return g
			}
		}
	}
	return nil
}

// ByPath finds a grammar from a file name or path.
func ByPath(path string) Grammar {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil
	}
	return ByExtension(ext)
}

// simple is a Grammar backed by plain values.
type simple struct {
	name string
	exts []string
	lang func() *sitter.Language
}

func (s *simple) Name() string                     { return s.name }
func (s *simple) Extensions() []string             { return s.exts }
func (s *simple) TreeSitterLang() *sitter.Language { return s.lang() }
