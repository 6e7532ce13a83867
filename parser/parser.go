// Package parser provides tree-sitter parsing for tsfold.
package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/arjunmahishi/tsfold/lang"
	"github.com/arjunmahishi/tsfold/tsfold"
	sitter "github.com/smacker/go-tree-sitter"
)

// Parser wraps a tree-sitter parser for a specific grammar.
// A Parser is not safe for concurrent use.
type Parser struct {
	parser  *sitter.Parser
	grammar lang.Grammar
}

// New creates a new Parser for the given grammar.
func New(grammar lang.Grammar) *Parser {
	p := sitter.NewParser()
	p.SetLanguage(grammar.TreeSitterLang())
	return &Parser{
		parser:  p,
		grammar: grammar,
	}
}

// ForLanguage creates a Parser for a registered grammar name.
func ForLanguage(name string) (*Parser, error) {
	g := lang.Get(name)
	if g == nil {
		return nil, fmt.Errorf("%s grammar not registered", name)
	}
	return New(g), nil
}

// Grammar returns the grammar this parser was created for.
func (p *Parser) Grammar() lang.Grammar {
	return p.grammar
}

// Parse parses source code and returns the syntax tree.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &Tree{tree: tree, Source: source}, nil
}

// ParseFile reads and parses a file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return p.Parse(ctx, source)
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// Tree is a parsed source snapshot.
type Tree struct {
	tree   *sitter.Tree
	lines  *tsfold.LineIndex
	Source []byte
}

// Root returns the root node in the form the region engine consumes.
func (t *Tree) Root() tsfold.Node {
	return tsfold.FromSitter(t.tree.RootNode())
}

// Lines returns the line index of the parsed source.
func (t *Tree) Lines() *tsfold.LineIndex {
	if t.lines == nil {
		t.lines = tsfold.NewLineIndex(t.Source)
	}
	return t.lines
}

// Text returns the source text covered by r.
func (t *Tree) Text(r tsfold.Region) string {
	if int(r.End) > len(t.Source) || r.Start > r.End {
		return ""
	}
	return string(t.Source[r.Start:r.End])
}

// Close releases the syntax tree.
func (t *Tree) Close() {
	t.tree.Close()
}
