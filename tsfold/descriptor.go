package tsfold

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidDescriptor is returned when a language descriptor has no
// function node types or no body field.
var ErrInvalidDescriptor = errors.New("invalid language descriptor")

// LanguageDescriptor describes what a function definition and its body look
// like in one grammar.
type LanguageDescriptor struct {
	functionNodeTypes []string
	types             map[string]struct{}
	bodyField         string
}

// NewDescriptor validates and builds a descriptor. Duplicate type names are
// dropped; the first occurrence keeps its position.
func NewDescriptor(functionNodeTypes []string, bodyField string) (*LanguageDescriptor, error) {
	if len(functionNodeTypes) == 0 {
		return nil, fmt.Errorf("%w: no function node types", ErrInvalidDescriptor)
	}
	if strings.TrimSpace(bodyField) == "" {
		return nil, fmt.Errorf("%w: empty body field", ErrInvalidDescriptor)
	}

	d := &LanguageDescriptor{
		types:     make(map[string]struct{}, len(functionNodeTypes)),
		bodyField: bodyField,
	}
	for _, t := range functionNodeTypes {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("%w: empty function node type", ErrInvalidDescriptor)
		}
		if _, ok := d.types[t]; ok {
			continue
		}
		d.types[t] = struct{}{}
		d.functionNodeTypes = append(d.functionNodeTypes, t)
	}

	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on error.
// It is meant for built-in tables.
func MustDescriptor(functionNodeTypes []string, bodyField string) *LanguageDescriptor {
	d, err := NewDescriptor(functionNodeTypes, bodyField)
	if err != nil {
		panic(err)
	}
	return d
}

// FunctionNodeTypes returns a copy of the configured function node types.
func (d *LanguageDescriptor) FunctionNodeTypes() []string {
	return slices.Clone(d.functionNodeTypes)
}

// BodyField returns the name of the field holding a function's body.
func (d *LanguageDescriptor) BodyField() string {
	return d.bodyField
}

// Matches reports whether typeName is exactly one of the function node types.
func (d *LanguageDescriptor) Matches(typeName string) bool {
	_, ok := d.types[typeName]
	return ok
}

func (d *LanguageDescriptor) matchNode(n Node) bool {
	return d.Matches(n.Type())
}
