package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// Go implements the Grammar interface for Go source code.
type Go struct{}

func init() {
	Register(&Go{})
}

func (g *Go) Name() string {
	return "go"
}

func (g *Go) Extensions() []string {
	return []string{".go"}
}

func (g *Go) TreeSitterLang() *sitter.Language {
	return golang.GetLanguage()
}
