package lang

import "github.com/smacker/go-tree-sitter/python"

func init() {
	Register(&simple{name: "python", exts: []string{".py", ".pyi"}, lang: python.GetLanguage})
}
