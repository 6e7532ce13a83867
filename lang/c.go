package lang

import "github.com/smacker/go-tree-sitter/c"

func init() {
	Register(&simple{name: "c", exts: []string{".c", ".h"}, lang: c.GetLanguage})
}
