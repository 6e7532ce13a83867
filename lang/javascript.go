package lang

import "github.com/smacker/go-tree-sitter/javascript"

func init() {
	Register(&simple{
		name: "javascript",
		exts: []string{".js", ".mjs", ".cjs", ".jsx"},
		lang: javascript.GetLanguage,
	})
}
