package lang

import "github.com/smacker/go-tree-sitter/rust"

func init() {
	Register(&simple{name: "rust", exts: []string{".rs"}, lang: rust.GetLanguage})
}
