// Package types defines shared data types for tsfold.
package types

// Position represents a location in a source file. Line and column are
// 1-based; the column counts bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range represents a span in a source file.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// BodyRegion is a function body region as reported to users.
type BodyRegion struct {
	Start uint32 `json:"start"` // byte offset, inclusive
	End   uint32 `json:"end"`   // byte offset, exclusive
	Range Range  `json:"range"`
}

// FileRegions holds every body region found in one file.
type FileRegions struct {
	File     string       `json:"file"`
	Language string       `json:"language"`
	Regions  []BodyRegion `json:"regions"`
}

// EnclosingResult is the answer to a cursor query. Region is nil when the
// cursor is not inside a function body.
type EnclosingResult struct {
	File   string      `json:"file"`
	Offset uint32      `json:"offset"`
	Region *BodyRegion `json:"region"`
}

// LanguageInfo describes one configured language.
type LanguageInfo struct {
	Name              string   `json:"name"`
	FunctionNodeTypes []string `json:"function_node_types"`
	BodyField         string   `json:"body_field"`
	Extensions        []string `json:"extensions,omitempty"`
	Active            bool     `json:"active"`
}

// FileJob represents a file to be processed.
type FileJob struct {
	AbsPath     string
	DisplayPath string
	Language    string
}
