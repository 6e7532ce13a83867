package fold

import (
	"github.com/arjunmahishi/tsfold/config"
	"github.com/arjunmahishi/tsfold/tsfold"
)

// RegionsOptions configures the Regions function.
type RegionsOptions struct {
	// Language forces a language (e.g., "rust").
	// If empty, the language is detected from each file's extension.
	Language string

	// Path is the root directory to scan for files.
	// If empty, current directory is used.
	Path string

	// File is a single file to analyze.
	// If set, Path is ignored.
	File string

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// MaxBytes skips files larger than this size.
	// If 0, a 2 MiB limit is used.
	MaxBytes int64

	// Registry supplies the language descriptors.
	// If nil, tsfold.Default is used.
	Registry *tsfold.Registry

	// Activation restricts which languages are processed.
	// If nil, every language in Registry is active.
	Activation *config.Activation
}

// EnclosingOptions configures the Enclosing function.
type EnclosingOptions struct {
	// Language forces a language; detected from the extension if empty.
	Language string

	// File is the file to analyze (required).
	File string

	// Offset is the byte offset of the cursor. It is used when Line is 0.
	Offset uint32

	// Line and Column give the cursor as a 1-based line and byte column.
	Line   int
	Column int

	// Registry supplies the language descriptors.
	// If nil, tsfold.Default is used.
	Registry *tsfold.Registry
}
