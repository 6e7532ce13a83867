// Package output provides output formatting for tsfold.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/arjunmahishi/tsfold/types"
	"github.com/olekukonko/tablewriter"
)

// Writer handles structured output.
type Writer struct {
	out     io.Writer
	encoder *json.Encoder
	compact bool
}

// Config holds output configuration.
type Config struct {
	Compact bool
	Output  io.Writer
}

// New creates a new output Writer.
func New(cfg Config) *Writer {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	enc := json.NewEncoder(cfg.Output)
	enc.SetEscapeHTML(false)
	if !cfg.Compact {
		enc.SetIndent("", "  ")
	}

	return &Writer{
		out:     cfg.Output,
		encoder: enc,
		compact: cfg.Compact,
	}
}

// Write outputs a value as JSON.
func (w *Writer) Write(v any) error {
	return w.encoder.Encode(v)
}

// WriteLanguages renders the language list as a text table.
func (w *Writer) WriteLanguages(infos []types.LanguageInfo) {
	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"Language", "Function node types", "Body field", "Extensions", "Active"})
	table.SetAutoWrapText(false)
	table.SetBorder(!w.compact)

	for _, info := range infos {
		active := "no"
		if info.Active {
			active = "yes"
		}
		table.Append([]string{
			info.Name,
			strings.Join(info.FunctionNodeTypes, ", "),
			info.BodyField,
			strings.Join(info.Extensions, " "),
			active,
		})
	}

	table.Render()
}

// WriteError writes an error message to stderr.
func WriteError(err error) {
	enc := json.NewEncoder(os.Stderr)
	enc.Encode(map[string]any{
		"error": err.Error(),
	})
}

// WriteWarning writes a non-fatal message to stderr.
func WriteWarning(msg string) {
	enc := json.NewEncoder(os.Stderr)
	enc.Encode(map[string]any{
		"warning": msg,
	})
}
