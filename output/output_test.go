package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arjunmahishi/tsfold/types"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Compact: true, Output: &buf})

	err := w.Write(types.EnclosingResult{File: "a.go", Offset: 3})
	require.NoError(t, err)
	require.Equal(t, `{"file":"a.go","offset":3,"region":null}`+"\n", buf.String())

	buf.Reset()
	w = New(Config{Output: &buf})
	require.NoError(t, w.Write(map[string]string{"k": "<v>"}))
	require.Equal(t, "{\n  \"k\": \"<v>\"\n}\n", buf.String())
}

func TestWriteLanguages(t *testing.T) {
	var buf bytes.Buffer
	w := New(Config{Output: &buf})

	w.WriteLanguages([]types.LanguageInfo{
		{Name: "go", FunctionNodeTypes: []string{"function_declaration", "func_literal"}, BodyField: "body", Extensions: []string{".go"}, Active: true},
		{Name: "rust", FunctionNodeTypes: []string{"function_item"}, BodyField: "body", Extensions: []string{".rs"}},
	})

	out := buf.String()
	require.True(t, strings.Contains(out, "function_declaration, func_literal"), out)
	require.True(t, strings.Contains(out, "function_item"), out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var goRow, rustRow string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "function_declaration"):
			goRow = l
		case strings.Contains(l, "function_item"):
			rustRow = l
		}
	}
	require.Contains(t, goRow, "yes")
	require.Contains(t, rustRow, "no")
}
