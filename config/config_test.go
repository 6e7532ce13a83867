package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want *Config
	}{
		{
			name: "nil",
			src:  nil,
			want: &Config{},
		},
		{
			name: "single type as string",
			src: map[string]any{
				"languages": map[string]any{
					"zig": map[string]any{
						"function_node_types": "FnProto",
						"body_field":          "body",
					},
				},
			},
			want: &Config{Languages: map[string]LanguageSettings{
				"zig": {FunctionNodeTypes: []string{"FnProto"}, BodyField: "body"},
			}},
		},
		{
			name: "list of types and active list",
			src: map[string]any{
				"languages": map[string]any{
					"go": map[string]any{
						"function_node_types": []any{"function_declaration", "method_declaration"},
					},
				},
				"active": []any{"go", "rust"},
			},
			want: &Config{
				Languages: map[string]LanguageSettings{
					"go": {FunctionNodeTypes: []string{"function_declaration", "method_declaration"}},
				},
				Active: []string{"go", "rust"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	_, err := Decode(map[string]any{"languages": []any{"go"}})
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	reg := tsfold.DefaultRegistry()
	cfg := &Config{Languages: map[string]LanguageSettings{
		"go":  {FunctionNodeTypes: []string{"function_declaration"}},
		"zig": {FunctionNodeTypes: []string{"FnProto"}, BodyField: "body"},
	}}
	require.NoError(t, cfg.Apply(reg))

	d, ok := reg.Lookup("go")
	require.True(t, ok)
	require.Equal(t, []string{"function_declaration"}, d.FunctionNodeTypes())
	require.Equal(t, "body", d.BodyField(), "unset body field is inherited")

	d, ok = reg.Lookup("zig")
	require.True(t, ok)
	require.Equal(t, []string{"FnProto"}, d.FunctionNodeTypes())
}

func TestApplyInvalid(t *testing.T) {
	reg := tsfold.DefaultRegistry()
	cfg := &Config{Languages: map[string]LanguageSettings{
		"zig": {BodyField: "body"},
	}}

	err := cfg.Apply(reg)
	require.ErrorIs(t, err, tsfold.ErrInvalidDescriptor)
	_, ok := reg.Lookup("zig")
	require.False(t, ok)
}

func TestActivation(t *testing.T) {
	reg := tsfold.DefaultRegistry()

	act := (&Config{}).Activation(reg)
	require.Equal(t, reg.Languages(), act.Languages())

	act = (&Config{Active: []string{"rust"}}).Activation(reg)
	require.True(t, act.Active("rust"))
	require.False(t, act.Active("go"))

	act.Enable("go")
	act.Disable("rust")
	require.Equal(t, []string{"go"}, act.Languages())

	var zero Activation
	require.False(t, zero.Active("go"))
	zero.Enable("go")
	require.True(t, zero.Active("go"))
}

func TestValidate(t *testing.T) {
	reg := tsfold.DefaultRegistry()
	cfg := &Config{
		Languages: map[string]LanguageSettings{"zig": {FunctionNodeTypes: []string{"FnProto"}, BodyField: "body"}},
		Active:    []string{"go", "zig", "cobol"},
	}

	warnings := cfg.Validate(reg)
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "cobol")
	require.Contains(t, warnings[1], "zig")
	require.Contains(t, warnings[1], "grammar")

	cfg = &Config{
		Languages: map[string]LanguageSettings{"rust": {FunctionNodeTypes: []string{"function_item"}}},
		Active:    []string{"rust"},
	}
	require.Empty(t, cfg.Validate(reg))
}

func TestApplyLeavesRegistryOnError(t *testing.T) {
	reg := tsfold.DefaultRegistry()
	cfg := &Config{Languages: map[string]LanguageSettings{
		"c":   {FunctionNodeTypes: []string{"declaration"}},
		"zig": {BodyField: "body"},
	}}

	err := cfg.Apply(reg)
	require.ErrorIs(t, err, tsfold.ErrInvalidDescriptor)

	d, ok := reg.Lookup("c")
	require.True(t, ok)
	require.Equal(t, []string{"function_definition"}, d.FunctionNodeTypes(), "valid entry applied before the invalid one")
}

func TestApplyExplicitEmptyTypes(t *testing.T) {
	reg := tsfold.DefaultRegistry()

	cfg, err := Decode(map[string]any{
		"languages": map[string]any{
			"rust": map[string]any{"function_node_types": []any{}, "body_field": "body"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, cfg.Languages["rust"].FunctionNodeTypes)

	err = cfg.Apply(reg)
	require.ErrorIs(t, err, tsfold.ErrInvalidDescriptor)

	d, ok := reg.Lookup("rust")
	require.True(t, ok)
	require.Equal(t, []string{"function_item"}, d.FunctionNodeTypes())

	cfg, err = Decode(map[string]any{
		"languages": map[string]any{"rust": map[string]any{"body_field": "body"}},
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Apply(reg), "an absent key inherits the registered types")
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{Active: []string{"rust"}}
	t.Setenv("TSFOLD_ACTIVE", "")
	cfg.ApplyEnv()
	require.Equal(t, []string{"rust"}, cfg.Active)

	t.Setenv("TSFOLD_ACTIVE", "go,c")
	cfg = &Config{}
	cfg.ApplyEnv()
	require.Equal(t, []string{"go", "c"}, cfg.Active)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsfold.yaml")
	err := os.WriteFile(path, []byte(`
languages:
  rust:
    function_node_types: function_item
  lua:
    function_node_types:
      - function_declaration
      - function_definition
    body_field: body
active: [rust, lua]
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"function_item"}, cfg.Languages["rust"].FunctionNodeTypes)
	require.Equal(t, []string{"function_declaration", "function_definition"}, cfg.Languages["lua"].FunctionNodeTypes)
	require.Equal(t, []string{"rust", "lua"}, cfg.Active)

	t.Setenv("TSFOLD_ACTIVE", " go , lua,")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"go", "lua"}, cfg.Active)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [unterminated"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
