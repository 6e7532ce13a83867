// Package config loads language descriptors and the active-language list
// from YAML files and from mapping-typed settings sent by editors.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arjunmahishi/tsfold/lang"
	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds user configuration.
type Config struct {
	// Languages overrides or adds descriptors, keyed by language id.
	Languages map[string]LanguageSettings `mapstructure:"languages" json:"languages"`

	// Active lists the languages the feature is enabled for.
	// Empty means every configured language.
	Active []string `mapstructure:"active" json:"active"`
}

// LanguageSettings is the user-facing shape of a descriptor. A single string
// is accepted for FunctionNodeTypes. Unset fields inherit from the
// descriptor already registered for the language.
type LanguageSettings struct {
	FunctionNodeTypes []string `mapstructure:"function_node_types" json:"function_node_types"`
	BodyField         string   `mapstructure:"body_field" json:"body_field"`
}

// Load reads a YAML configuration file and then applies the environment
// override (see ApplyEnv).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv replaces the active languages with TSFOLD_ACTIVE, a comma
// separated list, when it is set.
func (c *Config) ApplyEnv() {
	if active := os.Getenv("TSFOLD_ACTIVE"); active != "" {
		c.Active = splitList(active)
	}
}

// Decode converts a generic settings value (YAML document, LSP
// initializationOptions, ...) into a Config. A nil value yields an empty
// Config.
func Decode(src any) (*Config, error) {
	cfg := &Config{}
	if src == nil {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(src); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Apply registers every configured language in reg. All entries are
// validated first, so an invalid entry leaves reg unchanged.
func (c *Config) Apply(reg *tsfold.Registry) error {
	ids := make([]string, 0, len(c.Languages))
	for id := range c.Languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	descs := make([]*tsfold.LanguageDescriptor, len(ids))
	for i, id := range ids {
		s := c.Languages[id].resolve(reg, id)
		d, err := tsfold.NewDescriptor(s.FunctionNodeTypes, s.BodyField)
		if err != nil {
			return fmt.Errorf("register %s: %w", id, err)
		}
		descs[i] = d
	}

	for i, id := range ids {
		if err := reg.Register(id, descs[i]); err != nil {
			return err
		}
	}
	return nil
}

// resolve fills unset fields from the descriptor registered for id. A nil
// type list means the key was absent; an explicit empty list is kept and
// fails validation.
func (s LanguageSettings) resolve(reg *tsfold.Registry, id string) LanguageSettings {
	existing, ok := reg.Lookup(id)
	if !ok {
		return s
	}
	resolved := s
	if resolved.FunctionNodeTypes == nil {
		resolved.FunctionNodeTypes = existing.FunctionNodeTypes()
	}
	if resolved.BodyField == "" {
		resolved.BodyField = existing.BodyField()
	}
	return resolved
}

// Activation returns the active-language set. With no explicit list every
// language in reg is active.
func (c *Config) Activation(reg *tsfold.Registry) *Activation {
	if len(c.Active) == 0 {
		return NewActivation(reg.Languages()...)
	}
	return NewActivation(c.Active...)
}

// Validate returns warnings for settings that load but will not do
// anything useful.
func (c *Config) Validate(reg *tsfold.Registry) []string {
	var warnings []string
	for _, id := range c.Active {
		if _, ok := reg.Lookup(id); ok {
			continue
		}
		if _, ok := c.Languages[id]; ok {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("active language %q has no descriptor", id))
	}

	ids := make([]string, 0, len(c.Languages))
	for id := range c.Languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if lang.Get(id) == nil {
			warnings = append(warnings, fmt.Sprintf("language %q has no bundled grammar and will not be parsed", id))
		}
	}
	return warnings
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
