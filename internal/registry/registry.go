// Package registry holds the ordered substitution rules applied to each
// managed file. Rules are plain text transforms: a regular expression plus a
// replacement template interpolating version record fields.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/record"
)

// ErrUnknownField reports a replacement template referencing a field the
// version record does not define.
var ErrUnknownField = errors.New(messages.UpdaterUnknownFieldErr)

var templateFieldPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// RuleDef is the uncompiled form of a rule, as written in releasectl.toml.
type RuleDef struct {
	Pattern  string `toml:"pattern"`
	Template string `toml:"template"`
}

// SpecDef is the uncompiled form of one managed file entry.
type SpecDef struct {
	Path  string    `toml:"path"`
	Rules []RuleDef `toml:"rules"`
}

// Rule is one compiled substitution. Rules for a file run in order, each
// against the output of the previous one.
type Rule struct {
	Pattern  *regexp.Regexp
	Template string
}

// Registry maps managed file paths (relative, slash separated) to their rules.
type Registry struct {
	specs map[string][]Rule
}

// Compile validates and compiles a set of file entries. Every pattern must
// compile and every template field must name a known record field, so
// misconfigured rules surface here rather than mid-update.
func Compile(defs []SpecDef) (*Registry, error) {
	specs := make(map[string][]Rule, len(defs))
	for _, def := range defs {
		if def.Path == "" {
			return nil, errors.New(messages.RegistryEmptyPathErr)
		}
		if len(def.Rules) == 0 {
			return nil, fmt.Errorf(messages.RegistryNoRulesFmt, def.Path)
		}
		rules := make([]Rule, 0, len(def.Rules))
		for _, rd := range def.Rules {
			pattern, err := regexp.Compile(rd.Pattern)
			if err != nil {
				return nil, fmt.Errorf(messages.RegistryCompileErrFmt, rd.Pattern, def.Path, err)
			}
			if err := validateTemplate(rd.Template); err != nil {
				return nil, fmt.Errorf(messages.RegistryUnknownFieldFmt, def.Path, err)
			}
			rules = append(rules, Rule{Pattern: pattern, Template: rd.Template})
		}
		specs[def.Path] = rules
	}
	return &Registry{specs: specs}, nil
}

// Build compiles the default registry with overrides applied on top. An
// override entry replaces the default rules for its path; new paths are added.
func Build(overrides []SpecDef) (*Registry, error) {
	reg, err := Compile(defaultDefs)
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return reg, nil
	}
	extra, err := Compile(overrides)
	if err != nil {
		return nil, err
	}
	for path, rules := range extra.specs {
		reg.specs[path] = rules
	}
	return reg, nil
}

// Default returns the built-in registry.
func Default() *Registry {
	reg, err := Compile(defaultDefs)
	if err != nil {
		panic(err)
	}
	return reg
}

// Paths returns the managed file paths in lexicographic order. Files are
// always processed in this order so reporting is deterministic.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.specs))
	for path := range r.specs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Rules returns the ordered rules for a managed file path.
func (r *Registry) Rules(path string) []Rule {
	return r.specs[path]
}

// RequiredFields lists the record fields referenced by a template, in order
// of first appearance.
func RequiredFields(template string) []string {
	var fields []string
	seen := map[string]bool{}
	for _, match := range templateFieldPattern.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			fields = append(fields, match[1])
		}
	}
	return fields
}

// Interpolate replaces {field} placeholders in template with values from
// fields. A placeholder naming an unknown field is an error.
func Interpolate(template string, fields map[string]string) (string, error) {
	var badField string
	out := templateFieldPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := templateFieldPattern.FindStringSubmatch(match)[1]
		value, ok := fields[name]
		if !ok {
			if badField == "" {
				badField = name
			}
			return match
		}
		return value
	})
	if badField != "" {
		return "", fmt.Errorf(messages.UpdaterUnknownFieldFmt+": %w", template, badField, ErrUnknownField)
	}
	return out, nil
}

func validateTemplate(template string) error {
	known := map[string]bool{}
	for _, name := range record.FieldNames() {
		known[name] = true
	}
	for _, field := range RequiredFields(template) {
		if !known[field] {
			return fmt.Errorf(messages.UpdaterUnknownFieldFmt+": %w", template, field, ErrUnknownField)
		}
	}
	return nil
}
