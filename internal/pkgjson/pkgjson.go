// Package pkgjson reads, updates, and writes a project's package.json while
// preserving its key order and indentation.
package pkgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/versions"
)

// FileName is the manifest file name.
const FileName = "package.json"

const (
	devDependenciesKey = "devDependencies"
	eslintConfigKey    = "eslintConfig"
)

// ErrNotFound is returned when the directory has no package.json.
var ErrNotFound = errors.New("package.json not found")

var leadingSpace = regexp.MustCompile(`^\s+`)

// Manifest is a decoded package.json.
type Manifest struct {
	Path   string
	Indent string
	Doc    *object.Object
}

// Load reads package.json from dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes package.json content. path is recorded for Save.
func Parse(path string, data []byte) (*Manifest, error) {
	doc := object.New()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Indent: InferIndent(string(data)),
		Doc:    doc,
	}, nil
}

// InferIndent returns the leading whitespace of the first indented line, or
// "" when no line is indented.
func InferIndent(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			return strings.TrimRight(leadingSpace.FindString(line), "\r\n")
		}
	}
	return ""
}

// HasESLintConfig reports whether the manifest carries an inline eslintConfig.
func (m *Manifest) HasESLintConfig() bool {
	return m.Doc.Has(eslintConfigKey)
}

// RemoveESLintConfig drops the inline eslintConfig field.
func (m *Manifest) RemoveESLintConfig() bool {
	return m.Doc.Delete(eslintConfigKey)
}

// DevDependencies returns the current devDependencies as a flat map.
func (m *Manifest) DevDependencies() map[string]string {
	out := make(map[string]string)
	deps, ok := m.Doc.Object(devDependenciesKey)
	if !ok {
		return out
	}
	for _, name := range deps.Keys() {
		if v, _ := deps.Get(name); v != nil {
			if s, ok := v.(string); ok {
				out[name] = s
			}
		}
	}
	return out
}

// ChangeKind classifies what merging did to one dependency.
type ChangeKind int

// Change kinds.
const (
	Added ChangeKind = iota
	Updated
	Unchanged
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Change describes one dependency touched by MergeDevDependencies.
type Change struct {
	Name     string
	Previous string
	Next     string
	Kind     ChangeKind

	// Satisfied is true for updates whose previous version already met the
	// new range.
	Satisfied bool
}

// MergeDevDependencies merges deps into devDependencies, creating the field
// when absent. New names are appended in sorted order; existing names keep
// their position and take the new version.
func (m *Manifest) MergeDevDependencies(deps map[string]string) []Change {
	current := m.DevDependencies()
	fragment := object.FromStrings(deps)

	var changes []Change
	for _, name := range fragment.Keys() {
		next := deps[name]
		prev, exists := current[name]
		c := Change{Name: name, Previous: prev, Next: next}
		switch {
		case !exists:
			c.Kind = Added
		case prev == next:
			c.Kind = Unchanged
		default:
			c.Kind = Updated
			c.Satisfied, _ = versions.Satisfies(next, prev)
		}
		changes = append(changes, c)
	}

	object.Merge(m.Doc, object.New().Set(devDependenciesKey, fragment))
	return changes
}

// Marshal encodes the manifest with its inferred indent and a trailing
// newline, without HTML escaping.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", m.Indent)
	if err := enc.Encode(m.Doc); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Save writes the manifest back to its path.
func (m *Manifest) Save() error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.Path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", m.Path, err)
	}
	return nil
}
