// Package versions holds the table of dependency version specifiers that
// generated configurations write into devDependencies. The default table is
// embedded at build time; callers may supply their own.
package versions

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed versions.yaml
var rawVersions []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Table is an immutable mapping from package name to version specifier.
type Table struct {
	entries map[string]string
}

// New builds a Table from entries, validating every specifier as a semver
// constraint. The map is copied.
func New(entries map[string]string) (*Table, error) {
	t := &Table{entries: make(map[string]string, len(entries))}
	for name, spec := range entries {
		if name == "" {
			return nil, fmt.Errorf("empty package name")
		}
		if _, err := semver.NewConstraint(spec); err != nil {
			return nil, fmt.Errorf("invalid version %q for %s: %w", spec, name, err)
		}
		t.entries[name] = spec
	}
	return t, nil
}

// Parse decodes a YAML name: version mapping into a Table.
func Parse(data []byte) (*Table, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing version table: %w", err)
	}
	return New(entries)
}

// Default returns the embedded version table, parsed once.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(rawVersions)
	})
	return defaultTable, defaultErr
}

// Lookup returns the version specifier for name.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[name]
	return v, ok
}

// Names returns all package names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Satisfies reports whether installed, a version or range as found in an
// existing package.json, meets constraint. Range operators on installed are
// stripped so "^8.40.0" is checked as 8.40.0.
func Satisfies(constraint, installed string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}

	base := stripRange(installed)
	if base == "" {
		return false, fmt.Errorf("no version in %q", installed)
	}
	v, err := semver.NewVersion(base)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", installed, err)
	}
	return c.Check(v), nil
}

// stripRange removes npm range operators (^, ~, >=, =, v) and returns the
// first version of the range. Workspace, file, git, and URL references
// yield an empty string.
func stripRange(spec string) string {
	spec = strings.TrimSpace(spec)
	for _, prefix := range []string{"workspace:", "file:", "git:", "git+", "http:", "https:", "link:", "npm:"} {
		if strings.HasPrefix(spec, prefix) {
			return ""
		}
	}
	if i := strings.IndexAny(spec, " |"); i >= 0 {
		spec = spec[:i]
	}
	spec = strings.TrimLeft(spec, "^~>=<v")
	if spec == "*" || spec == "latest" {
		return ""
	}
	return spec
}
