// Package compose turns a style guide, a language, and user overrides into an
// ESLint configuration bundle: the devDependencies to install and the text of
// the files to write. Composition is a pure function of its inputs; reading
// and writing files is left to the caller.
package compose

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lintkit/create-eslint-config/internal/editorconfig"
	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/versions"
)

// ConfigFileName is the primary file every composition produces.
const ConfigFileName = ".eslintrc.cjs"

const (
	linterDependency = "eslint"
	patchDependency  = "@rushstack/eslint-patch"

	envComment  = "/* eslint-env node */\n"
	patchImport = "require('@rushstack/eslint-patch/modern-module-resolution')\n\n"
)

// ErrUnknownDependency is returned when a package the configuration needs
// has no entry in the version table.
var ErrUnknownDependency = errors.New("dependency missing from version table")

// Params are the user's choices.
type Params struct {
	StyleGuide    StyleGuide
	HasTypeScript bool

	// AdditionalConfig is deep-merged over the generated configuration.
	AdditionalConfig *object.Object

	// AdditionalDependencies are merged over the generated devDependencies.
	AdditionalDependencies map[string]string
}

// Tables are the lookup tables composition reads from.
type Tables struct {
	Versions      *versions.Table
	EditorConfigs editorconfig.Table
}

// DefaultTables returns the embedded version table and editor templates.
func DefaultTables() (Tables, error) {
	v, err := versions.Default()
	if err != nil {
		return Tables{}, fmt.Errorf("loading version table: %w", err)
	}
	return Tables{Versions: v, EditorConfigs: editorconfig.Default()}, nil
}

// Result is a composed configuration bundle.
type Result struct {
	Combination Combination

	// Dependencies is the devDependencies fragment for the host package.json.
	Dependencies map[string]string

	// Config is the final configuration object, after overrides.
	Config *object.Object

	// Files maps a relative file name to its full content.
	Files map[string]string
}

// FileNames returns the names in Files, sorted.
func (r *Result) FileNames() []string {
	names := make([]string, 0, len(r.Files))
	for name := range r.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DependencyNames returns the names in Dependencies, sorted.
func (r *Result) DependencyNames() []string {
	names := make([]string, 0, len(r.Dependencies))
	for name := range r.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compose builds the dependency fragment and rendered files for p. An
// unknown style guide and language pair fails with ErrUnsupportedSelection
// and no partial result. p is not modified.
func Compose(p Params, t Tables) (*Result, error) {
	if t.Versions == nil {
		return nil, errors.New("compose: no version table")
	}

	deps := make(map[string]string)
	var missing []string
	addDependency := func(name string) {
		v, ok := t.Versions.Lookup(name)
		if !ok {
			missing = append(missing, name)
			return
		}
		deps[name] = v
	}

	addDependency(linterDependency)
	cfg := baseConfig()

	if p.StyleGuide != StyleDefault || p.HasTypeScript {
		addDependency(patchDependency)
	}

	lang := LanguageFor(p.HasTypeScript)
	entry, err := Lookup(p.StyleGuide, lang)
	if err != nil {
		return nil, err
	}

	extends := make([]any, 0, len(entry.Extends)+len(entry.SharedConfigs))
	for _, name := range entry.ExtendsList() {
		extends = append(extends, name)
	}
	cfg.Set("extends", extends)
	for _, name := range entry.DependencyNames() {
		addDependency(name)
	}

	object.MergeStrings(deps, p.AdditionalDependencies)

	// A version supplied through AdditionalDependencies covers a table gap.
	var unresolved []string
	for _, name := range missing {
		if _, ok := deps[name]; !ok {
			unresolved = append(unresolved, name)
		}
	}
	if len(unresolved) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDependency, unresolved)
	}

	object.Merge(cfg, p.AdditionalConfig)

	var header string
	switch {
	case p.StyleGuide == StyleDefault && !p.HasTypeScript:
		// Airbnb and Standard already set env: node and ecmaVersion.
		header = envComment
		cfg.Set("parserOptions", object.New().
			Set("ecmaVersion", "latest").
			Set("sourceType", "module"))
	case p.StyleGuide == StyleStandard && !p.HasTypeScript:
		cfg.Set("parser", "@babel/eslint-parser")
	case p.HasTypeScript:
		cfg.Set("parser", "@typescript-eslint/parser")
	}

	if _, ok := deps[patchDependency]; ok {
		header += patchImport
	}

	files := map[string]string{
		ConfigFileName: header + "module.exports = " + Render(cfg, p.StyleGuide) + "\n",
	}
	if content, ok := t.EditorConfigs.Lookup(string(p.StyleGuide)); ok {
		files[editorconfig.FileName] = content
	}

	return &Result{
		Combination:  Combination{StyleGuide: p.StyleGuide, Language: lang},
		Dependencies: deps,
		Config:       cfg,
		Files:        files,
	}, nil
}

// baseConfig returns the settings every configuration starts from.
func baseConfig() *object.Object {
	return object.New().
		Set("root", true).
		Set("env", object.New().
			Set("browser", true).
			Set("es2020", true)).
		Set("extends", []any{}).
		Set("ignorePatterns", []any{"dist", ConfigFileName}).
		Set("plugins", []any{"react-refresh"}).
		Set("rules", object.New().
			Set("react-refresh/only-export-components", []any{
				"warn",
				object.New().Set("allowConstantExport", true),
			}))
}
