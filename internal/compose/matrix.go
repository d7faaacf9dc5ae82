package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSelection is returned when a style guide and language pair
// has no entry in the selection matrix.
var ErrUnsupportedSelection = errors.New("unsupported style guide and language combination")

// StyleGuide names a preset family of lint rules.
type StyleGuide string

// Known style guides.
const (
	StyleDefault  StyleGuide = "default"
	StyleAirbnb   StyleGuide = "airbnb"
	StyleStandard StyleGuide = "standard"
)

// StyleGuides lists the known style guides in menu order.
var StyleGuides = []StyleGuide{StyleDefault, StyleAirbnb, StyleStandard}

// ParseStyleGuide validates a style guide name.
func ParseStyleGuide(s string) (StyleGuide, error) {
	sg := StyleGuide(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StyleGuides {
		if sg == known {
			return sg, nil
		}
	}
	return "", fmt.Errorf("%w: unknown style guide %q (want one of default, airbnb, standard)", ErrUnsupportedSelection, s)
}

// Language is the source language variant of the project.
type Language string

// Known languages.
const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

// LanguageFor maps the TypeScript toggle to a Language.
func LanguageFor(hasTypeScript bool) Language {
	if hasTypeScript {
		return LanguageTypeScript
	}
	return LanguageJavaScript
}

// Combination is a key of the selection matrix.
type Combination struct {
	StyleGuide StyleGuide
	Language   Language
}

func (c Combination) String() string {
	return string(c.StyleGuide) + "-" + string(c.Language)
}

// Entry describes what one combination contributes to a configuration.
type Entry struct {
	// Extends are pushed onto the extends list without adding a dependency.
	Extends []string

	// SharedConfigs are shareable configs: each is added as a dependency and
	// pushed onto the extends list after Extends.
	SharedConfigs []string

	// Dependencies are added to devDependencies only.
	Dependencies []string
}

// ExtendsList returns the extends entries in the order they are applied.
func (e Entry) ExtendsList() []string {
	out := make([]string, 0, len(e.Extends)+len(e.SharedConfigs))
	out = append(out, e.Extends...)
	out = append(out, e.SharedConfigs...)
	return out
}

// DependencyNames returns every package the entry adds, in the order added.
func (e Entry) DependencyNames() []string {
	out := make([]string, 0, len(e.SharedConfigs)+len(e.Dependencies))
	out = append(out, e.SharedConfigs...)
	out = append(out, e.Dependencies...)
	return out
}

var matrixOrder = []Combination{
	{StyleDefault, LanguageJavaScript},
	{StyleDefault, LanguageTypeScript},
	{StyleAirbnb, LanguageJavaScript},
	{StyleAirbnb, LanguageTypeScript},
	{StyleStandard, LanguageJavaScript},
	{StyleStandard, LanguageTypeScript},
}

var matrix = map[Combination]Entry{
	{StyleDefault, LanguageJavaScript}: {
		Extends: []string{
			"eslint:recommended",
			"plugin:react/recommended",
			"plugin:react/jsx-runtime",
			"plugin:react-hooks/recommended",
		},
		Dependencies: []string{
			"eslint-plugin-react",
			"eslint-plugin-react-hooks",
			"eslint-plugin-react-refresh",
		},
	},
	{StyleDefault, LanguageTypeScript}: {
		Extends: []string{
			"eslint:recommended",
			"plugin:@typescript-eslint/recommended",
			"plugin:react-hooks/recommended",
		},
		Dependencies: []string{
			"@typescript-eslint/parser",
			"eslint-plugin-react-hooks",
			"eslint-plugin-react-refresh",
			"@typescript-eslint/eslint-plugin",
		},
	},
	{StyleAirbnb, LanguageJavaScript}: {
		Extends: []string{"airbnb", "airbnb/hooks"},
		Dependencies: []string{
			"eslint-config-airbnb",
			"eslint-plugin-import",
			"eslint-plugin-jsx-a11y",
			"eslint-plugin-react",
			"eslint-plugin-react-hooks",
		},
	},
	{StyleAirbnb, LanguageTypeScript}: {
		SharedConfigs: []string{"eslint-config-airbnb-typescript"},
		Dependencies: []string{
			"@typescript-eslint/parser",
			"@typescript-eslint/eslint-plugin",
		},
	},
	{StyleStandard, LanguageJavaScript}: {
		SharedConfigs: []string{
			"eslint-config-standard-react",
			"eslint-config-standard",
			"eslint-config-standard-jsx",
		},
		Dependencies: []string{
			"@babel/eslint-parser",
			"@babel/core",
		},
	},
	{StyleStandard, LanguageTypeScript}: {
		SharedConfigs: []string{"eslint-config-standard-with-typescript"},
		Dependencies: []string{
			"@typescript-eslint/parser",
			"@typescript-eslint/eslint-plugin",
			"eslint-plugin-promise",
			"eslint-plugin-n",
		},
	},
}

// Matrix returns the known combinations in a stable order.
func Matrix() []Combination {
	out := make([]Combination, len(matrixOrder))
	copy(out, matrixOrder)
	return out
}

// Lookup returns the matrix entry for a style guide and language.
func Lookup(sg StyleGuide, lang Language) (Entry, error) {
	c := Combination{StyleGuide: sg, Language: lang}
	entry, ok := matrix[c]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnsupportedSelection, c)
	}
	return entry, nil
}
