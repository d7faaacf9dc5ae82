package compose

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lintkit/create-eslint-config/internal/editorconfig"
	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/versions"
)

func testTables(t *testing.T) Tables {
	t.Helper()
	tables, err := DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables() error: %v", err)
	}
	return tables
}

func TestComposeDefaultJavaScript(t *testing.T) {
	result, err := Compose(Params{StyleGuide: StyleDefault}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	wantDeps := []string{"eslint", "eslint-plugin-react", "eslint-plugin-react-hooks", "eslint-plugin-react-refresh"}
	if got := result.DependencyNames(); !reflect.DeepEqual(got, wantDeps) {
		t.Errorf("dependencies = %v, want %v", got, wantDeps)
	}

	want := `/* eslint-env node */
module.exports = {
  root: true,
  env: {
    browser: true,
    es2020: true
  },
  'extends': [
    'eslint:recommended',
    'plugin:react/recommended',
    'plugin:react/jsx-runtime',
    'plugin:react-hooks/recommended'
  ],
  ignorePatterns: [
    'dist',
    '.eslintrc.cjs'
  ],
  plugins: [
    'react-refresh'
  ],
  rules: {
    'react-refresh/only-export-components': [
      'warn',
      {
        allowConstantExport: true
      }
    ]
  },
  parserOptions: {
    ecmaVersion: 'latest',
    sourceType: 'module'
  }
}
`
	if got := result.Files[ConfigFileName]; got != want {
		t.Errorf("%s mismatch\n--- got ---\n%s\n--- want ---\n%s", ConfigFileName, got, want)
	}

	if _, ok := result.Files[editorconfig.FileName]; ok {
		t.Error("default style guide should not produce an .editorconfig")
	}
	if result.Combination.String() != "default-javascript" {
		t.Errorf("Combination = %s", result.Combination)
	}
}

func TestComposeDefaultTypeScript(t *testing.T) {
	result, err := Compose(Params{StyleGuide: StyleDefault, HasTypeScript: true}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	content := result.Files[ConfigFileName]
	if !strings.HasPrefix(content, "require('@rushstack/eslint-patch/modern-module-resolution')\n\nmodule.exports = {\n") {
		t.Errorf("content should start with the patch require:\n%s", content)
	}
	assertContains(t, content, "  parser: '@typescript-eslint/parser'\n}")
	assertNotContains(t, content, "eslint-env")
	assertNotContains(t, content, "parserOptions")

	if _, ok := result.Dependencies["@rushstack/eslint-patch"]; !ok {
		t.Error("TypeScript should add the patch dependency")
	}
	if _, ok := result.Dependencies["@typescript-eslint/eslint-plugin"]; !ok {
		t.Error("missing @typescript-eslint/eslint-plugin")
	}
}

func TestComposeAirbnbWithAliases(t *testing.T) {
	additional := object.New().Set("settings", object.New().
		Set(PlaceholderKey, object.New().Set("@", "./src")))

	result, err := Compose(Params{StyleGuide: StyleAirbnb, AdditionalConfig: additional}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	content := result.Files[ConfigFileName]
	want := `  settings: {
    ...require('eslint-config-airbnb/createAliasSetting')({
      '@': './src'
    })
  }
}
`
	if !strings.HasSuffix(content, want) {
		t.Errorf("content should end with the alias spread:\n%s", content)
	}
	if strings.Count(content, "...require('eslint-config-airbnb/createAliasSetting')") != 1 {
		t.Errorf("alias require should appear exactly once:\n%s", content)
	}
	assertNotContains(t, content, PlaceholderKey)

	airbnb := strings.Index(content, "'airbnb',")
	hooks := strings.Index(content, "'airbnb/hooks'")
	if airbnb < 0 || hooks < 0 || airbnb > hooks {
		t.Errorf("extends should list airbnb before airbnb/hooks:\n%s", content)
	}

	// Airbnb sets its own parser and env; no branch of the parser switch fires.
	assertNotContains(t, content, "parser")
	assertNotContains(t, content, "eslint-env")
	assertContains(t, content, "require('@rushstack/eslint-patch/modern-module-resolution')")

	if _, ok := result.Files[editorconfig.FileName]; !ok {
		t.Error("airbnb should produce an .editorconfig")
	}

	// The caller's override must not be rewritten.
	settings, _ := additional.Object("settings")
	if v, _ := settings.Get(PlaceholderKey); v == nil {
		t.Error("AdditionalConfig placeholder was modified")
	}
	cfgSettings, _ := result.Config.Object("settings")
	if !cfgSettings.Has(PlaceholderKey) {
		t.Error("Result.Config should keep the placeholder key; only rendering rewrites it")
	}
}

func TestComposeStandardJavaScript(t *testing.T) {
	result, err := Compose(Params{StyleGuide: StyleStandard}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	ext, _ := result.Config.Get("extends")
	want := []any{"eslint-config-standard-react", "eslint-config-standard", "eslint-config-standard-jsx"}
	if !object.Equal(ext, want) {
		t.Errorf("extends = %v, want %v", ext, want)
	}
	if p, _ := result.Config.Get("parser"); p != "@babel/eslint-parser" {
		t.Errorf("parser = %v, want @babel/eslint-parser", p)
	}
	for _, name := range []string{"@babel/core", "@babel/eslint-parser", "eslint-config-standard-jsx"} {
		if _, ok := result.Dependencies[name]; !ok {
			t.Errorf("missing dependency %s", name)
		}
	}
}

func TestComposeMatrixTotality(t *testing.T) {
	tables := testTables(t)

	for _, c := range Matrix() {
		t.Run(c.String(), func(t *testing.T) {
			result, err := Compose(Params{
				StyleGuide:    c.StyleGuide,
				HasTypeScript: c.Language == LanguageTypeScript,
			}, tables)
			if err != nil {
				t.Fatalf("Compose() error: %v", err)
			}

			if _, ok := result.Dependencies["eslint"]; !ok {
				t.Error("eslint dependency missing")
			}

			entry, _ := Lookup(c.StyleGuide, c.Language)
			ext, _ := result.Config.Get("extends")
			list, ok := ext.([]any)
			if !ok || len(list) == 0 {
				t.Fatalf("extends = %v, want non-empty list", ext)
			}
			for i, name := range entry.ExtendsList() {
				if list[i] != name {
					t.Errorf("extends[%d] = %v, want %s", i, list[i], name)
				}
			}
			for _, name := range entry.DependencyNames() {
				if _, ok := result.Dependencies[name]; !ok {
					t.Errorf("dependency %s missing", name)
				}
			}

			// Exactly one parser branch fires, except airbnb JavaScript.
			_, hasParser := result.Config.Get("parser")
			_, hasOptions := result.Config.Get("parserOptions")
			fired := 0
			if hasParser {
				fired++
			}
			if hasOptions {
				fired++
			}
			wantFired := 1
			if c.StyleGuide == StyleAirbnb && c.Language == LanguageJavaScript {
				wantFired = 0
			}
			if fired != wantFired {
				t.Errorf("parser branches fired = %d, want %d", fired, wantFired)
			}

			_, hasPatch := result.Dependencies["@rushstack/eslint-patch"]
			wantPatch := c != Combination{StyleDefault, LanguageJavaScript}
			if hasPatch != wantPatch {
				t.Errorf("patch dependency = %v, want %v", hasPatch, wantPatch)
			}
		})
	}
}

func TestComposeUnsupportedSelection(t *testing.T) {
	result, err := Compose(Params{StyleGuide: "bogus"}, testTables(t))
	if !errors.Is(err, ErrUnsupportedSelection) {
		t.Fatalf("error = %v, want ErrUnsupportedSelection", err)
	}
	if result != nil {
		t.Error("failed composition should return no result")
	}
	if !strings.Contains(err.Error(), "bogus-javascript") {
		t.Errorf("error should name the combination: %v", err)
	}
}

func TestComposeOverridesWin(t *testing.T) {
	additional := object.New().
		Set("extends", []any{"plugin:@typescript-eslint/recommended"}).
		Set("env", object.New().Set("node", true)).
		Set("root", false)

	result, err := Compose(Params{
		StyleGuide:             StyleDefault,
		AdditionalConfig:       additional,
		AdditionalDependencies: map[string]string{"eslint": "^9.0.0", "eslint-plugin-cypress": "^2.13.3"},
	}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	ext, _ := result.Config.Get("extends")
	if !object.Equal(ext, []any{"plugin:@typescript-eslint/recommended"}) {
		t.Errorf("extends = %v, arrays from overrides should replace wholesale", ext)
	}
	env, _ := result.Config.Object("env")
	if !reflect.DeepEqual(env.Keys(), []string{"browser", "es2020", "node"}) {
		t.Errorf("env keys = %v, want deep merge", env.Keys())
	}
	if root, _ := result.Config.Get("root"); root != false {
		t.Errorf("root = %v, want false", root)
	}
	if result.Dependencies["eslint"] != "^9.0.0" {
		t.Errorf("eslint = %q, override should win", result.Dependencies["eslint"])
	}
	if result.Dependencies["eslint-plugin-cypress"] != "^2.13.3" {
		t.Error("additional dependency missing")
	}
}

func TestComposePatchFromOverride(t *testing.T) {
	result, err := Compose(Params{
		StyleGuide:             StyleDefault,
		AdditionalDependencies: map[string]string{"@rushstack/eslint-patch": "^1.3.2"},
	}, testTables(t))
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	content := result.Files[ConfigFileName]
	wantPrefix := "/* eslint-env node */\nrequire('@rushstack/eslint-patch/modern-module-resolution')\n\nmodule.exports = "
	if !strings.HasPrefix(content, wantPrefix) {
		t.Errorf("content prefix wrong:\n%s", content)
	}
}

func TestComposeMissingVersion(t *testing.T) {
	table, err := versions.New(map[string]string{"eslint": "^8.45.0"})
	if err != nil {
		t.Fatalf("versions.New() error: %v", err)
	}

	_, err = Compose(Params{StyleGuide: StyleDefault}, Tables{Versions: table})
	if !errors.Is(err, ErrUnknownDependency) {
		t.Fatalf("error = %v, want ErrUnknownDependency", err)
	}

	// Supplying the versions as overrides fills the gap.
	result, err := Compose(Params{
		StyleGuide: StyleDefault,
		AdditionalDependencies: map[string]string{
			"eslint-plugin-react":         "^7.32.2",
			"eslint-plugin-react-hooks":   "^4.6.0",
			"eslint-plugin-react-refresh": "^0.4.3",
		},
	}, Tables{Versions: table})
	if err != nil {
		t.Fatalf("Compose() with overrides error: %v", err)
	}
	if len(result.Dependencies) != 4 {
		t.Errorf("dependencies = %v", result.Dependencies)
	}
}

func TestComposeRequiresVersionTable(t *testing.T) {
	if _, err := Compose(Params{StyleGuide: StyleDefault}, Tables{}); err == nil {
		t.Error("expected error without a version table")
	}
}

func TestComposeCustomEditorConfig(t *testing.T) {
	tables := testTables(t)
	tables.EditorConfigs = editorconfig.Table{"default": "root = true\n"}

	result, err := Compose(Params{StyleGuide: StyleDefault}, tables)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if result.Files[editorconfig.FileName] != "root = true\n" {
		t.Errorf("editorconfig = %q", result.Files[editorconfig.FileName])
	}
	if got := result.FileNames(); !reflect.DeepEqual(got, []string{".editorconfig", ".eslintrc.cjs"}) {
		t.Errorf("FileNames() = %v", got)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	tables := testTables(t)
	p := Params{
		StyleGuide:       StyleAirbnb,
		AdditionalConfig: object.New().Set("settings", object.New().Set("react", object.New().Set("version", "18.2"))),
	}

	first, err := Compose(p, tables)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	second, _ := Compose(p, tables)
	if !reflect.DeepEqual(first.Files, second.Files) || !reflect.DeepEqual(first.Dependencies, second.Dependencies) {
		t.Error("repeated composition produced different output")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q\n--- content ---\n%s", substr, content)
	}
}
