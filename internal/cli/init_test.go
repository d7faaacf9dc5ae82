package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintkit/create-eslint-config/internal/interactive"
	"github.com/lintkit/create-eslint-config/internal/pkgjson"
)

const samplePackageJSON = `{
  "name": "vite-react",
  "private": true,
  "scripts": {
    "dev": "vite",
    "lint": "eslint ."
  },
  "devDependencies": {
    "vite": "^4.4.0"
  }
}
`

func setupProject(t *testing.T, pkg string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if pkg != "" {
		if err := os.WriteFile(filepath.Join(dir, pkgjson.FileName), []byte(pkg), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestRunInitWithFlags(t *testing.T) {
	dir := setupProject(t, samplePackageJSON)
	var out, errOut bytes.Buffer
	opts := initOptions{
		dir:       dir,
		sel:       selection{styleGuide: "airbnb", aliases: []string{"@=./src"}},
		userAgent: "pnpm/8.6.0 npm/? node/v18.16.0 linux x64",
	}
	if err := runInit(opts, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("runInit() error: %v\nstderr: %s", err, errOut.String())
	}

	cfg := readFile(t, filepath.Join(dir, ".eslintrc.cjs"))
	for _, want := range []string{
		"require('@rushstack/eslint-patch/modern-module-resolution')",
		"module.exports = {",
		"...require('eslint-config-airbnb/createAliasSetting')({",
		"'@': './src'",
		"version: '18.2'",
	} {
		if !strings.Contains(cfg, want) {
			t.Errorf(".eslintrc.cjs missing %q:\n%s", want, cfg)
		}
	}
	if ec := readFile(t, filepath.Join(dir, ".editorconfig")); !strings.Contains(ec, "max_line_length = 100") {
		t.Errorf(".editorconfig = %s", ec)
	}

	m, err := pkgjson.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	deps := m.DevDependencies()
	for _, name := range []string{"vite", "eslint", "eslint-config-airbnb", "@rushstack/eslint-patch"} {
		if deps[name] == "" {
			t.Errorf("devDependencies missing %s: %v", name, deps)
		}
	}
	if m.Indent != "  " {
		t.Errorf("indent = %q, want two spaces", m.Indent)
	}

	if !strings.Contains(out.String(), "pnpm install") || !strings.Contains(out.String(), "pnpm lint") {
		t.Errorf("next steps missing pnpm commands:\n%s", out.String())
	}
}

func TestRunInitInteractive(t *testing.T) {
	dir := setupProject(t, samplePackageJSON)
	// style guide 1 (default), no TypeScript
	in := strings.NewReader("1\nn\n")
	var out bytes.Buffer
	if err := runInit(initOptions{dir: dir}, in, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}
	cfg := readFile(t, filepath.Join(dir, ".eslintrc.cjs"))
	if !strings.HasPrefix(cfg, "/* eslint-env node */\n") {
		t.Errorf("default JavaScript config should start with the env comment:\n%s", cfg)
	}
	if !strings.Contains(out.String(), "npm run lint") {
		t.Errorf("expected npm commands:\n%s", out.String())
	}
}

func TestRunInitMissingPackageJSON(t *testing.T) {
	dir := setupProject(t, "")
	var errOut bytes.Buffer
	err := runInit(initOptions{dir: dir, sel: selection{styleGuide: "default"}}, strings.NewReader(""), &bytes.Buffer{}, &errOut)
	if !errors.Is(err, pkgjson.ErrNotFound) {
		t.Fatalf("runInit() error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(errOut.String(), "not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if _, err := os.Stat(filepath.Join(dir, ".eslintrc.cjs")); !os.IsNotExist(err) {
		t.Error("no files should be written without package.json")
	}
}

func TestRunInitExistingConfig(t *testing.T) {
	tests := []struct {
		name       string
		force      bool
		input      string
		wantErr    error
		wantRemove bool
	}{
		{"declined", false, "n\n", interactive.ErrAborted, false},
		{"confirmed", false, "y\n", nil, true},
		{"forced", true, "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t, samplePackageJSON)
			legacy := filepath.Join(dir, ".eslintrc.json")
			if err := os.WriteFile(legacy, []byte("{}\n"), 0644); err != nil {
				t.Fatal(err)
			}

			opts := initOptions{dir: dir, force: tt.force, sel: selection{styleGuide: "standard"}}
			err := runInit(opts, strings.NewReader(tt.input), &bytes.Buffer{}, &bytes.Buffer{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("runInit() error = %v, want %v", err, tt.wantErr)
			}

			_, statErr := os.Stat(legacy)
			if removed := os.IsNotExist(statErr); removed != tt.wantRemove {
				t.Errorf("legacy config removed = %v, want %v", removed, tt.wantRemove)
			}
			if tt.wantErr != nil {
				if got := readFile(t, filepath.Join(dir, pkgjson.FileName)); got != samplePackageJSON {
					t.Errorf("package.json changed after abort:\n%s", got)
				}
			}
		})
	}
}

func TestRunInitESLintConfigField(t *testing.T) {
	pkg := `{"name":"app","eslintConfig":{"extends":"react-app"}}`
	tests := []struct {
		input     string
		wantField bool
	}{
		{"y\n", false},
		{"n\n", true},
	}
	for _, tt := range tests {
		dir := setupProject(t, pkg)
		opts := initOptions{dir: dir, sel: selection{styleGuide: "default", typeScript: true}}
		if err := runInit(opts, strings.NewReader(tt.input), &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
			t.Fatalf("runInit() error: %v", err)
		}
		m, err := pkgjson.Load(dir)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.HasESLintConfig(); got != tt.wantField {
			t.Errorf("answer %q: eslintConfig present = %v, want %v", tt.input, got, tt.wantField)
		}
		if m.Indent != "" {
			t.Errorf("compact package.json should stay compact, indent = %q", m.Indent)
		}
	}
}

func TestRunInitVerbose(t *testing.T) {
	dir := setupProject(t, samplePackageJSON)
	var errOut bytes.Buffer
	opts := initOptions{dir: dir, verbose: true, sel: selection{styleGuide: "default"}}
	if err := runInit(opts, strings.NewReader(""), &bytes.Buffer{}, &errOut); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"added", "eslint", "wrote"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("verbose output missing %q:\n%s", want, errOut.String())
		}
	}
}
