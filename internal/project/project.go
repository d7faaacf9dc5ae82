// Package project inspects and writes the files of the target JavaScript
// project.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ConfigFormats are the legacy ESLint configuration file names that conflict
// with a generated configuration.
var ConfigFormats = []string{
	".eslintrc.js",
	".eslintrc.cjs",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.json",
}

// FindExistingConfigs returns the ConfigFormats present in dir, in
// ConfigFormats order.
func FindExistingConfigs(dir string) ([]string, error) {
	var found []string
	for _, name := range ConfigFormats {
		_, err := os.Stat(filepath.Join(dir, name))
		switch {
		case err == nil:
			found = append(found, name)
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("checking %s: %w", name, err)
		}
	}
	return found, nil
}

// RemoveConfigs deletes the named files from dir. Missing files are ignored.
func RemoveConfigs(dir string, names []string) error {
	for _, name := range names {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}

// WriteFiles writes each file relative to dir, creating parent directories,
// and returns the written paths in name order.
func WriteFiles(dir string, files map[string]string) ([]string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		if filepath.IsAbs(name) || !filepath.IsLocal(name) {
			return written, fmt.Errorf("refusing to write %q outside %s", name, dir)
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
