// Package editorconfig provides the .editorconfig templates that accompany
// style guides with formatting opinions of their own.
package editorconfig

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// FileName is the name the template is written under.
const FileName = ".editorconfig"

//go:embed templates/*.editorconfig
var templateFS embed.FS

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// Table maps a style guide name to its .editorconfig content.
type Table map[string]string

// Lookup returns the template for styleGuide.
func (t Table) Lookup(styleGuide string) (string, bool) {
	content, ok := t[styleGuide]
	return content, ok
}

// Default returns the embedded templates keyed by style guide.
func Default() Table {
	defaultOnce.Do(func() {
		defaultTable = Table{}
		entries, err := fs.ReadDir(templateFS, "templates")
		if err != nil {
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			data, err := fs.ReadFile(templateFS, path.Join("templates", name))
			if err != nil {
				continue
			}
			defaultTable[strings.TrimSuffix(name, ".editorconfig")] = string(data)
		}
	})
	return defaultTable
}
