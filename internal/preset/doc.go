// Package preset loads answer files that replace the interactive prompts.
//
// A preset names a style guide and optionally TypeScript, path aliases,
// extra configuration, and extra devDependencies. YAML, JSON (with comments),
// and TOML files are accepted; every document is checked against an embedded
// JSON Schema before it is decoded.
package preset
