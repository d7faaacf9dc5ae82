// Package cli defines the Cobra command tree for create-eslint-config. Each
// file registers one top-level command with the root command. Commands
// delegate composition to internal packages and only handle flag parsing,
// prompting, and output formatting.
package cli
