package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/config"
	"github.com/lintkit/create-eslint-config/internal/interactive"
	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/preset"
)

// selection holds the flags that answer the style questions.
type selection struct {
	presetPath string
	styleGuide string
	typeScript bool
	aliases    []string

	// typeScriptSet is true when --typescript was given explicitly.
	typeScriptSet bool
}

func addSelectionFlags(cmd *cobra.Command, s *selection) {
	f := cmd.Flags()
	f.StringVar(&s.presetPath, "preset", "", "Read answers from a preset file (.yaml, .yml, .json, .jsonc, .toml)")
	f.StringVar(&s.styleGuide, "style-guide", "", "Style guide to follow: default, airbnb, standard")
	f.BoolVar(&s.typeScript, "typescript", false, "The project uses TypeScript")
	f.StringArrayVar(&s.aliases, "alias", nil, "Path alias as prefix=replacement, repeatable (airbnb with JavaScript only)")
}

// answered reports whether flags replace the interactive questions.
func (s *selection) answered() bool {
	return s.presetPath != "" || s.styleGuide != ""
}

// resolve turns the flags into a preset. With neither --preset nor
// --style-guide the questions are asked on prompter, or the configured
// defaults are used when prompter is nil. Explicit flags override values
// from a preset file.
func (s *selection) resolve(prompter *interactive.Prompter) (*preset.Preset, error) {
	var sg compose.StyleGuide
	if s.styleGuide != "" {
		var err error
		if sg, err = compose.ParseStyleGuide(s.styleGuide); err != nil {
			return nil, err
		}
	}

	var p *preset.Preset
	switch {
	case s.presetPath != "":
		loaded, err := preset.Load(s.presetPath)
		if err != nil {
			return nil, err
		}
		p = loaded
		if sg != "" {
			p.StyleGuide = sg
		}
		if s.typeScriptSet {
			p.TypeScript = s.typeScript
		}
	case sg != "":
		p = (&interactive.Answers{StyleGuide: sg, TypeScript: s.typeScript}).Preset()
	case prompter != nil:
		answers, err := prompter.Run(interactive.Defaults{StyleGuide: config.StyleGuide()})
		if err != nil {
			return nil, err
		}
		p = answers.Preset()
	default:
		p = (&interactive.Answers{StyleGuide: config.StyleGuide(), TypeScript: s.typeScript}).Preset()
	}

	if len(s.aliases) > 0 {
		aliases, err := parseAliases(s.aliases)
		if err != nil {
			return nil, err
		}
		if p.Aliases == nil {
			p.Aliases = object.New()
		}
		object.Merge(p.Aliases, aliases)
	}
	return p, nil
}

// parseAliases reads prefix=replacement pairs, keeping flag order.
func parseAliases(pairs []string) (*object.Object, error) {
	aliases := object.New()
	for _, pair := range pairs {
		prefix, replacement, ok := strings.Cut(pair, "=")
		prefix, replacement = strings.TrimSpace(prefix), strings.TrimSpace(replacement)
		if !ok || prefix == "" || replacement == "" {
			return nil, fmt.Errorf("invalid alias %q: want prefix=replacement", pair)
		}
		if existing, dup := aliases.Get(prefix); dup {
			return nil, fmt.Errorf("alias %q has already been mapped to %v", prefix, existing)
		}
		aliases.Set(prefix, replacement)
	}
	return aliases, nil
}
