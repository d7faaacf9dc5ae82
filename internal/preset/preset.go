package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"go.yaml.in/yaml/v3"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/object"
)

// Format is a preset file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported preset extension %q (want .yaml, .yml, .json, .jsonc, or .toml)", ext)
	}
}

// Preset holds the answers a preset file supplies.
type Preset struct {
	StyleGuide             compose.StyleGuide
	TypeScript             bool
	Aliases                *object.Object
	AdditionalConfig       *object.Object
	AdditionalDependencies map[string]string
}

// Load reads, validates, and decodes the preset at path.
func Load(path string) (*Preset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		if ie, ok := err.(*InvalidError); ok {
			ie.Source = path
			return nil, ie
		}
		return nil, fmt.Errorf("loading preset %s: %w", path, err)
	}
	return p, nil
}

// Parse validates and decodes a preset document. Schema violations are
// returned as *InvalidError.
func Parse(data []byte, format Format) (*Preset, error) {
	result, err := Validate(data, format)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Source: string(format) + " document", Issues: result.Issues}
	}

	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	p := &Preset{}
	name, _ := doc.Get("styleGuide")
	if p.StyleGuide, err = compose.ParseStyleGuide(fmt.Sprint(name)); err != nil {
		return nil, err
	}
	if ts, ok := doc.Get("typescript"); ok {
		p.TypeScript, _ = ts.(bool)
	}
	if aliases, ok := doc.Object("aliases"); ok {
		p.Aliases = aliases
	}
	if cfg, ok := doc.Object("additionalConfig"); ok {
		p.AdditionalConfig = cfg
	}
	if deps, ok := doc.Object("additionalDependencies"); ok {
		p.AdditionalDependencies = make(map[string]string, deps.Len())
		for _, k := range deps.Keys() {
			v, _ := deps.Get(k)
			p.AdditionalDependencies[k] = fmt.Sprint(v)
		}
	}
	return p, nil
}

// Params converts the preset into composition parameters. Aliases are merged
// over AdditionalConfig and fail with compose.ErrAliasesUnsupported outside
// the airbnb JavaScript combination.
func (p *Preset) Params() (compose.Params, error) {
	cfg := object.New()
	if p.AdditionalConfig != nil {
		cfg = p.AdditionalConfig.Clone()
	}
	if p.Aliases != nil && p.Aliases.Len() > 0 {
		frag, err := compose.AliasConfig(p.StyleGuide, p.TypeScript, p.Aliases)
		if err != nil {
			return compose.Params{}, err
		}
		object.Merge(cfg, frag)
	}

	return compose.Params{
		StyleGuide:             p.StyleGuide,
		HasTypeScript:          p.TypeScript,
		AdditionalConfig:       cfg,
		AdditionalDependencies: p.AdditionalDependencies,
	}, nil
}

// decode parses data into an ordered document. TOML tables carry no order,
// so their keys come back sorted.
func decode(data []byte, format Format) (*object.Object, error) {
	doc := object.New()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	case FormatTOML:
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		doc = object.FromMap(raw)
	default:
		return nil, fmt.Errorf("unsupported preset format %q", format)
	}
	return doc, nil
}
