package compose

import (
	"errors"
	"fmt"

	"github.com/lintkit/create-eslint-config/internal/jsstringify"
	"github.com/lintkit/create-eslint-config/internal/object"
)

// PlaceholderKey marks an entry whose value is passed to the style guide's
// createAliasSetting helper at load time instead of being written literally.
const PlaceholderKey = "CREATE_ALIAS_SETTING_PLACEHOLDER"

const indentWidth = 2

// ErrAliasesUnsupported is returned when path aliases are requested for a
// combination whose style guide ships no createAliasSetting helper.
var ErrAliasesUnsupported = errors.New("path aliases are only supported for the airbnb style guide with JavaScript")

// AliasSettingModule returns the module that exports the alias helper for sg.
func AliasSettingModule(sg StyleGuide) string {
	return "eslint-config-" + string(sg) + "/createAliasSetting"
}

// Render serializes cfg as a JavaScript object literal. Entries keyed by
// PlaceholderKey are rendered as a spread of a require() call that receives
// the entry's value. cfg is not modified.
func Render(cfg *object.Object, sg StyleGuide) string {
	return jsstringify.Stringify(resolvePlaceholders(cfg.Clone(), sg), indentWidth)
}

func resolvePlaceholders(v any, sg StyleGuide) any {
	switch val := v.(type) {
	case *object.Object:
		if val == nil {
			return val
		}
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			child = resolvePlaceholders(child, sg)
			if k == PlaceholderKey {
				child = jsstringify.Spread{Value: jsstringify.Call{
					Callee: jsstringify.Raw(fmt.Sprintf("require(%s)", jsstringify.Quote(AliasSettingModule(sg)))),
					Args:   []any{child},
				}}
			}
			val.Set(k, child)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = resolvePlaceholders(item, sg)
		}
		return val
	default:
		return v
	}
}

// AliasConfig returns the additional configuration fragment that installs
// path aliases through the style guide's createAliasSetting helper. Only the
// airbnb JavaScript combination supports it.
func AliasConfig(sg StyleGuide, hasTypeScript bool, aliases *object.Object) (*object.Object, error) {
	if sg != StyleAirbnb || hasTypeScript {
		return nil, ErrAliasesUnsupported
	}
	return object.New().Set("settings", object.New().Set(PlaceholderKey, aliases.Clone())), nil
}
