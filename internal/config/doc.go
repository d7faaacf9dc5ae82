// Package config manages user-level settings stored at
// ~/.create-eslint-config/config.yaml: the default style guide, a package
// manager that overrides detection, and the fallback package.json indent.
// Every key can also be set through an environment variable carrying the
// branding prefix, e.g. CREATE_ESLINT_CONFIG_STYLE_GUIDE.
package config
