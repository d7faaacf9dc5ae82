package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "create-eslint-config"},
		{"HomeDir", HomeDir(), ".create-eslint-config"},
		{"EnvPrefix", EnvPrefix(), "CREATE_ESLINT_CONFIG"},
		{"GoModule", GoModule(), "github.com/lintkit/create-eslint-config"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("style_guide"); got != "CREATE_ESLINT_CONFIG_STYLE_GUIDE" {
		t.Errorf("EnvVar() = %q", got)
	}
}
