// Package pkgmanager identifies the JavaScript package manager that launched
// the tool and the commands the user should run next.
package pkgmanager

import "strings"

// UserAgentEnv is the variable npm, yarn, and pnpm set for child processes.
const UserAgentEnv = "npm_config_user_agent"

// Manager is a JavaScript package manager.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Detect picks the package manager named in a user-agent string such as
// "pnpm/8.6.0 npm/? node/v18.16.0 darwin arm64". Anything unrecognized is npm.
func Detect(userAgent string) Manager {
	switch {
	case strings.Contains(userAgent, "pnpm"):
		return PNPM
	case strings.Contains(userAgent, "yarn"):
		return Yarn
	default:
		return NPM
	}
}

// Parse resolves an explicit manager name, falling back to Detect on the
// user agent when name is empty or unknown.
func Parse(name, userAgent string) Manager {
	switch m := Manager(strings.ToLower(strings.TrimSpace(name))); m {
	case NPM, Yarn, PNPM:
		return m
	default:
		return Detect(userAgent)
	}
}

// InstallCommand returns the command that installs dependencies.
func (m Manager) InstallCommand() string {
	if m == Yarn {
		return "yarn"
	}
	return string(m) + " install"
}

// LintCommand returns the command that runs the project's lint script.
func (m Manager) LintCommand() string {
	if m == NPM {
		return "npm run lint"
	}
	return string(m) + " lint"
}
