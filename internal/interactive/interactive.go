// Package interactive asks the user for the choices a preset file would
// otherwise supply, using numbered menus and yes/no questions on a
// reader/writer pair.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/preset"
	"github.com/lintkit/create-eslint-config/internal/ui"
)

// ErrAborted is returned when input ends before a question is answered.
var ErrAborted = errors.New("operation cancelled")

// reactVersion is pinned so eslint-plugin-react does not need to resolve
// React from the project at lint time.
const reactVersion = "18.2"

var styleGuideLabels = map[compose.StyleGuide]string{
	compose.StyleDefault:  "ESLint (Error-Prevention-Only) - (Recommended)",
	compose.StyleAirbnb:   "Airbnb " + ui.Dim("(https://airbnb.io/javascript/)"),
	compose.StyleStandard: "Standard " + ui.Dim("(https://standardjs.com/)"),
}

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; end of input with nothing read is ErrAborted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// selectFromList presents a numbered list and returns the selected index.
// An empty answer picks def; anything else out of range is asked again.
func (p *Prompter) selectFromList(prompt string, items []string, def int) (int, error) {
	fmt.Fprintf(p.out, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}
	for {
		fmt.Fprintf(p.out, "Enter number [1-%d] (default %d): ", len(items), def+1)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(p.out, "Invalid selection %q: choose 1-%d\n", line, len(items))
	}
}

// SelectStyleGuide asks which style guide to follow.
func (p *Prompter) SelectStyleGuide(def compose.StyleGuide) (compose.StyleGuide, error) {
	guides := compose.StyleGuides
	labels := make([]string, len(guides))
	defIdx := 0
	for i, sg := range guides {
		labels[i] = styleGuideLabels[sg]
		if sg == def {
			defIdx = i
		}
	}
	idx, err := p.selectFromList("Which style guide do you want to follow?", labels, defIdx)
	if err != nil {
		return "", err
	}
	return guides[idx], nil
}

// Confirm asks a yes/no question. An empty answer picks def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s (%s): ", question, hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// CollectAliases reads prefix and replacement pairs until an empty prefix.
// A prefix that is already aliased, or an empty replacement, is asked again.
func (p *Prompter) CollectAliases() (*object.Object, error) {
	aliases := object.New()
	fmt.Fprintf(p.out, "\nPlease input your alias configurations (press %s to skip):\n", ui.Command("<Enter>"))
	for {
		fmt.Fprint(p.out, "\nAlias prefix: ")
		prefix, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if prefix == "" {
			return aliases, nil
		}
		if existing, ok := aliases.Get(prefix); ok {
			fmt.Fprintf(p.out, "%s has already been aliased to %s\n", ui.Command(prefix), ui.Command(fmt.Sprint(existing)))
			continue
		}

		var replacement string
		for replacement == "" {
			fmt.Fprintf(p.out, "Path replacement for the prefix %s: ", ui.Command(prefix))
			if replacement, err = p.readLine(); err != nil {
				return nil, err
			}
		}
		aliases.Set(prefix, replacement)
	}
}

// Defaults pre-select answers.
type Defaults struct {
	StyleGuide compose.StyleGuide
}

// Answers are the user's choices.
type Answers struct {
	StyleGuide compose.StyleGuide
	TypeScript bool
	Aliases    *object.Object
}

// Run asks for a style guide, TypeScript, and (for airbnb with JavaScript)
// path aliases.
func Run(r io.Reader, w io.Writer, d Defaults) (*Answers, error) {
	p := New(r, w)
	return p.Run(d)
}

// Run is the full question flow on an existing Prompter.
func (p *Prompter) Run(d Defaults) (*Answers, error) {
	sg, err := p.SelectStyleGuide(d.StyleGuide)
	if err != nil {
		return nil, err
	}
	ts, err := p.Confirm("Does your project use TypeScript?", false)
	if err != nil {
		return nil, err
	}

	a := &Answers{StyleGuide: sg, TypeScript: ts}
	if sg == compose.StyleAirbnb && !ts {
		hasAlias, err := p.Confirm("Does your project use any path aliases?", false)
		if err != nil {
			return nil, err
		}
		if hasAlias {
			if a.Aliases, err = p.CollectAliases(); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// Preset converts the answers into the equivalent preset. JavaScript
// projects get a pinned React version setting.
func (a *Answers) Preset() *preset.Preset {
	cfg := object.New()
	if !a.TypeScript {
		cfg.Set("settings", object.New().
			Set("react", object.New().Set("version", reactVersion)))
	}
	return &preset.Preset{
		StyleGuide:       a.StyleGuide,
		TypeScript:       a.TypeScript,
		Aliases:          a.Aliases,
		AdditionalConfig: cfg,
	}
}
