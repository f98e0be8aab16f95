// Package prompt implements interactive version and package selection with huh forms.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

const customChoice = "\x00custom"

var errInvalidVersion = errors.New("Must be a valid semver version") //nolint:staticcheck // shown verbatim to the user

// Prompter asks the user through huh forms on a terminal.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	accessible  bool
	interactive bool
}

// New creates a Prompter bound to stdin and stderr. Setting ACCESSIBLE
// switches the forms to plain line prompts. Prompts are disabled when stdin
// is not a terminal or CI is set.
func New() *Prompter {
	return newTerminal(os.Stdin, os.Stderr)
}

func newTerminal(in *os.File, out io.Writer) *Prompter {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return &Prompter{
		in:          in,
		out:         out,
		accessible:  os.Getenv("ACCESSIBLE") != "",
		interactive: term.IsTerminal(int(in.Fd())) && !isCI,
	}
}

// NewAccessible creates a Prompter that reads numbered answers from in.
func NewAccessible(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:          in,
		out:         out,
		accessible:  true,
		interactive: true,
	}
}

// Interactive reports whether a user can answer prompts.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// SelectIdentifier asks for the prerelease identifier. The empty identifier
// is always offered first.
func (p *Prompter) SelectIdentifier(ctx context.Context, identifiers []string) (string, error) {
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, id := range identifiers {
		if id != "" {
			options = append(options, huh.NewOption(id, id))
		}
	}

	var identifier string
	field := huh.NewSelect[string]().
		Title("Select a new identifier:").
		Options(options...).
		Value(&identifier)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return identifier, nil
}

// SelectVersion asks for the next version among choices, or a custom one.
func (p *Prompter) SelectVersion(ctx context.Context, current string, choices []domain.VersionChoice) (string, error) {
	options := make([]huh.Option[string], 0, len(choices)+1)
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label(current), c.Version))
	}
	options = append(options, huh.NewOption("Custom", customChoice))

	var version string
	field := huh.NewSelect[string]().
		Title("Select a new version:").
		Options(options...).
		Value(&version)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	if version != customChoice {
		return version, nil
	}

	var custom string
	input := huh.NewInput().
		Title("Enter a custom version:").
		Value(&custom).
		Validate(func(s string) error {
			if _, err := domain.ParseVersion(s); err != nil {
				return errInvalidVersion
			}
			return nil
		})

	if err := p.run(ctx, input); err != nil {
		return "", err
	}
	v, err := domain.ParseVersion(custom)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// SelectPackages asks which packages to bump when nothing was affected.
func (p *Prompter) SelectPackages(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var selected []string
	field := huh.NewMultiSelect[string]().
		Title("No package changed since the last version. Select packages to bump:").
		Options(huh.NewOptions(names...)...).
		Value(&selected)

	if err := p.run(ctx, field); err != nil {
		return nil, err
	}
	return selected, nil
}

func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
	return nil
}
