// Package commands implements the CLI commands for the bump tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/bump/internal/adapters/telemetry" //nolint:depguard // Trace export is a CLI concern
	"go.trai.ch/bump/internal/app"
	"go.trai.ch/bump/internal/build"
	"go.trai.ch/bump/internal/core/domain"
)

// envPrefix namespaces the environment variables bound to flags, e.g. BUMP_DRY_RUN.
const envPrefix = "BUMP"

// CLI represents the command line interface for bump.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	v       *viper.Viper
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &CLI{
		app: a,
		v:   v,
	}

	rootCmd := &cobra.Command{
		Use:   "bump",
		Short: "Bump package versions across a workspace",
		Long: "bump picks the next version, rewrites the manifests of every workspace package\n" +
			"affected since the last version commit, then commits and tags the result.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runBump,
	}

	rootCmd.SetVersionTemplate("Version: {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.StringP("dir", "C", ".", "Workspace root directory")
	flags.StringP("config", "c", "", "Configuration file (default: .bump.yaml, .bump.yml or .bump.toml)")
	flags.String("to", "", "Set an explicit new version")
	flags.String("bump", "", "Increment kind: "+kindList())
	flags.String("preid", "", "Prerelease identifier used with --bump")
	flags.Bool("direct-only", false, "Only bump directly changed packages, skip dependents")
	flags.StringSlice("include", nil, "Treat the named packages as changed")
	flags.Bool("dry-run", false, "Resolve and print the affected packages without writing")
	flags.Bool("no-commit", false, "Write manifests without committing")
	flags.Bool("no-tag", false, "Commit without creating a tag")

	rootCmd.PersistentFlags().Bool("suppress-error", false, "Exit with status 0 even when the bump fails")
	rootCmd.PersistentFlags().Bool("trace", false, "Export trace spans to stderr")

	_ = v.BindPFlags(rootCmd.Flags())
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// SuppressError reports whether failures should still exit with status 0.
func (c *CLI) SuppressError() bool {
	return c.v.GetBool("suppress-error")
}

func (c *CLI) runBump(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if c.v.GetBool("trace") {
		shutdown, err := telemetry.Setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	result, err := c.app.Bump(ctx, app.RunOptions{
		Dir:              c.v.GetString("dir"),
		ConfigPath:       c.v.GetString("config"),
		To:               c.v.GetString("to"),
		Bump:             c.v.GetString("bump"),
		Preid:            c.v.GetString("preid"),
		OnlyDirectImpact: c.v.GetBool("direct-only"),
		Include:          c.includes(),
		DryRun:           c.v.GetBool("dry-run"),
		NoCommit:         c.v.GetBool("no-commit"),
		NoTag:            c.v.GetBool("no-tag"),
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// includes returns the forced package names. Values from BUMP_INCLUDE arrive
// as a single string, so every entry is split on commas.
func (c *CLI) includes() []string {
	var names []string
	for _, entry := range c.v.GetStringSlice("include") {
		for name := range strings.SplitSeq(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func printResult(w io.Writer, result *domain.Result) {
	if result.Outcome == domain.OutcomeNothingAffected {
		_, _ = fmt.Fprintf(w, "no package affected since %s\n", result.PreviousVersion)
		return
	}

	_, _ = fmt.Fprint(w, app.FormatPlan(result.Waves))
	for _, file := range result.Touched {
		_, _ = fmt.Fprintf(w, "updated %s\n", file)
	}

	switch result.Outcome {
	case domain.OutcomePlanned:
		_, _ = fmt.Fprintf(w, "dry run: %s -> %s\n", result.PreviousVersion, result.Version)
	case domain.OutcomeBumped:
		_, _ = fmt.Fprintf(w, "bumped %s -> %s\n", result.PreviousVersion, result.Version)
		if result.Tag != "" {
			_, _ = fmt.Fprintf(w, "tagged %s\n", result.Tag)
		}
	}
}

func kindList() string {
	kinds := make([]string, len(domain.BumpKinds))
	for i, k := range domain.BumpKinds {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ", ")
}
