package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentx-labs/create-mcp-server/internal/branding"
	"github.com/agentx-labs/create-mcp-server/internal/config"
	"github.com/agentx-labs/create-mcp-server/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// reportedError marks an error the command already printed to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func newRootCmd() *cobra.Command {
	opts := &createOptions{}

	version := buildVersion
	if version == "" {
		version = "dev"
	}

	cmd := &cobra.Command{
		Use:           branding.CLIName() + " [name]",
		Short:         branding.Description(),
		Long:          longHelp(),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(opts.configFile); err != nil {
				return err
			}
			return config.BindFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.directory, "directory", "d", config.DefaultDirectory, "Target directory")
	cmd.Flags().StringVar(&opts.packageManager, "package-manager", config.DefaultPackageManager, "Package manager used in instructions: yarn, npm, or pnpm")
	cmd.Flags().BoolVar(&opts.atomic, "atomic", false, "Generate in a staging directory and move it into place only on success")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "List every generated file")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Config file (default: ~/"+branding.HomeDir()+"/config.yaml)")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}} (commit: %s, built: %s)\n",
		branding.CLIName(), orUnknown(buildCommit), orUnknown(buildDate)))

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(newRootCmd())
}

// execute runs cmd and prints any error the command did not report itself.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var rep *reportedError
	if !errors.As(err, &rep) {
		ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).Error("Error: %v", err)
	}
	return err
}

// longHelp describes the command, its examples and the environment variables
// that override flag defaults.
func longHelp() string {
	name := branding.CLIName()
	var b strings.Builder
	fmt.Fprintf(&b, "%s: create a new TypeScript MCP server project.\n\n", branding.DisplayName())
	b.WriteString("With a name, the project is created at <directory>/<name>. Without one, you are\n")
	b.WriteString("prompted for the name and the directory.\n\n")
	b.WriteString("Examples:\n")
	fmt.Fprintf(&b, "  %s weather\n", name)
	fmt.Fprintf(&b, "  %s weather --directory ~/projects --package-manager npm\n", name)
	fmt.Fprintf(&b, "  %s\n\n", name)
	b.WriteString("Environment:\n")
	for _, key := range config.EnvKeys {
		fmt.Fprintf(&b, "  %s\n", branding.EnvVar(key))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
