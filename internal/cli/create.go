package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/create-mcp-server/internal/config"
	"github.com/agentx-labs/create-mcp-server/internal/prompt"
	"github.com/agentx-labs/create-mcp-server/internal/scaffold"
	"github.com/agentx-labs/create-mcp-server/internal/ui"
	"github.com/spf13/cobra"
)

// createOptions holds flag destinations. Effective values are read back
// through config so the file and environment can supply them too.
type createOptions struct {
	directory      string
	packageManager string
	atomic         bool
	verbose        bool
	configFile     string
}

// newPrompter is swapped out in tests.
var newPrompter = prompt.New

func runCreate(cmd *cobra.Command, args []string) error {
	con := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	directory := config.Get(config.KeyDirectory)

	if len(args) == 1 {
		return createProject(con, args[0], directory)
	}

	// No name given: ask for one.
	answers, err := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), directory).Ask()
	if errors.Is(err, prompt.ErrCancelled) {
		con.Notice("\nOperation cancelled")
		return nil
	}
	if err != nil {
		con.Error("Error reading answers: %v", err)
		return reported(err)
	}
	return createProject(con, answers.Name, answers.Directory)
}

func createProject(con *ui.Console, name, directory string) error {
	if err := scaffold.ValidateName(name); err != nil {
		con.Error("%v", err)
		return reported(err)
	}
	pm, err := scaffold.ParsePackageManager(config.Get(config.KeyPackageManager))
	if err != nil {
		con.Error("%v", err)
		return reported(err)
	}
	targetDir, err := filepath.Abs(filepath.Join(expandHome(directory), name))
	if err != nil {
		con.Error("Error resolving directory: %v", err)
		return reported(err)
	}

	con.Info("Creating new MCP server: %s", name)

	if err := scaffold.CheckTarget(targetDir); err != nil {
		if errors.Is(err, scaffold.ErrTargetExists) {
			con.Error("Directory %s already exists!", targetDir)
		} else {
			con.Error("Error creating project: %v", err)
		}
		return reported(err)
	}

	spec := scaffold.NewProjectSpec(name, targetDir)
	spec.PackageManager = pm
	spec.Dependencies[scaffold.SDKPackage] = config.Get(config.KeySDKVersion)
	spec.Dependencies[scaffold.ZodPackage] = config.Get(config.KeyZodVersion)

	opts := scaffold.Options{Atomic: config.GetBool(config.KeyAtomic)}
	if config.GetBool(config.KeyVerbose) {
		opts.OnCreate = func(rel string) {
			con.Detail("Generated: %s", rel)
		}
	}

	result, err := scaffold.Generate(spec, opts)
	if err != nil {
		con.Error("Error creating project: %v", err)
		return reported(err)
	}
	for _, w := range result.Warnings {
		con.Warn("%s", w)
	}

	con.Success("\nMCP server created successfully! 🎉")
	con.Notice("\nNext steps:")
	con.Step("1. cd %s", cdPath(targetDir))
	con.Step("2. %s", pm.Install())
	con.Step("3. %s", pm.Run("dev"))
	return nil
}

// cdPath returns dir relative to the working directory when it lies beneath
// it, and dir unchanged otherwise.
func cdPath(dir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir
	}
	return rel
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
