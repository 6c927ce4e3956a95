package scaffold

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/agentx-labs/create-mcp-server/internal/manifest"
)

// Package names pinned in the generated manifest.
const (
	SDKPackage = "@modelcontextprotocol/sdk"
	ZodPackage = "zod"
)

// ProjectVersion is the version every generated project starts at.
const ProjectVersion = "1.0.0"

// PackageManager selects the commands printed in the README and next steps.
// It does not change the generated manifest.
type PackageManager string

const (
	Yarn PackageManager = "yarn"
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
)

// ParsePackageManager converts a flag or config value to a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(strings.ToLower(strings.TrimSpace(s))); pm {
	case Yarn, NPM, PNPM:
		return pm, nil
	case "":
		return Yarn, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q: must be yarn, npm, or pnpm", s)
	}
}

// Install returns the dependency install command.
func (pm PackageManager) Install() string {
	return string(pm) + " install"
}

// Run returns the command that runs a package.json script.
func (pm PackageManager) Run(script string) string {
	if pm == NPM {
		if script == "start" {
			return "npm start"
		}
		return "npm run " + script
	}
	return string(pm) + " " + script
}

// ExampleTool describes the single tool the generated server registers.
type ExampleTool struct {
	Name        string // e.g., "my-first-tool"; also the file stem under src/tools
	Ident       string // Derived: TypeScript identifier, e.g., "myFirstTool"
	Description string
}

// NewExampleTool creates an ExampleTool with derived fields populated.
func NewExampleTool(name, description string) ExampleTool {
	return ExampleTool{
		Name:        name,
		Ident:       strcase.LowerCamelCase(name),
		Description: description,
	}
}

// ProjectSpec holds everything the generator needs for one project.
type ProjectSpec struct {
	Name            string
	TargetDir       string
	Version         string
	PackageManager  PackageManager
	Dependencies    map[string]string
	DevDependencies map[string]string
	Tool            ExampleTool
}

// NewProjectSpec creates a ProjectSpec with the stock dependency set.
func NewProjectSpec(name, targetDir string) *ProjectSpec {
	return &ProjectSpec{
		Name:           name,
		TargetDir:      targetDir,
		Version:        ProjectVersion,
		PackageManager: Yarn,
		Dependencies: map[string]string{
			SDKPackage: "^1.2.0",
			ZodPackage: "^3.22.4",
		},
		DevDependencies: map[string]string{
			"@types/node": "^20.11.24",
			"tsx":         "^4.19.3",
			"typescript":  "^5.3.3",
		},
		Tool: NewExampleTool("my-first-tool", "A simple example tool"),
	}
}

// Description is the manifest description derived from the name.
func (s *ProjectSpec) Description() string {
	return s.Name + " MCP server"
}

// AllDependencies returns runtime and development ranges in one map.
func (s *ProjectSpec) AllDependencies() map[string]string {
	all := maps.Clone(s.Dependencies)
	if all == nil {
		all = make(map[string]string, len(s.DevDependencies))
	}
	maps.Copy(all, s.DevDependencies)
	return all
}

// Validate checks the spec before anything touches the filesystem.
func (s *ProjectSpec) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if !filepath.IsAbs(s.TargetDir) {
		return fmt.Errorf("target directory %q must be absolute", s.TargetDir)
	}
	if _, err := manifest.ParseVersion(s.Version); err != nil {
		return fmt.Errorf("project version: %w", err)
	}
	if _, err := ParsePackageManager(string(s.PackageManager)); err != nil {
		return err
	}
	if err := manifest.ValidateDependencies(s.AllDependencies()); err != nil {
		return err
	}
	return nil
}

// ValidateName rejects names that cannot be used as a directory name or that
// would break the quoted strings they are embedded in. Spaces are allowed.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.ContainsAny(name, "\t\n\r/\\:*?\"<>|`") {
		return fmt.Errorf("invalid project name %q: contains invalid characters", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid project name %q: cannot start with a dot", name)
	}
	return nil
}
