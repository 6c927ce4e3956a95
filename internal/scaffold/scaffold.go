package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/create-mcp-server/internal/manifest"
)

// ErrTargetExists is returned when the target directory is already present.
var ErrTargetExists = errors.New("target directory already exists")

// writeFile is swapped out in tests to simulate a failing disk.
var writeFile = os.WriteFile

// layoutDirs are created, in order, under the target directory.
var layoutDirs = []string{"src", "src/tools"}

// artifact is one generated file. Path is slash-separated and relative to the
// target directory.
type artifact struct {
	Path   string
	Kind   manifest.Kind // set for files checked against a schema
	render func(*ProjectSpec) ([]byte, error)
}

// renderedFile is an artifact's content, ready to be flushed to disk.
type renderedFile struct {
	Path    string
	Kind    manifest.Kind
	Content []byte
}

// artifacts returns the files of a project in the order they are written.
func artifacts(s *ProjectSpec) []artifact {
	return []artifact{
		{Path: "package.json", Kind: manifest.KindPackage, render: renderPackageJSON},
		{Path: "tsconfig.json", Kind: manifest.KindTSConfig, render: renderTSConfig},
		{Path: "src/index.ts", render: fromTemplate("src/index.ts.tmpl")},
		{Path: "src/tools/" + s.Tool.Name + ".ts", render: fromTemplate("src/tools/tool.ts.tmpl")},
		{Path: "README.md", render: fromTemplate("README.md.tmpl")},
	}
}

// Options tune a single Generate call.
type Options struct {
	// Atomic generates into a staging directory next to the target and
	// renames it into place only when every file was written. Without it a
	// failure part way through leaves a partially populated target.
	Atomic bool

	// OnCreate, if set, is called with the relative path of every directory
	// and file as it is created.
	OnCreate func(rel string)
}

// Result holds the outcome of a project generation.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string
	Warnings  []string
}

// CheckTarget returns ErrTargetExists if dir is present. The check is not
// atomic with the creation that follows.
func CheckTarget(dir string) error {
	_, err := os.Lstat(dir)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrTargetExists, dir)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking %s: %w", dir, err)
	}
}

// renderAll produces every file's content in memory without touching disk.
func renderAll(s *ProjectSpec) ([]renderedFile, error) {
	var files []renderedFile
	for _, a := range artifacts(s) {
		content, err := a.render(s)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", a.Path, err)
		}
		files = append(files, renderedFile{Path: a.Path, Kind: a.Kind, Content: content})
	}
	return files, nil
}

// Generate creates a new project at s.TargetDir.
func Generate(s *ProjectSpec, opts Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := CheckTarget(s.TargetDir); err != nil {
		return nil, err
	}

	files, err := renderAll(s)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: s.TargetDir}
	if opts.Atomic {
		err = writeAtomic(s.TargetDir, files, opts, result)
	} else {
		err = writeTree(s.TargetDir, files, opts, result)
	}
	if err != nil {
		return nil, err
	}

	result.Warnings = checkManifests(files)
	return result, nil
}

// writeTree creates the layout and writes files under root in a fixed order.
func writeTree(root string, files []renderedFile, opts Options, result *Result) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	result.Dirs = append(result.Dirs, ".")
	notify(opts, ".")

	for _, dir := range layoutDirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
		result.Dirs = append(result.Dirs, dir)
		notify(opts, dir)
	}

	for _, f := range files {
		outPath := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := writeFile(outPath, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, f.Path)
		notify(opts, f.Path)
	}
	return nil
}

// writeAtomic builds the tree in a hidden sibling directory and renames it
// to root once complete. The staging directory is removed on any failure.
func writeAtomic(root string, files []renderedFile, opts Options, result *Result) (err error) {
	parent := filepath.Dir(root)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(root)+".staging-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(staging)
		}
	}()

	// MkdirTemp creates 0700; match the permissions of a direct write.
	if err := os.Chmod(staging, 0755); err != nil {
		return fmt.Errorf("setting staging permissions: %w", err)
	}
	if err := writeTree(staging, files, opts, result); err != nil {
		return err
	}

	// Narrow the window left by the first check.
	if err := CheckTarget(root); err != nil {
		return err
	}
	if err := os.Rename(staging, root); err != nil {
		return fmt.Errorf("promoting staging directory: %w", err)
	}
	return nil
}

// checkManifests validates generated manifests against their schemas and
// reports issues as warnings.
func checkManifests(files []renderedFile) []string {
	var warnings []string
	for _, f := range files {
		if f.Kind == "" {
			continue
		}
		res, err := manifest.Validate(f.Kind, f.Content)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", f.Path, err))
			continue
		}
		for _, issue := range res.Issues {
			warnings = append(warnings, fmt.Sprintf("%s: %s", f.Path, issue))
		}
	}
	return warnings
}

func notify(opts Options, rel string) {
	if opts.OnCreate != nil {
		opts.OnCreate(rel)
	}
}
