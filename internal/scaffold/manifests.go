package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// packageJSON mirrors the generated package.json. Field order is the order
// the keys appear in the file.
type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Main            string            `json:"main"`
	Scripts         packageScripts    `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type packageScripts struct {
	Build string `json:"build"`
	Start string `json:"start"`
	Dev   string `json:"dev"`
}

type tsconfigJSON struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

type compilerOptions struct {
	Target                           string `json:"target"`
	Module                           string `json:"module"`
	ModuleResolution                 string `json:"moduleResolution"`
	OutDir                           string `json:"outDir"`
	RootDir                          string `json:"rootDir"`
	Strict                           bool   `json:"strict"`
	ESModuleInterop                  bool   `json:"esModuleInterop"`
	SkipLibCheck                     bool   `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
}

// tsconfig is the same for every project.
var tsconfig = tsconfigJSON{
	CompilerOptions: compilerOptions{
		Target:                           "ES2022",
		Module:                           "Node16",
		ModuleResolution:                 "Node16",
		OutDir:                           "./dist",
		RootDir:                          "./src",
		Strict:                           true,
		ESModuleInterop:                  true,
		SkipLibCheck:                     true,
		ForceConsistentCasingInFileNames: true,
	},
	Include: []string{"src/**/*"},
	Exclude: []string{"node_modules"},
}

func renderPackageJSON(s *ProjectSpec) ([]byte, error) {
	return encodeJSON(packageJSON{
		Name:        s.Name,
		Version:     s.Version,
		Description: s.Description(),
		Type:        "module",
		Main:        "dist/index.js",
		Scripts: packageScripts{
			Build: "tsc",
			Start: "node dist/index.js",
			Dev:   "tsx watch src/index.ts",
		},
		Dependencies:    s.Dependencies,
		DevDependencies: s.DevDependencies,
	})
}

func renderTSConfig(*ProjectSpec) ([]byte, error) {
	return encodeJSON(tsconfig)
}

// encodeJSON writes v with two-space indentation and a trailing newline,
// leaving <, > and & unescaped.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}
