// Package scaffold generates new TypeScript MCP server projects. Generate
// writes a fixed layout (package.json, tsconfig.json, a stdio server entry
// point, one example tool, and a README) under a target directory that must
// not exist yet. Templates are embedded in the binary.
package scaffold
