// Package cli defines the Cobra command for create-mcp-server. The root
// command takes an optional project name, prompts for it when missing, and
// delegates generation to the scaffold package. It only handles flag parsing,
// I/O formatting, and user interaction.
package cli
