// Package config layers user defaults for project generation. Values come from
// ~/.create-mcp-server/config.yaml, CREATE_MCP_SERVER_* environment variables,
// and command-line flags, with flags taking precedence.
package config
