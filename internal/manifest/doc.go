// Package manifest checks the manifests a generated project ships with. It
// validates package.json and tsconfig.json against embedded JSON Schemas and
// validates semver versions and dependency ranges before they are written.
package manifest
