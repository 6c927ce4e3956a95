// Package prompt collects the project name and parent directory when the CLI
// is invoked without a name. Terminals get a form; pipes and redirected input
// get a plain line reader. Cancelling either one yields ErrCancelled, which
// callers treat as a clean exit rather than a failure.
package prompt
