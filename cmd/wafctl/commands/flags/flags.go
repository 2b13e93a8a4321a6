// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (generate, fix, question, registry).
package flags

// docsDir holds the value of the --docs-dir flag.
var docsDir string

// dryRun holds the value of the --dry-run flag.
var dryRun bool

// GetDocsDir returns the current value of the --docs-dir flag.
// Empty means the flag was not passed and configuration decides.
func GetDocsDir() string {
	return docsDir
}

// SetDocsDir sets the docs-dir flag value. Called by the root command
// after parsing, and by tests.
func SetDocsDir(dir string) {
	docsDir = dir
}

// GetDryRun returns the current value of the --dry-run flag.
func GetDryRun() bool {
	return dryRun
}

// SetDryRun sets the dry-run flag value.
func SetDryRun(v bool) {
	dryRun = v
}
