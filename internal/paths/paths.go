// Package paths resolves file system locations used by wafctl.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrDocsDirNotFound indicates the docs directory could not be located.
	ErrDocsDirNotFound = errors.New("docs directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// DefaultDocsDir is the docs tree location relative to the working
// directory when no explicit directory is configured.
const DefaultDocsDir = "docs"

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ResolveDocsDir returns the docs tree root.
// An explicit dir wins; otherwise DefaultDocsDir under the working
// directory is used. The directory must exist.
func ResolveDocsDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = DefaultDocsDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving docs directory")
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrDocsDirNotFound, "%s", abs)
		}
		return "", errors.Wrap(err, "checking docs directory")
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrDocsDirNotFound, "%s is not a directory", abs)
	}

	return abs, nil
}

// PillarDir returns the directory holding one pillar's pages.
func PillarDir(docsDir, pillarSlug string) string {
	return filepath.Join(docsDir, pillarSlug)
}

// IndexFile returns the index page path for a pillar.
func IndexFile(docsDir, pillarSlug string) string {
	return filepath.Join(docsDir, pillarSlug, "index.md")
}

// QuestionFile returns the page path for a question ID within a pillar.
func QuestionFile(docsDir, pillarSlug, questionID string) string {
	return filepath.Join(docsDir, pillarSlug, questionID+".md")
}
