// Package updater applies the pattern registry to managed files.
//
// Files are pure text to the updater: each rule is a global regex
// substitution run against the output of the previous rule. The updater never
// creates backups; the orchestrator snapshots the tree before calling Apply.
package updater

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lyvoxa/releasectl/internal/fsutil"
	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/registry"
)

// System abstracts the file operations Apply needs, enabling dependency
// injection in tests.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to a file atomically by writing a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// FileChange records one rewritten file with its content before and after,
// for diff previews.
type FileChange struct {
	Path   string
	Before string
	After  string
}

// Result describes what Apply did. It is reporting data only; control flow
// never branches on it.
type Result struct {
	Changed   []FileChange
	Unchanged []string
	Skipped   []string
}

// ChangedPaths returns the paths of rewritten files in processing order.
func (r *Result) ChangedPaths() []string {
	paths := make([]string, 0, len(r.Changed))
	for _, change := range r.Changed {
		paths = append(paths, change.Path)
	}
	return paths
}

// Apply runs every registry rule against its managed file under root, in
// lexicographic path order. Missing files are skipped; a file is rewritten
// only when its content actually changed. A template referencing an unknown
// field aborts the whole update.
func Apply(sys System, root string, reg *registry.Registry, fields map[string]string) (*Result, error) {
	result := &Result{}
	for _, rel := range reg.Paths() {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := sys.Stat(full); err != nil {
			if os.IsNotExist(err) {
				result.Skipped = append(result.Skipped, rel)
				continue
			}
			return nil, fmt.Errorf(messages.UpdaterReadErrFmt, rel, err)
		}

		data, err := sys.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf(messages.UpdaterReadErrFmt, rel, err)
		}
		original := string(data)

		content := original
		for _, rule := range reg.Rules(rel) {
			replacement, err := registry.Interpolate(rule.Template, fields)
			if err != nil {
				return nil, err
			}
			content = rule.Pattern.ReplaceAllLiteralString(content, replacement)
		}

		if content == original {
			result.Unchanged = append(result.Unchanged, rel)
			continue
		}
		if err := sys.WriteFileAtomic(full, []byte(content), filePerm(sys, full)); err != nil {
			return nil, fmt.Errorf(messages.UpdaterWriteErrFmt, rel, err)
		}
		result.Changed = append(result.Changed, FileChange{Path: rel, Before: original, After: content})
	}
	return result, nil
}

// filePerm preserves the existing file mode, falling back to 0644.
func filePerm(sys System, name string) os.FileMode {
	info, err := sys.Stat(name)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
