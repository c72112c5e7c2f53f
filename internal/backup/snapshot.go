package backup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lyvoxa/releasectl/internal/fsutil"
	"github.com/lyvoxa/releasectl/internal/messages"
)

// Entry is one captured file: its bytes plus the metadata worth restoring.
type Entry struct {
	Data    []byte
	Mode    fs.FileMode
	ModTime time.Time
}

// Snapshot is a point-in-time capture of a set of files, keyed by relative
// slash-separated path. It is independent of any on-disk backup layout, so
// capture, persistence, and restore can be tested in isolation.
type Snapshot map[string]Entry

// Capture reads the named files under root into a snapshot. Files that do not
// exist are skipped and reported in the second return value; that is not an
// error, managed files are allowed to be absent.
func Capture(root string, paths []string) (Snapshot, []string, error) {
	snap := Snapshot{}
	var skipped []string
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(full)
		if err != nil {
			if os.IsNotExist(err) {
				skipped = append(skipped, rel)
				continue
			}
			return nil, nil, fmt.Errorf(messages.BackupCaptureErrFmt, rel, err)
		}
		data, err := os.ReadFile(full)
		if err != nil {
			return nil, nil, fmt.Errorf(messages.BackupCaptureErrFmt, rel, err)
		}
		snap[filepath.ToSlash(rel)] = Entry{Data: data, Mode: info.Mode().Perm(), ModTime: info.ModTime()}
	}
	return snap, skipped, nil
}

// WriteTo persists the snapshot under dir, one file per entry, preserving
// relative paths and modification times.
func (s Snapshot) WriteTo(dir string) error {
	for rel, entry := range s {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf(messages.BackupWriteErrFmt, rel, err)
		}
		if err := os.WriteFile(full, entry.Data, entry.Mode); err != nil {
			return fmt.Errorf(messages.BackupWriteErrFmt, rel, err)
		}
		if err := os.Chtimes(full, entry.ModTime, entry.ModTime); err != nil {
			return fmt.Errorf(messages.BackupWriteErrFmt, rel, err)
		}
	}
	return nil
}

// Load reads every file under dir back into a snapshot.
func Load(dir string) (Snapshot, error) {
	snap := Snapshot{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[filepath.ToSlash(rel)] = Entry{Data: data, Mode: info.Mode().Perm(), ModTime: info.ModTime()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Apply writes every snapshot entry back under root, overwriting current
// content unconditionally. Returns the restored paths in lexicographic order.
func (s Snapshot) Apply(root string) ([]string, error) {
	var restored []string
	for _, rel := range s.paths() {
		entry := s[rel]
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return restored, fmt.Errorf(messages.BackupRestoreErrFmt, rel, err)
		}
		if err := fsutil.WriteFileAtomic(full, entry.Data, entry.Mode); err != nil {
			return restored, fmt.Errorf(messages.BackupRestoreErrFmt, rel, err)
		}
		if err := os.Chtimes(full, entry.ModTime, entry.ModTime); err != nil {
			return restored, fmt.Errorf(messages.BackupRestoreErrFmt, rel, err)
		}
		restored = append(restored, rel)
	}
	return restored, nil
}

func (s Snapshot) paths() []string {
	paths := make([]string, 0, len(s))
	for rel := range s {
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths
}
