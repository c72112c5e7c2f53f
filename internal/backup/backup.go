// Package backup snapshots managed files before an update and restores them
// on rollback. Each update attempt gets one immutable, timestamped backup
// directory; backups are never deleted automatically.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lyvoxa/releasectl/internal/messages"
)

// ErrBackupNotFound reports a restore request against a backup that does not exist.
var ErrBackupNotFound = errors.New(messages.BackupNotFoundErr)

// ErrNoBackups reports that no backups exist to restore from.
var ErrNoBackups = errors.New(messages.BackupNoBackupsErr)

const (
	dirPrefix       = "backup_"
	timestampLayout = "20060102_150405"
)

// nowFunc is replaced in tests to pin backup directory names.
var nowFunc = time.Now

// Handle identifies one backup directory by absolute path.
type Handle string

// Manager owns the backup directory for one project tree.
type Manager struct {
	root string
	dir  string
}

// NewManager returns a manager for the project at root storing backups in dir.
// dir may be absolute or relative to root.
func NewManager(root string, dir string) *Manager {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return &Manager{root: root, dir: dir}
}

// Dir returns the backup storage directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Create captures the named files (relative to the project root) into a new
// timestamped backup directory. Missing files are skipped and reported, not
// treated as errors. The second-resolution timestamp names the backup; a
// same-second collision gets a numeric suffix that keeps ordering intact.
func (m *Manager) Create(paths []string) (Handle, []string, error) {
	snap, skipped, err := Capture(m.root, paths)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", nil, fmt.Errorf(messages.BackupCreateDirFmt, m.dir, err)
	}

	base := dirPrefix + nowFunc().Format(timestampLayout)
	name := base
	for i := 2; ; i++ {
		candidate := filepath.Join(m.dir, name)
		if err := os.Mkdir(candidate, 0o755); err == nil {
			break
		} else if !os.IsExist(err) {
			return "", nil, fmt.Errorf(messages.BackupCreateDirFmt, candidate, err)
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}

	dest := filepath.Join(m.dir, name)
	if err := snap.WriteTo(dest); err != nil {
		return "", nil, err
	}
	return Handle(dest), skipped, nil
}

// Restore copies every file captured in the backup back under the project
// root, overwriting current content byte for byte. Returns the restored
// relative paths.
func (m *Manager) Restore(h Handle) ([]string, error) {
	info, err := os.Stat(string(h))
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf(messages.BackupNotFoundFmt, ErrBackupNotFound, h)
	}
	snap, err := Load(string(h))
	if err != nil {
		return nil, fmt.Errorf(messages.BackupRestoreErrFmt, h, err)
	}
	return snap.Apply(m.root)
}

// Resolve turns a backup id (directory name or path) into a handle. An empty
// id resolves to the most recent backup.
func (m *Manager) Resolve(id string) (Handle, error) {
	if id == "" {
		h, ok, err := m.Latest()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrNoBackups
		}
		return h, nil
	}
	if filepath.IsAbs(id) || strings.ContainsRune(id, os.PathSeparator) {
		return Handle(id), nil
	}
	return Handle(filepath.Join(m.dir, id)), nil
}

// Latest returns the most recently created backup. Backup names are
// timestamped, so lexicographic order is creation order.
func (m *Manager) Latest() (Handle, bool, error) {
	handles, err := m.list()
	if err != nil {
		return "", false, err
	}
	if len(handles) == 0 {
		return "", false, nil
	}
	return handles[len(handles)-1], true, nil
}

func (m *Manager) list() ([]Handle, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.BackupListErrFmt, m.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), dirPrefix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	handles := make([]Handle, 0, len(names))
	for _, name := range names {
		handles = append(handles, Handle(filepath.Join(m.dir, name)))
	}
	return handles, nil
}
