package release

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lyvoxa/releasectl/internal/backup"
	"github.com/lyvoxa/releasectl/internal/config"
	"github.com/lyvoxa/releasectl/internal/record"
	"github.com/lyvoxa/releasectl/internal/testutil"
)

const recordFixture = `# Lyvoxa version record
semantic = "1.5.0"
release_name = "Stellar"
release_number = "1.5"
release_tag = "stellar-1.5"
`

func fixtureConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"version.toml": recordFixture,
		"Cargo.toml":   "[package]\nname = \"lyvoxa\"\nversion = \"1.5.0\"\n",
		"CHANGELOG.md": "# Changelog\n\n## [Unreleased]\n",
	})
	return &config.Config{
		Root:       root,
		RecordFile: "version.toml",
		BackupDir:  t.TempDir(),
		BuildCheck: []string{"cargo", "check", "--quiet"},
	}, root
}

func stubBuildTool(t *testing.T, exitCode int) {
	t.Helper()
	binDir := t.TempDir()
	testutil.WriteStubWithExit(t, binDir, "cargo", exitCode)
	t.Setenv("PATH", binDir)
}

func pinNow(t *testing.T, value time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return value }
	t.Cleanup(func() { nowFunc = prev })
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestUpdatePropagatesVersionEverywhere(t *testing.T) {
	cfg, root := fixtureConfig(t)
	stubBuildTool(t, 0)
	pinNow(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}

	summary, err := o.Update("1.6.0", "Matrix", "1.6")
	if err != nil {
		t.Fatalf("update: %v\noutput:\n%s", err, out.String())
	}

	rec, err := record.Read(cfg.RecordPath())
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	want := record.Record{Semantic: "1.6.0", ReleaseName: "Matrix", ReleaseNumber: "1.6", ReleaseTag: "matrix-1.6"}
	if rec != want {
		t.Fatalf("record = %+v, want %+v", rec, want)
	}

	cargo := readFile(t, filepath.Join(root, "Cargo.toml"))
	if !strings.Contains(cargo, "version = \"1.6.0\"") {
		t.Fatalf("Cargo.toml not updated:\n%s", cargo)
	}

	changelog := readFile(t, filepath.Join(root, "CHANGELOG.md"))
	if !strings.Contains(changelog, "## [1.6.0] - Matrix Edition - 2026-03-14") {
		t.Fatalf("changelog entry missing:\n%s", changelog)
	}
	if !strings.HasPrefix(changelog, "# Changelog\n\n## [Unreleased]\n") {
		t.Fatalf("unreleased heading disturbed:\n%s", changelog)
	}

	if summary.Backup == "" {
		t.Fatal("expected a backup handle in the summary")
	}
	if len(summary.Result.Changed) == 0 {
		t.Fatal("expected at least one changed file")
	}
}

func TestUpdateRejectsBadVersionBeforeTouchingAnything(t *testing.T) {
	cfg, root := fixtureConfig(t)
	before := testutil.ReadTree(t, root)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}

	if _, err := o.Update("1.6", "Matrix", "1.6"); !errors.Is(err, record.ErrInvalidVersion) {
		t.Fatalf("expected invalid version error, got %v", err)
	}
	if got := testutil.ReadTree(t, root); len(got) != len(before) {
		t.Fatalf("tree changed: %d files, want %d", len(got), len(before))
	}
	if entries, err := os.ReadDir(cfg.BackupDir); err != nil || len(entries) != 0 {
		t.Fatalf("expected no backup, got %v entries (err %v)", len(entries), err)
	}
}

func TestUpdateMissingRecordIsTerminal(t *testing.T) {
	cfg, _ := fixtureConfig(t)
	if err := os.Remove(cfg.RecordPath()); err != nil {
		t.Fatalf("remove record: %v", err)
	}

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	if _, err := o.Update("1.6.0", "Matrix", "1.6"); !errors.Is(err, record.ErrMissingRecord) {
		t.Fatalf("expected missing record error, got %v", err)
	}
}

func TestUpdateRollsBackWhenValidationFails(t *testing.T) {
	cfg, root := fixtureConfig(t)
	stubBuildTool(t, 101)
	before := testutil.ReadTree(t, root)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}

	_, err = o.Update("1.6.0", "Matrix", "1.6")
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	after := testutil.ReadTree(t, root)
	for rel, content := range before {
		if after[rel] != content {
			t.Fatalf("%s not restored byte for byte", rel)
		}
	}
	if !strings.Contains(out.String(), "Rolling back") {
		t.Fatalf("expected rollback notice in output:\n%s", out.String())
	}
}

func TestUpdateWarnsOnDowngrade(t *testing.T) {
	cfg, _ := fixtureConfig(t)
	stubBuildTool(t, 0)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	if _, err := o.Update("1.4.0", "Legacy", "1.4"); err != nil {
		t.Fatalf("downgrade must be allowed: %v", err)
	}
	if !strings.Contains(out.String(), "does not sort after") {
		t.Fatalf("expected downgrade warning:\n%s", out.String())
	}
}

func TestRollbackRestoresLatestBackup(t *testing.T) {
	cfg, root := fixtureConfig(t)
	stubBuildTool(t, 0)
	before := testutil.ReadTree(t, root)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	if _, err := o.Update("1.6.0", "Matrix", "1.6"); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := o.Rollback(""); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	after := testutil.ReadTree(t, root)
	for rel, content := range before {
		if after[rel] != content {
			t.Fatalf("%s not restored byte for byte", rel)
		}
	}
}

func TestRollbackByName(t *testing.T) {
	cfg, _ := fixtureConfig(t)
	stubBuildTool(t, 0)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	summary, err := o.Update("1.6.0", "Matrix", "1.6")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	name := filepath.Base(string(summary.Backup))
	if err := o.Rollback(name); err != nil {
		t.Fatalf("rollback by name: %v", err)
	}
	rec, err := o.Current()
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	if rec.Semantic != "1.5.0" {
		t.Fatalf("record not restored, semantic = %q", rec.Semantic)
	}
}

func TestRollbackWithoutBackups(t *testing.T) {
	cfg, _ := fixtureConfig(t)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	if err := o.Rollback(""); !errors.Is(err, backup.ErrNoBackups) {
		t.Fatalf("expected no-backups error, got %v", err)
	}
}

func TestRollbackUnknownBackup(t *testing.T) {
	cfg, _ := fixtureConfig(t)

	var out bytes.Buffer
	o, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	if err := o.Rollback("backup_19990101_000000"); !errors.Is(err, backup.ErrBackupNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
