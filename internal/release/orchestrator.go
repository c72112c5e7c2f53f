// Package release sequences a version update into a single
// all-or-nothing-feeling operation: snapshot, rewrite, validate, and roll
// back on any failure. It is the only component that writes the version
// record or restores a backup.
package release

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"golang.org/x/mod/semver"

	"github.com/lyvoxa/releasectl/internal/backup"
	"github.com/lyvoxa/releasectl/internal/config"
	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/record"
	"github.com/lyvoxa/releasectl/internal/registry"
	"github.com/lyvoxa/releasectl/internal/updater"
	"github.com/lyvoxa/releasectl/internal/validate"
)

// ErrBackupFailed reports that the pre-update snapshot could not be created.
var ErrBackupFailed = errors.New(messages.ReleaseBackupFailedErr)

// ErrValidationFailed reports that post-update checks failed and the tree was rolled back.
var ErrValidationFailed = errors.New(messages.ReleaseValidationFailedErr)

// ErrRestoreFailed reports that rollback itself failed; the tree may be inconsistent.
var ErrRestoreFailed = errors.New(messages.ReleaseRestoreFailedErr)

// nowFunc is replaced in tests to pin changelog dates.
var nowFunc = time.Now

// Orchestrator owns the update pipeline for one project.
type Orchestrator struct {
	Config   *config.Config
	Registry *registry.Registry
	Backups  *backup.Manager
	Sys      updater.System
	Runner   validate.Runner
	Out      io.Writer
}

// Summary describes a completed update for reporting; nothing branches on it.
type Summary struct {
	Record record.Record
	Result *updater.Result
	Backup backup.Handle
}

// New builds an orchestrator for the loaded configuration. The zero
// dependencies (filesystem, subprocesses) default to the real ones.
func New(cfg *config.Config, out io.Writer) (*Orchestrator, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		Config:   cfg,
		Registry: reg,
		Backups:  backup.NewManager(cfg.Root, cfg.BackupDir),
		Sys:      updater.RealSystem{},
		Runner:   validate.RealRunner{},
		Out:      out,
	}, nil
}

// Current reads the version record.
func (o *Orchestrator) Current() (record.Record, error) {
	return record.Read(o.Config.RecordPath())
}

// Validate runs the validator against the current tree.
func (o *Orchestrator) Validate() []validate.Result {
	return validate.Run(o.Runner, o.Config.Root, o.Config.BuildCheck, o.Registry)
}

// Update propagates the new version through the record and every managed
// file. Input and precondition failures leave the tree untouched; any
// failure after the backup is rolled back before the error is returned.
func (o *Orchestrator) Update(version string, releaseName string, releaseNumber string) (*Summary, error) {
	if err := record.ValidateSemantic(version); err != nil {
		return nil, err
	}
	current, err := o.Current()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(o.Out, messages.UpdateCurrentFmt, orUnknown(current.Semantic), orUnknown(current.ReleaseName), orUnknown(current.ReleaseNumber))
	fmt.Fprintf(o.Out, messages.UpdateNewFmt, version, releaseName, releaseNumber)
	o.warnOnDowngrade(current.Semantic, version)

	handle, _, err := o.Backups.Create(o.backupPaths())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackupFailed, err)
	}
	fmt.Fprintf(o.Out, messages.BackupCreatedFmt, handle)

	summary, err := o.run(version, releaseName, releaseNumber)
	if err != nil {
		fmt.Fprintf(o.Out, messages.ReleaseUpdateFailedFmt, err)
		fmt.Fprintln(o.Out, messages.ReleaseRollingBack)
		restored, restoreErr := o.Backups.Restore(handle)
		if restoreErr != nil {
			return nil, fmt.Errorf(messages.ReleaseRestoreFailedFmt, ErrRestoreFailed, restoreErr)
		}
		for _, rel := range restored {
			fmt.Fprintf(o.Out, messages.BackupRestoredFmt, rel)
		}
		fmt.Fprintln(o.Out, color.YellowString(messages.ReleaseRolledBack))
		return nil, err
	}

	summary.Backup = handle
	return summary, nil
}

// run executes the mutating span of the pipeline: record write, file
// updates, changelog entry, and validation. Every error here is recoverable
// by restoring the caller's backup.
func (o *Orchestrator) run(version string, releaseName string, releaseNumber string) (*Summary, error) {
	rec := record.Record{
		Semantic:      version,
		ReleaseName:   releaseName,
		ReleaseNumber: releaseNumber,
		ReleaseTag:    record.ReleaseTag(releaseName, releaseNumber),
	}
	if err := record.Write(o.Config.RecordPath(), rec); err != nil {
		return nil, err
	}
	fmt.Fprintln(o.Out, color.GreenString(messages.RecordUpdated))

	result, err := updater.Apply(o.Sys, o.Config.Root, o.Registry, rec.Fields())
	if err != nil {
		return nil, err
	}
	o.reportApply(result)

	if err := o.appendChangelog(rec); err != nil {
		return nil, err
	}

	fmt.Fprintln(o.Out, messages.ValidateRunning)
	results := o.Validate()
	for _, r := range results {
		validate.PrintResult(o.Out, r)
	}
	if !validate.Passed(results) {
		return nil, ErrValidationFailed
	}
	fmt.Fprintln(o.Out, color.GreenString(messages.ValidatePassed))

	return &Summary{Record: rec, Result: result}, nil
}

// Rollback restores the tree from the named backup, or from the most recent
// one when id is empty.
func (o *Orchestrator) Rollback(id string) error {
	handle, err := o.Backups.Resolve(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.Out, messages.RollbackFromFmt, handle)
	restored, err := o.Backups.Restore(handle)
	if err != nil {
		return err
	}
	for _, rel := range restored {
		fmt.Fprintf(o.Out, messages.BackupRestoredFmt, rel)
	}
	fmt.Fprintln(o.Out, color.GreenString(messages.RollbackComplete))
	return nil
}

// backupPaths lists everything an update may touch: every managed file plus
// the version record and the changelog.
func (o *Orchestrator) backupPaths() []string {
	paths := o.Registry.Paths()
	seen := make(map[string]bool, len(paths))
	for _, rel := range paths {
		seen[rel] = true
	}
	for _, extra := range []string{o.Config.RecordFile, changelogFile} {
		if !seen[extra] {
			paths = append(paths, extra)
			seen[extra] = true
		}
	}
	return paths
}

func (o *Orchestrator) reportApply(result *updater.Result) {
	for _, change := range result.Changed {
		fmt.Fprintf(o.Out, messages.UpdaterUpdatedFmt, change.Path)
	}
	for _, rel := range result.Unchanged {
		fmt.Fprintf(o.Out, messages.UpdaterUnchangedFmt, rel)
	}
	for _, rel := range result.Skipped {
		fmt.Fprintf(o.Out, color.YellowString(messages.UpdaterMissingWarnFmt), rel)
	}
}

// warnOnDowngrade flags a new version that does not sort after the current
// one. Informational only; re-releasing an old version stays possible.
func (o *Orchestrator) warnOnDowngrade(current string, next string) {
	if current == "" || !semver.IsValid("v"+current) {
		return
	}
	if semver.Compare("v"+next, "v"+current) <= 0 {
		fmt.Fprintf(o.Out, color.YellowString(messages.UpdateDowngradeFmt), next, current)
	}
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
