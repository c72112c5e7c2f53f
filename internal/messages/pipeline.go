package messages

// Pipeline messages for the record store, backup manager, file updater, and orchestrator.
const (
	// RecordMissingErr is the sentinel text for a missing version record.
	RecordMissingErr        = "version record not found"
	RecordMissingFmt        = "%w: %s"
	RecordReadErrFmt        = "read version record %s: %w"
	RecordWriteErrFmt       = "write version record %s: %w"
	RecordInvalidVersionErr = "invalid semantic version"
	RecordInvalidVersionFmt = "%w: %q (want MAJOR.MINOR.PATCH)"
	RecordUpdated           = "Version record updated"

	// BackupNotFoundErr is the sentinel text for a missing backup directory.
	BackupNotFoundErr    = "backup not found"
	BackupNotFoundFmt    = "%w: %s"
	BackupNoBackupsErr   = "no backups found"
	BackupCreatedFmt     = "Backup created: %s\n"
	BackupCreateDirFmt   = "create backup directory %s: %w"
	BackupCaptureErrFmt  = "capture %s: %w"
	BackupWriteErrFmt    = "write backup entry %s: %w"
	BackupListErrFmt     = "list backups in %s: %w"
	BackupRestoreErrFmt  = "restore %s: %w"
	BackupRestoredFmt    = "✅ Restored %s\n"
	RollbackFromFmt      = "Rolling back from: %s\n"
	RollbackComplete     = "Rollback completed"

	// UpdaterUnknownFieldFmt reports a template referencing a field the record does not define.
	UpdaterUnknownFieldErr = "template references unknown field"
	UpdaterUnknownFieldFmt = "template %q references unknown field %q"
	UpdaterReadErrFmt      = "read %s: %w"
	UpdaterWriteErrFmt     = "write %s: %w"
	UpdaterUpdatedFmt      = "✅ %s updated\n"
	UpdaterUnchangedFmt    = "%s (no changes needed)\n"
	UpdaterMissingWarnFmt  = "File not found, skipping: %s\n"

	// ReleaseBackupFailedErr is the sentinel text for a failed pre-update backup.
	ReleaseBackupFailedErr     = "backup failed"
	ReleaseValidationFailedErr = "validation failed"
	ReleaseRestoreFailedErr    = "restore failed"
	ReleaseUpdateFailedFmt     = "Update failed: %v\n"
	ReleaseRollingBack         = "Rolling back..."
	ReleaseRolledBack          = "Rolled back to pre-update state"
	ReleaseRestoreFailedFmt    = "%w: project tree may be inconsistent: %v"

	ChangelogEntryAdded = "✅ CHANGELOG.md entry added\n"

	// DiffTruncatedFmt is appended to diff previews cut at the line cap.
	DiffTruncatedFmt = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"
	DiffHeaderFmt    = "Diff for %s:\n"
)
