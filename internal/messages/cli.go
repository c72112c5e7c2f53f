package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "releasectl"
	// RootShort is the short description for the root command.
	RootShort         = "Coordinated version propagation for project files"
	RootMissingRecord = "no version record found (missing version.toml); run inside a project or pass --root"
	RootFlagRoot      = "Project root (defaults to the nearest ancestor directory containing version.toml)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// UpdateUse is the update command usage.
	UpdateUse   = "update <version> <release-name> <release-number>"
	UpdateShort = "Update the version record and every managed file, with rollback on failure"

	UpdateFlagYes       = "Apply the update without an interactive confirmation"
	UpdateFlagDiff      = "Show unified diffs of changed files in the summary"
	UpdateFlagDiffLines = "Maximum diff lines shown per file"

	UpdateHeaderFmt       = "🚀 Updating version in %s...\n"
	UpdateCurrentFmt      = "Current: %s (%s %s)\n"
	UpdateNewFmt          = "New: %s (%s %s)\n"
	UpdateConfirmTitleFmt = "Update %s to %s (%s %s)?"
	UpdateCancelled       = "Update cancelled."
	UpdateDowngradeFmt    = "Warning: new version %s does not sort after current %s\n"

	UpdateCompleteHeader  = "🎉 Version update complete"
	UpdateChangedCountFmt = "Updated %d files\n"
	UpdateBackupHintFmt   = "Backup available at: %s\n"

	UpdateNextStepsHeader = "Next steps:"
	UpdateNextStepReview  = "  1. Review: git diff"
	UpdateNextStepBuild   = "  2. Test the release build"
	UpdateNextStepCommit  = "  3. Commit: git add -A && git commit -m 'bump: version %s (%s %s)'"
	UpdateNextStepTag     = "  4. Tag: git tag -a %s -m '%s %s Release'"
	UpdateNextStepPush    = "  5. Push: git push origin main && git push origin %s"

	// CurrentUse is the current command name.
	CurrentUse        = "current"
	CurrentShort      = "Show the current version record"
	CurrentVersionFmt = "Current version: %s (%s %s)\n"
	CurrentTagFmt     = "Release tag: %s\n"

	// ValidateUse is the validate command name.
	ValidateUse   = "validate"
	ValidateShort = "Run the build check and structural checks against managed files"

	// RollbackUse is the rollback command usage.
	RollbackUse   = "rollback [backup-id]"
	RollbackShort = "Restore managed files from a backup (latest when omitted)"
)
