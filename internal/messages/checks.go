package messages

// Validator messages for the validate pipeline stage and command.
const (
	ValidateRunning = "Validating project state..."

	CheckNameBuild     = "BuildCheck"
	CheckNameStructure = "Structure"

	ValidateBuildPassedFmt       = "%s passed"
	ValidateBuildFailedFmt       = "%s failed: %s"
	ValidateBuildMissingFmt      = "%s not found on PATH"
	ValidateBuildMissingRecFmt   = "Install %s or adjust build_check in releasectl.toml."
	ValidateBuildDisabled        = "build check disabled in configuration"
	ValidateBuildDisabledRec     = "Set build_check in releasectl.toml to restore post-update build validation."
	ValidateStructureOKFmt       = "%s structure looks sane"
	ValidateStructureBrokenFmt   = "unbalanced quotes in %s"
	ValidateStructureBrokenRec   = "Inspect the file for a substitution that broke quoting, then rerun validate."
	ValidateStructureReadErrFmt  = "error reading %s: %v"

	ValidatePassed    = "Project validation passed"
	ValidateFailedErr = "project validation failed"

	StatusOKLabel   = "[ OK ]"
	StatusWarnLabel = "[WARN]"
	StatusFailLabel = "[FAIL]"

	ResultLineFmt          = "%s %s: %s\n"
	RecommendationPrefix   = "       -> "
	RecommendationIndent   = "          "
)
