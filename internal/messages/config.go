package messages

// Configuration and registry messages.
const (
	ConfigReadErrFmt         = "read config %s: %w"
	ConfigParseErrFmt        = "parse config %s: %w"
	ConfigExpandBackupDirFmt = "expand backup_dir %q: %w"

	RegistryEmptyPathErr      = "file entry with empty path"
	RegistryNoRulesFmt        = "no rules defined for %s"
	RegistryCompileErrFmt     = "compile pattern %q for %s: %w"
	RegistryUnknownFieldFmt   = "rule for %s: %w"
)
