package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/record"
)

const changelogFile = "CHANGELOG.md"

const unreleasedHeading = "## [Unreleased]\n"

// appendChangelog inserts a skeleton entry for the new version directly after
// the Unreleased section heading. Projects without a changelog, or without an
// Unreleased heading, are left alone.
func (o *Orchestrator) appendChangelog(rec record.Record) error {
	path := filepath.Join(o.Config.Root, changelogFile)
	if _, err := o.Sys.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf(messages.UpdaterReadErrFmt, changelogFile, err)
	}
	data, err := o.Sys.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.UpdaterReadErrFmt, changelogFile, err)
	}

	content := string(data)
	idx := strings.Index(content, unreleasedHeading)
	if idx < 0 {
		return nil
	}
	insertAt := idx + len(unreleasedHeading)
	updated := content[:insertAt] + changelogEntry(rec) + content[insertAt:]

	if err := o.Sys.WriteFileAtomic(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf(messages.UpdaterWriteErrFmt, changelogFile, err)
	}
	fmt.Fprint(o.Out, messages.ChangelogEntryAdded)
	return nil
}

// changelogEntry builds the dated skeleton section for a new release.
func changelogEntry(rec record.Record) string {
	date := nowFunc().Format("2006-01-02")
	var b strings.Builder
	fmt.Fprintf(&b, "\n## [%s] - %s Edition - %s\n", rec.Semantic, rec.ReleaseName, date)
	b.WriteString("\n### 🌟 Major Features\n- New features will be documented here\n")
	b.WriteString("\n### 🔧 Improvements\n- Performance optimizations and bug fixes\n")
	b.WriteString("\n### 📚 Documentation\n- Updated documentation and examples\n\n")
	return b.String()
}
