package updater

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/lyvoxa/releasectl/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// RenderDiff produces a unified diff preview for one file change, truncated
// to maxLines with a notice when the diff is longer.
func RenderDiff(change FileChange, maxLines int) (string, bool) {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	diff := udiff.Unified(change.Path+" (before)", change.Path+" (after)", change.Before, change.After)
	lines := splitDiffLines(diff)
	if len(lines) <= maxLines {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:maxLines], fmt.Sprintf(messages.DiffTruncatedFmt, maxLines))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
