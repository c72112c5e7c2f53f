package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lyvoxa/releasectl/internal/messages"
)

// PrintResult renders one check result with a colored status label.
func PrintResult(out io.Writer, r Result) {
	var status string
	switch r.Status {
	case StatusOK:
		status = color.GreenString(messages.StatusOKLabel)
	case StatusWarn:
		status = color.YellowString(messages.StatusWarnLabel)
	case StatusFail:
		status = color.RedString(messages.StatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.ResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.RecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.RecommendationIndent, line)
	}
}
