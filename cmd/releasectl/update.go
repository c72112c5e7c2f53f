package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/release"
	"github.com/lyvoxa/releasectl/internal/terminal"
	"github.com/lyvoxa/releasectl/internal/updater"
)

// runFormFunc is replaced in tests to stub the interactive confirmation.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// isInteractiveFunc is replaced in tests to force prompt behavior.
var isInteractiveFunc = terminal.IsInteractive

func newUpdateCmd() *cobra.Command {
	var yes bool
	var showDiff bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, releaseName, releaseNumber := args[0], args[1], args[2]
			out := cmd.OutOrStdout()

			cfg, err := loadProject()
			if err != nil {
				return err
			}
			o, err := release.New(cfg, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, messages.UpdateHeaderFmt, cfg.Root)

			if !yes && isInteractiveFunc() {
				ok, err := confirmUpdate(o, version, releaseName, releaseNumber)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, messages.UpdateCancelled)
					return nil
				}
			}

			summary, err := o.Update(version, releaseName, releaseNumber)
			if err != nil {
				return err
			}

			if showDiff {
				printDiffs(out, summary.Result.Changed, diffLines)
			}
			printSummary(out, summary)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.UpdateFlagYes)
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.UpdateFlagDiff)
	cmd.Flags().IntVar(&diffLines, "diff-lines", updater.DefaultDiffMaxLines, messages.UpdateFlagDiffLines)
	return cmd
}

// confirmUpdate prompts before mutating anything. A record read failure here
// is not fatal; the orchestrator reports it properly once the update starts.
func confirmUpdate(o *release.Orchestrator, version string, releaseName string, releaseNumber string) (bool, error) {
	current := "unknown"
	if rec, err := o.Current(); err == nil && rec.Semantic != "" {
		current = rec.Semantic
	}

	confirmed := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf(messages.UpdateConfirmTitleFmt, current, version, releaseName, releaseNumber)).
			Value(&confirmed),
	))
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

func printDiffs(out io.Writer, changes []updater.FileChange, maxLines int) {
	for _, change := range changes {
		fmt.Fprintf(out, messages.DiffHeaderFmt, change.Path)
		diff, _ := updater.RenderDiff(change, maxLines)
		fmt.Fprint(out, diff)
	}
}

func printSummary(out io.Writer, summary *release.Summary) {
	rec := summary.Record
	fmt.Fprintln(out, color.GreenString(messages.UpdateCompleteHeader))
	fmt.Fprintf(out, messages.UpdateChangedCountFmt, len(summary.Result.Changed))
	fmt.Fprintf(out, messages.UpdateBackupHintFmt, summary.Backup)

	fmt.Fprintln(out, color.CyanString(messages.UpdateNextStepsHeader))
	fmt.Fprintln(out, messages.UpdateNextStepReview)
	fmt.Fprintln(out, messages.UpdateNextStepBuild)
	fmt.Fprintf(out, messages.UpdateNextStepCommit+"\n", rec.Semantic, rec.ReleaseName, rec.ReleaseNumber)
	fmt.Fprintf(out, messages.UpdateNextStepTag+"\n", rec.ReleaseTag, rec.ReleaseName, rec.ReleaseNumber)
	fmt.Fprintf(out, messages.UpdateNextStepPush+"\n", rec.ReleaseTag)
}
