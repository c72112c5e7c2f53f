package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/release"
	"github.com/lyvoxa/releasectl/internal/validate"
)

// ErrValidationFailed reports a failed check so the command exits non-zero.
var ErrValidationFailed = errors.New(messages.ValidateFailedErr)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ValidateUse,
		Short: messages.ValidateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			o, err := release.New(cfg, out)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, messages.ValidateRunning)
			results := o.Validate()
			for _, r := range results {
				validate.PrintResult(out, r)
			}
			if !validate.Passed(results) {
				return ErrValidationFailed
			}
			fmt.Fprintln(out, color.GreenString(messages.ValidatePassed))
			return nil
		},
	}
}
