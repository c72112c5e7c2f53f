package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/record"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			rec, err := record.Read(cfg.RecordPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, messages.CurrentVersionFmt, rec.Semantic, rec.ReleaseName, rec.ReleaseNumber)
			fmt.Fprintf(out, messages.CurrentTagFmt, rec.ReleaseTag)
			return nil
		},
	}
}
