package main

import (
	"github.com/spf13/cobra"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/release"
)

func newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RollbackUse,
		Short: messages.RollbackShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			o, err := release.New(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return o.Rollback(id)
		},
	}
}
