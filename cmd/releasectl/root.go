package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lyvoxa/releasectl/internal/config"
	"github.com/lyvoxa/releasectl/internal/messages"
)

var flagRoot string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flagRoot, "root", flagRoot, messages.RootFlagRoot)

	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRollbackCmd())
	return cmd
}

// resolveProjectRoot returns the project root: the --root flag when given,
// otherwise the nearest ancestor of the working directory holding a version
// record or config file.
func resolveProjectRoot() (string, error) {
	if flagRoot != "" {
		return flagRoot, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	root, found, err := config.FindProjectRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New(messages.RootMissingRecord)
	}
	return root, nil
}

// loadProject resolves the root and loads its configuration.
func loadProject() (*config.Config, error) {
	root, err := resolveProjectRoot()
	if err != nil {
		return nil, err
	}
	return config.Load(root)
}
