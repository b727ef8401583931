package cmd

import (
	"github.com/spf13/cobra"

	"schedsim/internal/loader"
	"schedsim/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "List the processes of a process file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			render.WriteProcesses(cmd.OutOrStdout(), batch)
			return nil
		},
	}
}
