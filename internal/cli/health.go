package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the Players API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Health(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(HealthResult{Status: "ok", API: client.BaseURL()})
			return nil
		},
	}
}
