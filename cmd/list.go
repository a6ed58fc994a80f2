package cmd

import (
	"github.com/spf13/cobra"

	"patr/internal/report"
	"patr/internal/suite"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Validate a suite and list its tests",
		Long: `Loads and validates the suite file without sending any request, then
prints its tests in the order they would run.

Example usage:
  patr list
  patr list -c api.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := suite.Load(configPath)
			if err != nil {
				return err
			}
			report.WriteTestTable(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}
