package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patr/internal/report"
	"patr/internal/runner"
	"patr/internal/suite"
)

// runSuite loads the suite named by --config and runs every test in it.
func runSuite(cmd *cobra.Command, args []string) error {
	var logFile *report.LogFile
	if outputPath != "" {
		logFile = report.NewLogFile(outputPath)
		// the previous log goes even if the suite then fails to load
		if err := logFile.Reset(); err != nil {
			return err
		}
	}

	cfg, err := suite.Load(configPath)
	if err != nil {
		return err
	}

	console := report.NewConsole(cmd.OutOrStdout(), report.WithProgress(!debugMode))
	rep := report.New(console, logFile)

	_, err = runner.New(rep, runner.WithSource(configPath)).Run(cmd.Context(), cfg)

	if werr := rep.Err(); werr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: log file incomplete: %v\n", werr)
	}
	return err
}
