package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"patr/internal/runner"
	"patr/internal/suite"
	"patr/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates that every test passed.
	ExitCodeSuccess = 0
	// ExitCodeError covers configuration errors, failed tests and --help.
	ExitCodeError = 1
)

var (
	// version is injected by main through SetVersion.
	version = "dev"

	configPath string
	outputPath string
	debugMode  bool
	noColor    bool

	// helpShown is set whenever usage is printed, so that help exits non-zero.
	helpShown bool
)

// newRootCmd builds the command tree. Flag variables are reset to their
// defaults every time it is called.
func newRootCmd() *cobra.Command {
	helpShown = false

	root := &cobra.Command{
		Use:   "patr",
		Short: "Run declarative contract tests against a REST API",
		Long: `patr reads a suite of API tests from a JSON (or YAML) file, sends one GET
request per test and checks the response status code and, for JSON
assertions, the type of every required field in the body.

Each test names a base (URL, headers, query parameters) and an auth profile
(headers, query parameters); auth values override base values.

Example usage:
  patr                               # Run ./phpatr.json
  patr -c api.json -o result.log     # Run api.json, also logging to result.log
  patr list -c api.yaml              # Show the tests in api.yaml`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage and SilenceErrors leave error output to execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureOutput(cmd.ErrOrStderr())
		},
		RunE: runSuite,
	}

	root.SetVersionTemplate(`{{printf "patr version %s\n" .Version}}`)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", suite.DefaultConfigPath, "Suite file with the API tests (JSON, or YAML by extension)")
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "Print diagnostics, including why each test failed, to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the run log to this file, replacing any previous one")
	root.PersistentFlags().BoolP("help", "h", false, "Show this help and exit")

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(cmd, args)
	})

	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// SetVersion sets the version reported by `patr version` and --version.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main() and exits the process with the run's exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree with args and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if helpShown {
		return ExitCodeError
	}
	if err != nil {
		printError(stderr, err)
	}
	return getExitCode(err)
}

// getExitCode maps the result of a command to the process exit code.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}

// printError writes err for the user. A failed suite has already been
// reported line by line, so nothing more is printed for it.
func printError(w io.Writer, err error) {
	if errors.Is(err, runner.ErrSuiteFailed) {
		return
	}

	var verrs *suite.ValidationErrors
	if errors.As(err, &verrs) && len(verrs.Errors) > 1 {
		fmt.Fprintln(w, text.FgRed.Sprint(verrs.Report()))
		return
	}

	fmt.Fprintf(w, "%s %v\n", text.FgRed.Sprint("Error:"), err)
}

// configureOutput applies --debug and --no-color.
func configureOutput(stderr io.Writer) {
	if debugMode {
		logging.InitForCLI(logging.LevelDebug, stderr)
	} else {
		logging.Discard()
	}

	if noColor {
		text.DisableColors()
	}
}
