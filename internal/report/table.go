package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"patr/internal/suite"
)

// WriteTestTable renders the tests of cfg, in run order, as a table.
func WriteTestTable(w io.Writer, cfg *suite.TestSuiteConfig) {
	if len(cfg.Tests) == 0 {
		fmt.Fprintf(w, "%s\n", text.FgYellow.Sprintf("No tests found in %q", cfg.Name))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle(cfg.Name)

	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("#"),
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("BASE"),
		text.FgHiCyan.Sprint("AUTH"),
		text.FgHiCyan.Sprint("PATH"),
		text.FgHiCyan.Sprint("CODE"),
		text.FgHiCyan.Sprint("ASSERT"),
	})

	for i, tc := range cfg.Tests {
		t.AppendRow(table.Row{
			i + 1,
			tc.Name,
			tc.Base,
			tc.Auth,
			tc.Path,
			tc.Assert.Code,
			assertionSummary(tc.Assert),
		})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d tests", len(cfg.Tests))})
	t.Render()
}

// assertionSummary describes what is checked beyond the status code.
func assertionSummary(a suite.Assertion) string {
	if a.Type != suite.AssertionJSON {
		return "status"
	}
	n := a.Fields.Len()
	switch n {
	case 0:
		return "json"
	case 1:
		return "json (1 field)"
	default:
		return fmt.Sprintf("json (%d fields)", n)
	}
}
