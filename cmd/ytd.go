package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdocs"
	"github.com/etnz/ledgerdocs/date"
	"github.com/etnz/ledgerdocs/renderer"
	"github.com/google/subcommands"
)

// ytdCmd holds the flags for the 'ytd' subcommand.
type ytdCmd struct {
	in     string
	year   int
	run    string
	render bool
}

func (*ytdCmd) Name() string { return "ytd" }
func (*ytdCmd) Synopsis() string {
	return "derive year-to-date earnings records from a payroll journal"
}
func (*ytdCmd) Usage() string {
	return `ldocs ytd -in <journal.json> [-year <fiscal year>] [-out <dir>] [-render]

  Derives one earnings record per employee for the fiscal year, with
  running YTD totals per metric and, when the journal stops short of the
  year end, a single estimated accrual row.
`
}

func (c *ytdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", envDefault("PAYROLL", "journal.json"), "Payroll journal file (JSON array)")
	f.IntVar(&c.year, "year", date.Today().Year(), "Fiscal year to report on")
	f.StringVar(&c.run, "run", date.Today().String(), "Run date stamped on the reports")
	f.BoolVar(&c.render, "render", false, "Print the derived records as markdown")
}

func (c *ytdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	runDate, err := date.Parse(c.run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -run date: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := openInput(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	entries, _, err := ledgerdocs.DecodePayrollJournal(c.in, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	reports := ledgerdocs.BuildYTDReports(entries, c.year, runDate)
	if err := writeDocuments("ytd_reports.json", reports); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.render {
		for i := range reports {
			printMarkdown(renderer.EarningsMarkdown(&reports[i]))
		}
	}

	fmt.Printf("derived %d earnings records for %d\n", len(reports), c.year)
	return subcommands.ExitSuccess
}
