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

// withdrawalsCmd holds the flags for the 'withdrawals' subcommand.
type withdrawalsCmd struct {
	in     string
	asOf   string
	render bool
}

func (*withdrawalsCmd) Name() string { return "withdrawals" }
func (*withdrawalsCmd) Synopsis() string {
	return "derive 401(k) liquidation packets and separation letters from an HR file"
}
func (*withdrawalsCmd) Usage() string {
	return `ldocs withdrawals -in <hr.json> [-asof <date>] [-out <dir>] [-render]

  Derives a full-liquidation 401(k) statement, withdrawal form, and 1099-R
  tax form for every employee, and a separation letter for every non-Active
  employee. The -asof date anchors the synthetic separation dates and the
  tax year.
`
}

func (c *withdrawalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", envDefault("HR_FILE", "hr.json"), "HR employee file (JSON array)")
	f.StringVar(&c.asOf, "asof", date.Today().String(), "Run date anchoring separation dates")
	f.BoolVar(&c.render, "render", false, "Print the derived packets as markdown")
}

func (c *withdrawalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := date.Parse(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -asof date: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := openInput(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening HR file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	employees, stats, err := ledgerdocs.DecodeEmployees(c.in, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding HR file %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	set, summary := ledgerdocs.ProcessWithdrawals(employees, asOf, stats)

	for _, out := range []struct {
		name    string
		letters []ledgerdocs.Letter
	}{
		{"resignation_letters.json", set.Resignations},
		{"separation_letters.json", set.Separations},
		{"death_notifications.json", set.DeathNotifications},
	} {
		if err := writeDocuments(out.name, out.letters); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := writeDocuments("withdrawals.json", set.Packets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeDocuments("tax_forms_1099r.json", set.TaxForms); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.render {
		for i := range set.Packets {
			printMarkdown(renderer.RenderWithdrawal(&set.Packets[i]))
		}
	}

	fmt.Println(summary)
	for _, e := range summary.Errors {
		fmt.Fprintf(os.Stderr, "  %v\n", e)
	}
	return subcommands.ExitSuccess
}
