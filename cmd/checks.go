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

// checksCmd holds the flags for the 'checks' subcommand.
type checksCmd struct {
	ledger    string
	journal   string
	synthetic int
	year      int
	seed      string
	render    bool
}

func (*checksCmd) Name() string { return "checks" }
func (*checksCmd) Synopsis() string {
	return "derive payment checks from expenses, payroll, or a synthetic seed"
}
func (*checksCmd) Usage() string {
	return `ldocs checks [-in <ledger.json>] [-journal <journal.json>] [-synthetic <n>] [-out <dir>]

  Derives vendor checks from approved expense records (numbered from
  10001), paychecks from payroll registers (from 20001), and optionally n
  seeded synthetic checks (from 5001). At least one source is required.
`
}

func (c *checksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "in", "", "Expense ledger file; approved records become vendor checks")
	f.StringVar(&c.journal, "journal", "", "Payroll journal file; entries become paychecks")
	f.IntVar(&c.synthetic, "synthetic", 0, "Number of synthetic demo checks to generate")
	f.IntVar(&c.year, "year", date.Today().Year(), "Year synthetic checks are dated in")
	f.StringVar(&c.seed, "seed", "demo", "Seed key for synthetic checks")
	f.BoolVar(&c.render, "render", false, "Print the derived checks as markdown")
}

func (c *checksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var checks []ledgerdocs.Check

	if c.ledger != "" {
		in, err := openInput(c.ledger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		records, _, err := ledgerdocs.DecodeLedgerRecords(c.ledger, in)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledger, err)
			return subcommands.ExitFailure
		}
		checks = append(checks, ledgerdocs.ChecksFromExpenses(records)...)
	}

	if c.journal != "" {
		in, err := openInput(c.journal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
			return subcommands.ExitFailure
		}
		entries, _, err := ledgerdocs.DecodePayrollJournal(c.journal, in)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding journal %q: %v\n", c.journal, err)
			return subcommands.ExitFailure
		}
		checks = append(checks, ledgerdocs.ChecksFromPayroll(ledgerdocs.BuildRegisters(entries))...)
	}

	if c.synthetic > 0 {
		synth := ledgerdocs.NewSynth(c.seed)
		checks = append(checks, ledgerdocs.SyntheticChecks(c.synthetic, c.year, synth)...)
	}

	if len(checks) == 0 {
		fmt.Fprintln(os.Stderr, "no check source given: use -in, -journal, or -synthetic")
		return subcommands.ExitUsageError
	}

	if err := writeDocuments("checks.json", checks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.render {
		for i := range checks {
			printMarkdown(renderer.RenderCheck(&checks[i]))
		}
	}

	fmt.Printf("derived %d checks\n", len(checks))
	return subcommands.ExitSuccess
}
