package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdocs"
	"github.com/etnz/ledgerdocs/renderer"
	"github.com/google/subcommands"
)

// payrollCmd holds the flags for the 'payroll' subcommand.
type payrollCmd struct {
	in     string
	render bool
}

func (*payrollCmd) Name() string { return "payroll" }
func (*payrollCmd) Synopsis() string {
	return "derive payroll registers from a payroll journal"
}
func (*payrollCmd) Usage() string {
	return `ldocs payroll -in <journal.json> [-out <dir>] [-render]

  Groups the payroll journal by pay period and derives one register per
  period, with totals for every tracked metric.
`
}

func (c *payrollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", envDefault("PAYROLL", "journal.json"), "Payroll journal file (JSON array)")
	f.BoolVar(&c.render, "render", false, "Print the derived registers as markdown")
}

func (c *payrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	entries, stats, err := ledgerdocs.DecodePayrollJournal(c.in, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	registers := ledgerdocs.BuildRegisters(entries)
	if err := writeDocuments("payroll_registers.json", registers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.render {
		printMarkdown(renderer.RegisterMarkdown(registers))
	}

	fmt.Printf("derived %d registers from %d journal entries (%d defaulted fields)\n",
		len(registers), stats.Records, stats.Defaulted)
	return subcommands.ExitSuccess
}
