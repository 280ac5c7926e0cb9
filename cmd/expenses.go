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

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	in     string
	render bool
}

func (*expensesCmd) Name() string { return "expenses" }
func (*expensesCmd) Synopsis() string {
	return "derive purchase orders, receiving reports and invoices from an expense ledger"
}
func (*expensesCmd) Usage() string {
	return `ldocs expenses -in <ledger.json> [-out <dir>] [-render]

  Derives a cross-referenced purchase order, receiving report and invoice
  for every ledger record. The three documents reconcile with the record's
  gross amount to the cent, and re-running on the same ledger reproduces
  the same documents.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", envDefault("LEDGER", "ledger.json"), "Expense ledger file (JSON array)")
	f.BoolVar(&c.render, "render", false, "Print the derived invoices as markdown")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, stats, err := ledgerdocs.DecodeLedgerRecords(c.in, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	set, summary := ledgerdocs.ProcessExpenses(records, stats)

	if err := writeDocuments("purchase_orders.json", set.PurchaseOrders); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeDocuments("receiving_reports.json", set.ReceivingReports); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeDocuments("invoices.json", set.Invoices); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.render {
		for i := range set.Invoices {
			printMarkdown(renderer.RenderDocument(&set.Invoices[i]))
		}
	}

	fmt.Println(summary)
	for _, e := range summary.Errors {
		fmt.Fprintf(os.Stderr, "  %v\n", e)
	}
	return subcommands.ExitSuccess
}
