// Package cmd implements the CLI application to derive reconciled
// document sets from financial ledgers.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ledgerdocs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands a main package should register.
var Commands = []subcommands.Command{
	&expensesCmd{},
	&withdrawalsCmd{},
	&payrollCmd{},
	&ytdCmd{},
	&checksCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var outDir = flag.String("out", "derived", "Directory derived document files are written to")

func init() {
	// A .env file in the working directory can preset LDOCS_* defaults.
	godotenv.Load()
}

// envDefault returns the LDOCS_<key> environment value, or def when unset.
func envDefault(key, def string) string {
	if v := os.Getenv("LDOCS_" + key); v != "" {
		return v
	}
	return def
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Raw markdown is still readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// openInput opens a source file for decoding.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &ledgerdocs.MissingInputError{Path: path}
	}
	return f, err
}

// writeDocuments writes a document slice as one indented JSON array file
// under the out directory. Empty slices write no file.
func writeDocuments[T any](name string, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(*outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := ledgerdocs.EncodeDocuments(f, docs); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	fmt.Printf("wrote %d documents to %s\n", len(docs), path)
	return nil
}
