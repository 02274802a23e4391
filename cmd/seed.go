package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mweiss/ligaledger"
)

// seedCmd holds the flags for the 'seed' subcommand.
type seedCmd struct {
	date string
	from string
	out  string
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "author a seed squads file from a squad snapshot" }
func (*seedCmd) Usage() string {
	return `ligaledger seed -from <file> -d <date> [-o <file>]

  Re-dates a squad snapshot as the trusted replay starting point and writes
  it in the canonical seed file form. Transfers on or before the seed date
  are ignored by every later replay.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date the snapshot was taken on")
	f.StringVar(&c.from, "from", "", "Squad snapshot file (seed file format, date optional)")
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -d are required")
		return subcommands.ExitUsageError
	}
	day, err := ligaledger.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.from, err)
		return subcommands.ExitFailure
	}
	// The given date wins over whatever date the snapshot may carry.
	snapshot, err := ligaledger.DecodeSeedSquads(in, day)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	seed := ligaledger.NewSeedSquads(day, snapshot.Squads())

	w := os.Stdout
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}
	if err := ligaledger.EncodeSeedSquads(w, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
