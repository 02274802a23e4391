package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mweiss/ligaledger"
)

// normalizeCmd holds the flags for the 'normalize' subcommand.
type normalizeCmd struct {
	out string
}

func (*normalizeCmd) Name() string     { return "normalize" }
func (*normalizeCmd) Synopsis() string { return "normalize raw transfer news into an event ledger" }
func (*normalizeCmd) Usage() string {
	return `ligaledger normalize [-o <file>]

  Reads the raw transfer news, classifies each record into a buy, sell or
  exchange event, and writes the resulting ledger as JSONL in settlement
  order. Unrecognized records are reported and skipped.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadLeague()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	news, err := LoadNews(*newsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	normalizer := ligaledger.NewNormalizer(cfg.CutoffHour, cfg.SeasonStart, cfg.Currency, log)
	ledger, stats := normalizer.Normalize(news)

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
	if err := ligaledger.EncodeLedger(w, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "%d events written, %d skipped, %d before season start\n",
		stats.Accepted, stats.Skipped, stats.BeforeSeason)
	return subcommands.ExitSuccess
}
