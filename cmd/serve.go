package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mweiss/ligaledger"
	"github.com/mweiss/ligaledger/server"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	port int
	ttl  time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the league overview over HTTP" }
func (*serveCmd) Usage() string {
	return `ligaledger serve [-port <port>] [-ttl <duration>]

  Serves the reconstructed league overview on GET /api/league. The input
  files are re-read on every cache miss, so updating them on disk is enough
  to refresh the served numbers.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 8080, "Port to listen on")
	f.DurationVar(&c.ttl, "ttl", time.Minute, "How long a computed overview may be served from cache")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadLeague()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	// Fail early on unreadable inputs rather than on the first request.
	if _, err := LoadInputs(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	provider := server.LeagueProviderFunc(func(context.Context) (ligaledger.OverviewInput, error) {
		return LoadInputs(cfg)
	})

	s := server.New(server.Config{
		Log:      log,
		League:   cfg,
		Provider: provider,
		Port:     c.port,
		CacheTTL: c.ttl,
	})
	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
