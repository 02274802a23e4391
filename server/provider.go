// Package server provides the HTTP surface of the league reconstruction
// engine.
package server

import (
	"context"

	"github.com/mweiss/ligaledger"
)

// LeagueProvider supplies everything a reconstruction run consumes, fully
// deserialized: standings, transfer news, quote history, seed squads, and
// the live balance of the authenticated manager when one is logged in. How
// the data is obtained (upstream API, files, fixtures) is the provider's
// business; the engine itself never performs I/O.
type LeagueProvider interface {
	Snapshot(ctx context.Context) (ligaledger.OverviewInput, error)
}

// LeagueProviderFunc adapts a function to the LeagueProvider interface.
type LeagueProviderFunc func(ctx context.Context) (ligaledger.OverviewInput, error)

func (f LeagueProviderFunc) Snapshot(ctx context.Context) (ligaledger.OverviewInput, error) {
	return f(ctx)
}
