// Package cmd implements the CLI application to operate the league
// reconstruction engine.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/mweiss/ligaledger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reconstruction")
	c.Register(&verifyCmd{}, "reconstruction")
	c.Register(&seedCmd{}, "data")
	c.Register(&normalizeCmd{}, "data")
	c.Register(&serveCmd{}, "service")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the league settings file (YAML)")
var seedFile = flag.String("seed", "", "Path to the seed squads file (JSON)")
var newsFile = flag.String("news", "news.json", "Path to the raw transfer news file (JSON array)")
var marketFile = flag.String("market", "market.json", "Path to the quote history file (JSON)")
var standingsFile = flag.String("standings", "standings.json", "Path to the standings file (JSON array)")

// LoadLeague resolves the league configuration from defaults, the settings
// file and the environment.
func LoadLeague() (ligaledger.Config, error) {
	return ligaledger.LoadConfig(*configFile)
}

// standingsRow is the on-disk shape of one standings entry.
type standingsRow struct {
	Manager    ligaledger.ManagerID `json:"manager"`
	Name       string               `json:"name"`
	Points     int64                `json:"points"`
	TeamValue  int64                `json:"teamValue"`
	LastAction *time.Time           `json:"lastAction,omitempty"`
}

// LoadStandings reads the standings file.
func LoadStandings(path string) ([]ligaledger.StandingsRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read standings %q: %w", path, err)
	}
	var rows []standingsRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("malformed standings %q: %w", path, err)
	}
	out := make([]ligaledger.StandingsRow, len(rows))
	for i, r := range rows {
		out[i] = ligaledger.StandingsRow{
			Manager:    r.Manager,
			Name:       r.Name,
			Points:     r.Points,
			TeamValue:  r.TeamValue,
			LastAction: r.LastAction,
		}
	}
	return out, nil
}

// rawNews is the on-disk shape of one transfer news record: a timestamp
// plus the upstream payload, kept as-is for the normalizer.
type rawNews struct {
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload"`
}

// LoadNews reads the raw transfer news file.
func LoadNews(path string) ([]ligaledger.RawRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read news %q: %w", path, err)
	}
	var records []rawNews
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("malformed news %q: %w", path, err)
	}
	out := make([]ligaledger.RawRecord, len(records))
	for i, r := range records {
		var payload any
		if err := json.Unmarshal(r.Payload, &payload); err != nil {
			return nil, fmt.Errorf("malformed news payload in %q: %w", path, err)
		}
		out[i] = ligaledger.RawRecord{At: r.At, Payload: payload}
	}
	return out, nil
}

// LoadMarket reads the quote history file.
func LoadMarket(path, currency string) (*ligaledger.Market, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open quote history %q: %w", path, err)
	}
	defer f.Close()
	return ligaledger.DecodeMarket(f, currency)
}

// LoadInputs assembles a full reconstruction input from the input files.
// The seed path falls back to the configured one.
func LoadInputs(cfg ligaledger.Config) (ligaledger.OverviewInput, error) {
	var in ligaledger.OverviewInput

	seedPath := *seedFile
	if seedPath == "" {
		seedPath = cfg.SeedPath
	}
	if seedPath == "" {
		return in, fmt.Errorf("no seed file: pass -seed or set seed_path in the league settings")
	}

	seed, err := ligaledger.LoadSeedSquads(seedPath)
	if err != nil {
		return in, err
	}
	standings, err := LoadStandings(*standingsFile)
	if err != nil {
		return in, err
	}
	news, err := LoadNews(*newsFile)
	if err != nil {
		return in, err
	}
	market, err := LoadMarket(*marketFile, cfg.Currency)
	if err != nil {
		return in, err
	}

	in.Seed = seed
	in.Standings = standings
	in.News = news
	in.Market = market
	return in, nil
}
