package ligaledger

import (
	"time"

	"github.com/rs/zerolog"
)

// StandingsRow is one manager as supplied by the upstream league table.
type StandingsRow struct {
	Manager    ManagerID
	Name       string
	Points     int64
	TeamValue  int64
	LastAction *time.Time // upstream last-seen timestamp, when available
}

// SquadDiff is the debug comparison of a reconstructed squad against the
// externally supplied current one.
type SquadDiff struct {
	Extra   []AssetID `json:"extra"`   // reconstructed but not upstream
	Missing []AssetID `json:"missing"` // upstream but not reconstructed
}

// ManagerSummary is the per-manager output record of the engine.
type ManagerSummary struct {
	Manager      ManagerID  `json:"manager"`
	Name         string     `json:"name"`
	Points       int64      `json:"points"`
	TeamValue    Money      `json:"teamValue"`
	Balance      Money      `json:"balance"`
	CreditLimit  Money      `json:"creditLimit"`
	SalaryToday  Money      `json:"salaryToday"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
	InTheRed     bool       `json:"inTheRed"`

	// Approximate marks a best-effort entry: a valuation was missing, an
	// event was skipped, or the replay hit an inconsistency. Consumers see
	// degraded numbers, never a hard error.
	Approximate bool `json:"approximate,omitempty"`

	// Debug fields, populated only when the matching config flag is set.
	PlayerCount *int       `json:"playerCount,omitempty"`
	SquadDiff   *SquadDiff `json:"squadDiff,omitempty"`
}

// OverviewMeta describes the reconstruction run as a whole.
type OverviewMeta struct {
	Day             Date  `json:"day"` // business day the overview is computed for
	SalariesEnabled bool  `json:"salariesEnabled"`
	CreditDisabled  bool  `json:"creditDisabled"`
	SkippedRecords  int   `json:"skippedRecords,omitempty"`
	Inconsistencies int   `json:"inconsistencies,omitempty"`
	PayoutPerPoint  int64 `json:"payoutPerPoint"`
}

// Overview is the engine's output: one summary per manager plus run metadata.
type Overview struct {
	Managers []ManagerSummary `json:"managers"`
	Meta     OverviewMeta     `json:"leagueMeta"`
}

// OverviewInput gathers every input of a reconstruction run, fully
// materialized. The engine performs no I/O: fetching and deserializing is
// the caller's concern.
type OverviewInput struct {
	Standings     []StandingsRow
	News          []RawRecord
	Market        *Market
	Seed          *SeedSquads
	LiveBalances  map[ManagerID]Money // authoritative upstream balances (the authenticated manager)
	CurrentSquads Squads              // upstream current squads, for the debug compare; may be nil
	AsOf          Date                // zero means the current business day
}

// BuildOverview replays the season and produces one summary per manager in
// standings order. The automated computer participant is excluded. A bad
// data point degrades the affected entry, it never aborts the batch.
func BuildOverview(cfg Config, in OverviewInput, log zerolog.Logger) (*Overview, error) {
	if in.Seed == nil {
		return nil, errNoSeed
	}
	if in.Market == nil {
		in.Market = NewMarket(cfg.Currency)
	}

	on := in.AsOf
	if on.IsZero() {
		on = EffectiveToday(cfg.CutoffHour)
	}

	normalizer := NewNormalizer(cfg.CutoffHour, cfg.SeasonStart, cfg.Currency, log)
	ledger, stats := normalizer.Normalize(in.News)
	replayer := NewReplayer(in.Seed, ledger, log)
	salaries := NewSalaryCalculator(cfg, replayer, in.Market, log)
	balances := NewBalanceReconstructor(cfg, ledger, salaries, in.LiveBalances)

	out := &Overview{Managers: make([]ManagerSummary, 0, len(in.Standings))}
	for _, row := range in.Standings {
		if row.Manager == cfg.ComputerManager {
			continue
		}
		out.Managers = append(out.Managers, buildSummary(cfg, row, on, replayer, salaries, balances, stats, in.CurrentSquads))
	}

	out.Meta = OverviewMeta{
		Day:             on,
		SalariesEnabled: cfg.SalariesEnabled,
		CreditDisabled:  cfg.CreditDisabled,
		SkippedRecords:  stats.Skipped,
		Inconsistencies: replayer.Inconsistencies(),
		PayoutPerPoint:  cfg.PointsPayout(1).Units(),
	}
	return out, nil
}

func buildSummary(cfg Config, row StandingsRow, on Date, replayer *Replayer, salaries *SalaryCalculator, balances *BalanceReconstructor, stats NormalizeStats, current Squads) ManagerSummary {
	teamValue := M(row.TeamValue, cfg.Currency)
	balance, misses := balances.AsOf(row.Manager, on, row.Points)
	salaryToday, salaryMisses := salaries.ForDay(row.Manager, on)

	s := ManagerSummary{
		Manager:     row.Manager,
		Name:        row.Name,
		Points:      row.Points,
		TeamValue:   teamValue,
		Balance:     balance,
		CreditLimit: CreditLimit(teamValue, balance, cfg),
		SalaryToday: salaryToday,
		InTheRed:    InTheRed(balance),
		Approximate: stats.Degraded() || misses > 0 || salaryMisses > 0,
	}

	if row.LastAction != nil {
		s.LastActivity = row.LastAction
	} else if day, ok := balances.ledger.LastActivity(row.Manager); ok {
		at := day.time()
		s.LastActivity = &at
	}

	if cfg.DebugPlayerCount || cfg.DebugSquadCompare {
		squad := replayer.SquadAt(row.Manager, on)
		if cfg.DebugPlayerCount {
			count := squad.Len()
			s.PlayerCount = &count
		}
		if cfg.DebugSquadCompare && current != nil {
			extra, missing := squad.Diff(current[row.Manager])
			s.SquadDiff = &SquadDiff{Extra: extra, Missing: missing}
		}
	}

	// Replay inconsistencies surface after the squad lookups above.
	if replayer.Inconsistencies() > 0 {
		s.Approximate = true
	}
	return s
}

var errNoSeed = configError("no seed squads: reconstruction needs a reference snapshot")

// configError is a fatal startup problem, reported before any reconstruction.
type configError string

func (e configError) Error() string { return string(e) }
