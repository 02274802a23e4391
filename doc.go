// Package ligaledger reconstructs squad composition and account balance
// history for a fantasy-football league whose upstream service only exposes
// the current state and a rolling news feed.
//
// The core is a pure replay engine:
//   - Event Normalization: converting raw heterogeneous transfer records
//     into a uniform, stably ordered stream of buy, sell, and exchange
//     events, attributed to settlement business days via a cutoff hour.
//   - Squad Replay: deriving any manager's squad at any date by replaying
//     events forward from a trusted seed snapshot.
//   - Valuation Lookup: per-asset market value history with
//     latest-at-or-before-date semantics.
//   - Salary Accrual: the recurring per-asset daily charge, summed over
//     reconstructed squads and historical market values.
//   - Balance Reconstruction: start budget, cash deltas, salaries, and
//     points payout combined into a balance for any date.
//
// The engine performs no I/O and holds no hidden state: every run is a
// pure function of the seed, the news feed, the valuation table, and the
// configuration. Fetching, caching, and serving are the concern of the
// server and cmd packages.
package ligaledger
