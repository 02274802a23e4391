package ligaledger

import (
	"errors"

	"github.com/rs/zerolog"
)

// SalaryCalculator sums the recurring per-asset daily charge over a date
// range: a fixed fee plus a fraction of the asset's market value that day.
type SalaryCalculator struct {
	cfg      Config
	replayer *Replayer
	market   *Market
	log      zerolog.Logger
}

// NewSalaryCalculator creates a calculator over the given replayer and market.
func NewSalaryCalculator(cfg Config, replayer *Replayer, market *Market, log zerolog.Logger) *SalaryCalculator {
	return &SalaryCalculator{cfg: cfg, replayer: replayer, market: market, log: log}
}

// Between returns the total salary charged to the manager for every day in
// [from, to], and the number of asset-days that had no usable market value
// (each contributed zero; a non-zero count makes the total approximate).
//
// The seed day itself is the starting inventory, not a completed trading
// day: accrual never starts before the day after the seed or season start,
// whichever is later. When salaries are globally disabled the result is
// zero and neither the replayer nor the market is consulted.
func (c *SalaryCalculator) Between(manager ManagerID, from, to Date) (Money, int) {
	total := M(0, c.cfg.Currency)
	if !c.cfg.SalariesEnabled {
		return total, 0
	}

	floor := c.replayer.SeedDay()
	if c.cfg.SeasonStart.After(floor) {
		floor = c.cfg.SeasonStart
	}
	if !from.After(floor) {
		from = floor.Add(1)
	}
	if to.Before(from) {
		return total, 0
	}

	var misses int
	for day := range NewRange(from, to).Days() {
		charge, missed := c.ForDay(manager, day)
		total = total.Add(charge)
		misses += missed
	}
	return total, misses
}

// ForDay returns the salary charged to the manager for a single day, from
// the squad held at the end of that day and the market values of that day.
func (c *SalaryCalculator) ForDay(manager ManagerID, day Date) (Money, int) {
	total := M(0, c.cfg.Currency)
	if !c.cfg.SalariesEnabled {
		return total, 0
	}

	var misses int
	fee := M(c.cfg.SalaryFixedFee, c.cfg.Currency)
	rate := c.cfg.salaryRate()
	for _, asset := range c.replayer.SquadAt(manager, day).Assets() {
		value, err := c.market.ValueAt(asset, day)
		if err != nil {
			if !errors.Is(err, ErrValuationUnavailable) {
				c.log.Warn().Err(err).Int64("asset", int64(asset)).Msg("valuation lookup failed")
			}
			// Asset not yet listed: its share of the salary is zero.
			misses++
			value = M(0, c.cfg.Currency)
		}
		total = total.Add(fee).Add(value.MulRate(rate))
	}
	return total, misses
}
