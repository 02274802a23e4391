package ligaledger

import (
	"time"

	"github.com/rs/zerolog"
)

// EUR is a helper for tests to create euro money from const.
func EUR(v int64) Money { return M(v, "EUR") }

// at is a helper for tests to build feed timestamps.
func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// nolog discards engine logging in tests.
var nolog = zerolog.Nop()

// testConfig returns the league defaults with a fixed season start.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SeasonStart = NewDate(2025, time.May, 27)
	return cfg
}
