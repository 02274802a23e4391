package ligaledger

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config carries every knob the reconstruction needs. All of it is resolved
// before the first replay; anything wrong here is fatal at startup, never
// during reconstruction.
type Config struct {
	// League rules.
	SeasonStart     Date      `yaml:"season_start"`
	CutoffHour      int       `yaml:"cutoff_hour"`      // events before this hour settle on the previous day
	SalariesEnabled bool      `yaml:"salaries_enabled"`
	SalaryFixedFee  int64     `yaml:"salary_fixed_fee"` // per asset per day
	SalaryRate      float64   `yaml:"salary_rate"`      // fraction of market value per asset per day
	StartBudget     int64     `yaml:"start_budget"`
	CreditFraction  float64   `yaml:"credit_fraction"` // credit limit as fraction of team value
	CreditDisabled  bool      `yaml:"credit_disabled"`
	Currency        string    `yaml:"currency"`
	ComputerManager ManagerID `yaml:"computer_manager"` // automated participant, excluded everywhere

	// Points payout per league point. Which one applies depends on
	// SalariesEnabled.
	PayoutWithSalaries    int64 `yaml:"payout_with_salaries"`
	PayoutWithoutSalaries int64 `yaml:"payout_without_salaries"`

	// Inputs.
	SeedPath string `yaml:"seed_path"`

	// Debug surface.
	DebugPlayerCount  bool `yaml:"debug_player_count"`
	DebugSquadCompare bool `yaml:"debug_squad_compare"`
}

// DefaultConfig returns the league defaults.
func DefaultConfig() Config {
	return Config{
		CutoffHour:            4,
		SalaryFixedFee:        500,
		SalaryRate:            0.001,
		StartBudget:           40_000_000,
		CreditFraction:        0.25,
		Currency:              "EUR",
		ComputerManager:       1,
		PayoutWithSalaries:    30_000,
		PayoutWithoutSalaries: 10_000,
	}
}

// LoadConfig resolves the configuration: defaults, then the YAML league
// file (when path is non-empty), then environment overrides. A .env file in
// the working directory is honored.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("could not read league config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("malformed league config %q: %w", path, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SEASON_START"); v != "" {
		if d, err := ParseDate(v); err == nil {
			c.SeasonStart = d
		}
	}
	if v := os.Getenv("START_BUDGET"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.StartBudget = n
		}
	}
	if v := os.Getenv("CUTOFF_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CutoffHour = n
		}
	}
	if v := os.Getenv("SEED_SQUADS_PATH"); v != "" {
		c.SeedPath = v
	}
	c.SalariesEnabled = boolEnv("SALARIES_ENABLED", c.SalariesEnabled)
	c.DebugPlayerCount = boolEnv("DEBUG_PLAYER_COUNT", c.DebugPlayerCount)
	c.DebugSquadCompare = boolEnv("DEBUG_SQUAD_COMPARE", c.DebugSquadCompare)
}

func boolEnv(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "":
		return fallback
	default:
		return false
	}
}

// Validate checks the configuration for structural problems.
func (c Config) Validate() error {
	if c.CutoffHour < 0 || c.CutoffHour > 23 {
		return fmt.Errorf("cutoff hour %d out of range", c.CutoffHour)
	}
	if c.SalaryRate < 0 || c.SalaryRate >= 1 {
		return fmt.Errorf("salary rate %v out of range", c.SalaryRate)
	}
	if c.CreditFraction < 0 || c.CreditFraction > 1 {
		return fmt.Errorf("credit fraction %v out of range", c.CreditFraction)
	}
	if c.SalaryFixedFee < 0 {
		return fmt.Errorf("salary fixed fee %d is negative", c.SalaryFixedFee)
	}
	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}

// salaryRate returns the salary rate as an exact decimal.
func (c Config) salaryRate() decimal.Decimal {
	return decimal.NewFromFloat(c.SalaryRate)
}

// creditFraction returns the credit fraction as an exact decimal.
func (c Config) creditFraction() decimal.Decimal {
	return decimal.NewFromFloat(c.CreditFraction)
}

// PointsPayout returns the income credited for the given cumulative points,
// at the per-point rate matching whether salaries are active.
func (c Config) PointsPayout(points int64) Money {
	rate := c.PayoutWithoutSalaries
	if c.SalariesEnabled {
		rate = c.PayoutWithSalaries
	}
	return M(points*rate, c.Currency)
}
