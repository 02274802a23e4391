package ligaledger

import "testing"

func TestCreditLimit(t *testing.T) {
	cfg := testConfig() // quarter of team value, credit enabled

	tests := []struct {
		name      string
		teamValue int64
		balance   int64
		disabled  bool
		want      int64
	}{
		{"positive balance keeps full quarter", 40_000_000, 5_000_000, false, 10_000_000},
		{"zero balance keeps full quarter", 40_000_000, 0, false, 10_000_000},
		{"negative balance offsets the limit", 40_000_000, -2_000_000, false, 8_000_000},
		{"deep in the red floors at zero", 40_000_000, -20_000_000, false, 0},
		{"credit disabled is always zero", 40_000_000, 5_000_000, true, 0},
		{"zero team value", 0, 1_000, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.CreditDisabled = tt.disabled
			got := CreditLimit(EUR(tt.teamValue), EUR(tt.balance), c)
			if got.Units() != tt.want {
				t.Errorf("CreditLimit(%d, %d) = %d, want %d", tt.teamValue, tt.balance, got.Units(), tt.want)
			}
		})
	}
}

func TestInTheRed(t *testing.T) {
	if InTheRed(EUR(0)) {
		t.Error("zero balance is not in the red")
	}
	if InTheRed(EUR(1)) {
		t.Error("positive balance is not in the red")
	}
	if !InTheRed(EUR(-1)) {
		t.Error("negative balance is in the red")
	}
}
