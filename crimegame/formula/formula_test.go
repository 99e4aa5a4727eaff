package formula

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMilestoneMultiplier(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 1},
		{1, 1},
		{24, 1},
		{25, 2},
		{49, 2},
		{50, 4},
		{100, 8},
		{200, 16},
		{299, 16},
		{300, 32},
		{400, 64},
	}
	for _, tt := range tests {
		if got := MilestoneMultiplier(tt.level); got != tt.want {
			t.Errorf("MilestoneMultiplier(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestAssetIncome(t *testing.T) {
	if got := AssetIncome(5, 0); got != 0 {
		t.Errorf("AssetIncome at level 0 = %v, want 0", got)
	}
	if got := AssetIncome(5, 1); !almostEqual(got, 5) {
		t.Errorf("AssetIncome(5, 1) = %v, want 5", got)
	}
	// Crossing a milestone must more than double raw curve growth.
	before := AssetIncome(5, 24)
	after := AssetIncome(5, 25)
	if after <= before*2 {
		t.Errorf("milestone at 25 not applied: before=%v after=%v", before, after)
	}
}

func TestAssetCostMonotonic(t *testing.T) {
	prev := 0.0
	for level := 0; level < 40; level++ {
		cost := AssetCost(100, level)
		if cost <= prev {
			t.Fatalf("AssetCost(100, %d) = %v, not increasing past %v", level, cost, prev)
		}
		prev = cost
	}
}

func TestTotalAssetCostMatchesSum(t *testing.T) {
	for _, n := range []int{1, 2, 5, 13} {
		var sum float64
		for i := 0; i < n; i++ {
			sum += AssetCost(100, 3+i)
		}
		got := TotalAssetCost(100, 3, n)
		if math.Abs(got-sum) > 1e-6*sum {
			t.Errorf("TotalAssetCost(100, 3, %d) = %v, want %v", n, got, sum)
		}
	}
}

func TestMaxAffordableLevels(t *testing.T) {
	tests := []struct {
		name  string
		level int
		money float64
		want  int
	}{
		{"broke", 0, 0, 0},
		{"just under one level", 0, 99.99, 0},
		{"exactly one level", 0, 100, 1},
		{"one level plus change", 0, 200, 1},
		{"exactly two levels", 0, 100 + 175, 2},
		{"deep pockets", 0, 1e6, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxAffordableLevels(100, tt.level, tt.money)
			if got != tt.want {
				t.Errorf("MaxAffordableLevels(100, %d, %v) = %d, want %d", tt.level, tt.money, got, tt.want)
			}
			// The answer must fit, and one more must not.
			if got > 0 && TotalAssetCost(100, tt.level, got) > tt.money {
				t.Errorf("returned %d levels costing more than %v", got, tt.money)
			}
			if TotalAssetCost(100, tt.level, got+1) <= tt.money {
				t.Errorf("could afford %d levels but returned %d", got+1, got)
			}
		})
	}
}

func TestCrimeSuccessClamp(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		power int
		luck  int
		heat  float64
		want  float64
	}{
		{"plain", 0.5, 10, 10, 0, 0.65},
		{"heat discount", 0.9, 0, 0, 50, 0.65},
		{"clamped low by extreme heat", 0.9, 1, 1, 1000, 0},
		{"clamped high by power", 0.5, 500, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrimeSuccess(tt.base, tt.power, tt.luck, tt.heat); !almostEqual(got, tt.want) {
				t.Errorf("CrimeSuccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrestigeGain(t *testing.T) {
	if got := PrestigeGain(9999); got != 0 {
		t.Errorf("PrestigeGain below floor = %v, want 0", got)
	}
	want := math.Pow(6, 1.5) * 0.1
	if got := PrestigeGain(1e6); !almostEqual(got, want) {
		t.Errorf("PrestigeGain(1e6) = %v, want %v", got, want)
	}
	if PrestigeGain(1e8) <= PrestigeGain(1e6) {
		t.Error("PrestigeGain not increasing above the floor")
	}
}

func TestDropChanceClamp(t *testing.T) {
	if got := DropChance(0); !almostEqual(got, 0.3) {
		t.Errorf("DropChance(0) = %v, want 0.3", got)
	}
	if got := DropChance(1000); got != 1 {
		t.Errorf("DropChance(1000) = %v, want 1", got)
	}
}

func TestMasteryBonus(t *testing.T) {
	tests := []struct {
		completions int
		want        float64
	}{
		{0, 0},
		{9, 0},
		{10, 0.01},
		{95, 0.09},
		{200, 0.20},
		{10000, 0.20},
	}
	for _, tt := range tests {
		if got := MasteryBonus(tt.completions); !almostEqual(got, tt.want) {
			t.Errorf("MasteryBonus(%d) = %v, want %v", tt.completions, got, tt.want)
		}
	}
}

func TestSlotUpgradeCost(t *testing.T) {
	for level, want := range []int{10, 20, 40, 80} {
		if got := SlotUpgradeCost(level); got != want {
			t.Errorf("SlotUpgradeCost(%d) = %d, want %d", level, got, want)
		}
	}
}
