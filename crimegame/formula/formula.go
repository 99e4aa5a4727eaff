// Package formula holds the pure numeric curves of the simulation. Every
// function is deterministic and total over its documented domain; callers
// supply all inputs and no global state is read. Randomness stays outside:
// where a roll is needed, these functions return the probability threshold.
package formula

import "math"

const (
	AssetCostRatio = 1.75 // per-level cost growth of income assets
	TechCostRatio  = 2.5  // steeper curve for passive tech upgrades

	assetIncomeExponent = 1.35
	capitalBonusFactor  = 0.25

	crimePowerFactor = 0.01
	crimeLuckFactor  = 0.005
	crimeHeatFactor  = 0.005

	prestigeFloor      = 10000
	prestigeGainFactor = 0.1

	dropChanceBase       = 0.3
	dropChanceLuckFactor = 0.005

	masteryPerLevel   = 0.01
	masteryCap        = 0.20
	masteryCrimesPerLevel = 10
)

// milestone thresholds double asset income; after 200 every +100 levels adds
// another doubling.
var milestones = []int{25, 50, 100, 200}

// MilestoneMultiplier returns 2^n where n is the number of level thresholds
// crossed (25/50/100/200, then 300, 400, ...).
func MilestoneMultiplier(level int) float64 {
	crossed := 0
	for _, m := range milestones {
		if level >= m {
			crossed++
		}
	}
	for m := 300; level >= m; m += 100 {
		crossed++
	}
	return math.Pow(2, float64(crossed))
}

// AssetIncome is the per-second income of a single asset at the given level.
func AssetIncome(base float64, level int) float64 {
	if level <= 0 {
		return 0
	}
	return base * math.Pow(float64(level), assetIncomeExponent) * MilestoneMultiplier(level)
}

// AssetCost is the price of buying the next level of an asset currently at
// the given level. Strictly increasing in level.
func AssetCost(baseCost float64, level int) float64 {
	return baseCost * math.Pow(AssetCostRatio, float64(level))
}

// TotalAssetCost sums the cost of the next n levels starting at level.
// Geometric series: cost(level) * (r^n - 1) / (r - 1).
func TotalAssetCost(baseCost float64, level, n int) float64 {
	if n <= 0 {
		return 0
	}
	first := AssetCost(baseCost, level)
	return first * (math.Pow(AssetCostRatio, float64(n)) - 1) / (AssetCostRatio - 1)
}

// MaxAffordableLevels inverts the geometric series to find how many whole
// levels can be bought with the given money. The closed form can overshoot by
// one under floating rounding, so the result is stepped down until the exact
// summed cost fits.
func MaxAffordableLevels(baseCost float64, level int, money float64) int {
	first := AssetCost(baseCost, level)
	if money < first {
		return 0
	}
	n := int(math.Floor(math.Log(money*(AssetCostRatio-1)/first+1) / math.Log(AssetCostRatio)))
	for n > 0 && TotalAssetCost(baseCost, level, n) > money {
		n--
	}
	return n
}

// TechCost is the price of the next level of a tech upgrade.
func TechCost(baseCost float64, level int) float64 {
	return baseCost * math.Pow(TechCostRatio, float64(level))
}

// CapitalBonus is the diminishing passive-income multiplier for cash on hand.
// The +1 offset keeps log10 in domain for money >= 0.
func CapitalBonus(money float64) float64 {
	if money < 0 {
		money = 0
	}
	return math.Log10(money+1) * capitalBonusFactor
}

// CrimeSuccess is the clamped probability of a crime attempt succeeding.
func CrimeSuccess(baseChance float64, power, luck int, heat float64) float64 {
	chance := baseChance + float64(power)*crimePowerFactor + float64(luck)*crimeLuckFactor - heat*crimeHeatFactor
	return Clamp(chance, 0, 1)
}

// PrestigeGain is the reputation earned by prestiging at the given net worth.
// Zero below the floor, strictly increasing above it.
func PrestigeGain(netWorth float64) float64 {
	if netWorth < prestigeFloor {
		return 0
	}
	return math.Pow(math.Log10(netWorth), 1.5) * prestigeGainFactor
}

// PrestigeMultiplier converts accumulated reputation into the global income
// multiplier.
func PrestigeMultiplier(reputation float64) float64 {
	return 1 + reputation*0.1
}

// SlotUpgradeCost is the scrap price of the next level of a gear slot.
func SlotUpgradeCost(level int) int {
	return 10 * (1 << level)
}

// DropChance is the probability that a successful crime drops loot, clamped
// so high luck cannot push it past certainty.
func DropChance(luck int) float64 {
	return Clamp(dropChanceBase+float64(luck)*dropChanceLuckFactor, 0, 1)
}

// MasteryBonus is the flat success-chance bonus from repeated completions of
// one crime: +1% per 10 completions, capped at +20%.
func MasteryBonus(completions int) float64 {
	bonus := float64(completions/masteryCrimesPerLevel) * masteryPerLevel
	return math.Min(bonus, masteryCap)
}

// Clamp bounds value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}
