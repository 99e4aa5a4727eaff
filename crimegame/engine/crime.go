package engine

import (
	"math"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// PerformCrime attempts the crime and reports success. Rejections (unknown
// id, jailed, no action points, full inventory) leave state untouched and
// return false. At max heat the attempt triggers an automatic arrest before
// any roll. Action points are debited on both success and failure.
func (e *Engine) PerformCrime(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	crime, err := catalog.FindCrime(id)
	if err != nil {
		logger.LogError("unknown crime id", err)
		return false
	}

	s := &e.state
	if s.JailTime > 0 {
		return false
	}

	// Automatic arrest gate. Heat only jails through a crime attempt; idle
	// heat can sit at the cap indefinitely.
	if s.Heat >= MaxHeat {
		s.JailTime = JailDuration
		e.unlockLocked(catalog.AchievementJailbird)
		logger.LogAction("crime", false, "outcome", "arrested")
		return false
	}

	if s.ActionPoints < crime.ActionCost {
		return false
	}
	// A successful roll may need to insert loot; pre-check capacity rather
	// than silently drop an earned item.
	if e.inventoryFullLocked() {
		return false
	}

	gear := e.gearTotalsLocked()
	luck := s.Luck + int(gear.luckBonus)

	base := crime.BaseSuccessChance +
		gear.crimeSuccess +
		formula.MasteryBonus(s.CrimeCounts[id]) +
		0.02*float64(s.Upgrades[catalog.UpgradePlanning]) +
		0.02*float64(s.PrestigeUpgrades[catalog.PrestigeStreetCred])
	chance := formula.CrimeSuccess(base, s.Power, luck, s.Heat)

	success := e.rand() < chance
	s.ActionPoints -= crime.ActionCost

	// Rewards reference current passive income so crime stays proportional
	// to progression, with a floor for fresh runs.
	baseIncomeRef := math.Max(10, s.IncomePerSecond)

	if success {
		connectionsBonus := 1 + 0.05*float64(s.Upgrades[catalog.UpgradeConnections])
		powerBonus := 1 + 0.01*float64(s.Power)
		e.creditLocked(baseIncomeRef * crime.RiskMultiplier * connectionsBonus * powerBonus)

		heatGain := math.Floor(e.rand()*(crime.MaxHeat-crime.MinHeat+1)) + crime.MinHeat
		e.addHeatLocked(math.Max(0, heatGain-gear.heatReduction))

		if item, ok := e.gen.Generate(crime.Tier, luck); ok {
			s.Inventory = append(s.Inventory, item)
		}

		s.CrimeCounts[id]++
		e.unlockLocked(catalog.AchievementFirstScore)
	} else {
		// Failure burns more heat and gear shields only half as well.
		e.addHeatLocked(math.Max(1, crime.BaseHeatError-gear.heatReduction*0.5))
	}

	logger.LogAction("crime", success, "crime", id)
	return success
}

// BribePolice pays half of current cash to clear jail time and heat. No
// state restriction: bribing while free simply clears heat.
func (e *Engine) BribePolice() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cost := math.Floor(e.state.Money * bribeFraction)
	e.debitLocked(cost)
	e.state.JailTime = 0
	e.state.Heat = 0
	logger.LogAction("bribe", true, "cost", cost)
}

func (e *Engine) addHeatLocked(amount float64) {
	e.state.Heat += amount
	if e.state.Heat > MaxHeat {
		e.state.Heat = MaxHeat
	}
}
