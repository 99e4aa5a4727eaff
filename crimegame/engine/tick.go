package engine

import (
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
)

// Tick advances the simulation by dt. The driver guarantees dt > 0; large
// gaps (offline periods) go through ReconcileOffline instead of here.
// Step order is fixed: income, heat/jail, market rotation, action regen,
// bank interest, stock walk, smuggling completion.
func (e *Engine) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	now := e.nowMs()
	seconds := dt / 1000

	// 1. Passive income
	var totalAssetIncome float64
	for _, def := range catalog.Assets {
		if a := s.Assets[def.ID]; a != nil && a.Level > 0 {
			totalAssetIncome += formula.AssetIncome(def.BaseIncome, a.Level)
		}
	}
	gear := e.gearTotalsLocked()
	incomePerSecond := totalAssetIncome *
		(1 + gear.incomeBonus) *
		(1 + formula.CapitalBonus(s.Money)) *
		formula.PrestigeMultiplier(s.Reputation)
	s.IncomePerSecond = incomePerSecond
	e.creditLocked(incomePerSecond * seconds)

	// 2. Heat decay and jail timer. Heat clears on natural release.
	if s.JailTime > 0 {
		s.JailTime -= dt
		if s.JailTime <= 0 {
			s.JailTime = 0
			s.Heat = 0
		}
	} else {
		decayRate := 1 * (1 + 0.1*float64(s.Upgrades[catalog.UpgradeSmoothTalker]))
		s.Heat -= decayRate * seconds
		if s.Heat < 0 {
			s.Heat = 0
		}
	}

	// 3. Market rotation: the whole listing is replaced at once.
	if now > s.MarketRefreshTime {
		e.rotateMarketLocked(now)
	}

	// 4. Action-point regen
	regen := (baseActionRegen + actionRegenPerSpeed*float64(s.Speed)) * seconds
	apCap := baseActionPoints + actionCapPerLevel*float64(s.Upgrades[catalog.UpgradeEndurance])
	s.ActionPoints += regen
	if s.ActionPoints > apCap {
		s.ActionPoints = apCap
	}

	// 5. Bank interest compounds per tick, not per second. The faster the
	// driver ticks, the faster it compounds; save compatibility depends on
	// keeping it this way.
	s.BankBalance += s.BankBalance * interestPerTick

	// 6. Stock random walk
	e.tickStocksLocked()

	// 7. Smuggling completion flips Claimed exactly once.
	if s.Smuggling.Active && !s.Smuggling.Claimed && now >= s.Smuggling.EndTime {
		s.Smuggling.Claimed = true
	}

	s.LastSaveTime = now
}
