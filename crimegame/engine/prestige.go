package engine

import (
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// Prestige converts lifetime earnings into reputation and soft-resets the
// run. Reputation, prestige upgrades, scrap, slot levels, stats, mastery,
// achievements and the sound preference survive; everything else returns to
// construction defaults. A no-op below the net-worth floor.
func (e *Engine) Prestige() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	gain := formula.PrestigeGain(e.state.NetWorth)
	if gain <= 0 {
		return false
	}

	old := &e.state
	fresh := NewInitialState(e.clock.Now())

	fresh.Reputation = old.Reputation + gain
	fresh.PrestigeUpgrades = old.PrestigeUpgrades
	fresh.Scrap = old.Scrap
	fresh.SlotLevels = old.SlotLevels
	fresh.Power = old.Power
	fresh.Speed = old.Speed
	fresh.Luck = old.Luck
	fresh.CrimeCounts = old.CrimeCounts
	fresh.Achievements = old.Achievements
	fresh.TutorialStep = old.TutorialStep
	fresh.SoundEnabled = old.SoundEnabled
	fresh.StartTime = old.StartTime

	// Starter kit: immediate seed money for the new identity.
	fresh.Money = starterKitPerLevel * float64(old.PrestigeUpgrades[catalog.PrestigeStarterKit])

	e.state = fresh
	e.unlockLocked(catalog.AchievementMadeMan)
	e.statsCache.Purge()

	logger.LogAction("prestige", true, "gain", gain, "reputation", fresh.Reputation)
	return true
}

// BuyPrestigeUpgrade spends reputation on a permanent meta upgrade. Cost
// doubles per level.
func (e *Engine) BuyPrestigeUpgrade(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, err := catalog.FindPrestigeUpgrade(id)
	if err != nil {
		logger.LogError("unknown prestige upgrade id", err)
		return false
	}

	level := e.state.PrestigeUpgrades[id]
	cost := def.BaseCost * float64(int64(1)<<level)
	if e.state.Reputation < cost {
		return false
	}
	e.state.Reputation -= cost
	e.state.PrestigeUpgrades[id] = level + 1

	logger.LogAction("buy_prestige_upgrade", true, "upgrade", id, "level", level+1)
	return true
}

// ResetGame is the hard reset: everything, including reputation and
// prestige upgrades, returns to construction defaults.
func (e *Engine) ResetGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = NewInitialState(e.clock.Now())
	e.offlineApplied = false
	e.statsCache.Purge()
	logger.LogSystem("Game state hard reset")
}
