package engine

import (
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// BuyAsset purchases one level of the asset. No partial purchases: rejected
// outright when money is short.
func (e *Engine) BuyAsset(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, err := catalog.FindAsset(id)
	if err != nil {
		logger.LogError("unknown asset id", err)
		return false
	}
	a := e.state.Assets[id]

	cost := formula.AssetCost(def.BaseCost, a.Level)
	if e.state.Money < cost {
		return false
	}
	e.debitLocked(cost)
	a.Level++
	a.Owned = true
	logger.LogAction("buy_asset", true, "asset", id, "level", a.Level)
	return true
}

// BuyAssetMax buys as many whole levels as current money affords via the
// closed-form geometric inversion, re-verified against the exact sum before
// committing. Returns the number of levels bought.
func (e *Engine) BuyAssetMax(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, err := catalog.FindAsset(id)
	if err != nil {
		logger.LogError("unknown asset id", err)
		return 0
	}
	a := e.state.Assets[id]

	n := formula.MaxAffordableLevels(def.BaseCost, a.Level, e.state.Money)
	if n <= 0 {
		return 0
	}
	total := formula.TotalAssetCost(def.BaseCost, a.Level, n)
	if total > e.state.Money {
		return 0
	}
	e.debitLocked(total)
	a.Level += n
	a.Owned = true
	logger.LogAction("buy_asset_max", true, "asset", id, "levels", n)
	return n
}

// BuyUpgrade purchases the next level of a tech upgrade with money. Some
// upgrades apply a one-time side effect on purchase.
func (e *Engine) BuyUpgrade(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, err := catalog.FindUpgrade(id)
	if err != nil {
		logger.LogError("unknown upgrade id", err)
		return false
	}

	level := e.state.Upgrades[id]
	cost := formula.TechCost(def.BaseCost, level)
	if e.state.Money < cost {
		return false
	}
	e.debitLocked(cost)
	e.state.Upgrades[id] = level + 1

	switch id {
	case catalog.UpgradeDeepPockets:
		e.state.MaxInventorySize += 2
	case catalog.UpgradeLuckyCharm:
		e.state.Luck++
	}

	logger.LogAction("buy_upgrade", true, "upgrade", id, "level", level+1)
	return true
}
