package engine

import (
	"math"
	"time"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// ReconcileOffline credits income for the wall-clock gap since the last
// save: capped at twelve hours and discounted to 90% efficiency. Runs at
// most once per load; subsequent calls return nil. Gaps under a minute, or
// a run with no passive income, earn nothing.
func (e *Engine) ReconcileOffline() *OfflineGains {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.offlineApplied {
		return nil
	}
	e.offlineApplied = true

	now := e.nowMs()
	gap := float64(now - e.state.LastSaveTime)
	if gap <= offlineMinGapMs || e.state.IncomePerSecond <= 0 {
		e.state.LastSaveTime = now
		return nil
	}

	validTime := math.Min(gap, offlineCapMs)
	income := e.state.IncomePerSecond * (validTime / 1000) * offlineEfficiency
	if income <= 0 {
		e.state.LastSaveTime = now
		return nil
	}

	e.creditLocked(income)
	e.state.LastSaveTime = now

	logger.LogSystem("Offline income reconciled",
		"away", time.Duration(validTime)*time.Millisecond,
		"income", income)
	return &OfflineGains{
		Time:  time.Duration(validTime) * time.Millisecond,
		Money: income,
	}
}
