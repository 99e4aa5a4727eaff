package engine

import (
	"fmt"
	"math"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// DepositToBank moves cash into the bank, charging the fractional deposit
// fee up front. The tax haven prestige upgrade lowers the fee to a floor.
func (e *Engine) DepositToBank(amount float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 || e.state.Money < amount {
		return false
	}
	fee := depositFeeBase - 0.01*float64(e.state.PrestigeUpgrades[catalog.PrestigeTaxHaven])
	if fee < depositFeeFloor {
		fee = depositFeeFloor
	}

	e.debitLocked(amount)
	e.state.BankBalance += amount * (1 - fee)
	logger.LogAction("deposit", true, "amount", amount, "fee", fee)
	return true
}

// WithdrawFromBank moves bank balance back to cash, fee-free.
func (e *Engine) WithdrawFromBank(amount float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 || e.state.BankBalance < amount {
		return false
	}
	e.state.BankBalance -= amount
	e.state.Money += amount
	return true
}

// BuyStock fills at the current spot price; the quoted price is the fill
// price, no slippage.
func (e *Engine) BuyStock(id string, qty int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := catalog.FindStock(id); err != nil {
		logger.LogError("unknown stock id", err)
		return false
	}
	if qty <= 0 {
		return false
	}
	cost := e.state.StockPrices[id] * float64(qty)
	if e.state.Money < cost {
		return false
	}

	e.debitLocked(cost)
	e.state.StockPortfolio[id] += qty
	e.unlockLocked(catalog.AchievementShareholder)

	logger.LogAction("buy_stock", true, "stock", id, "qty", qty, "cost", cost)
	return true
}

// SellStock fills at the current spot price.
func (e *Engine) SellStock(id string, qty int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := catalog.FindStock(id); err != nil {
		logger.LogError("unknown stock id", err)
		return false
	}
	if qty <= 0 || e.state.StockPortfolio[id] < qty {
		return false
	}

	proceeds := e.state.StockPrices[id] * float64(qty)
	e.state.StockPortfolio[id] -= qty
	e.state.Money += proceeds

	logger.LogAction("sell_stock", true, "stock", id, "qty", qty, "proceeds", proceeds)
	return true
}

// tickStocksLocked runs the mean-reverting random walk: each stock updates
// with a fixed per-tick probability, drifting within its volatility band
// while reversion pulls 5% of the way back toward base price.
func (e *Engine) tickStocksLocked() {
	for _, def := range catalog.Stocks {
		if e.rand() >= stockUpdateChance {
			continue
		}
		price := e.state.StockPrices[def.ID]
		fluctuation := (e.rand()*2 - 1) * def.Volatility
		reversion := stockReversion * (def.BasePrice - price) / price

		price *= 1 + fluctuation + reversion
		if price < stockPriceFloor {
			price = stockPriceFloor
		}
		e.state.StockPrices[def.ID] = price

		history := append(e.state.StockHistory[def.ID], price)
		if len(history) > stockHistoryCap {
			history = history[len(history)-stockHistoryCap:]
		}
		e.state.StockHistory[def.ID] = history
	}
}

// StockStats summarizes a stock's recent history for graphing.
type StockStats struct {
	Current   float64
	ChangePct float64 // vs. the oldest retained sample
	High      float64
	Low       float64
}

// StockStatsFor derives display statistics from the bounded history buffer,
// memoized until the history advances.
func (e *Engine) StockStatsFor(id string) (StockStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := catalog.FindStock(id); err != nil {
		return StockStats{}, err
	}
	history := e.state.StockHistory[id]
	key := fmt.Sprintf("%s:%d:%.4f", id, len(history), e.state.StockPrices[id])
	if cached, ok := e.statsCache.Get(key); ok {
		return cached.(StockStats), nil
	}

	stats := StockStats{
		Current: e.state.StockPrices[id],
		High:    math.Inf(-1),
		Low:     math.Inf(1),
	}
	for _, p := range history {
		stats.High = math.Max(stats.High, p)
		stats.Low = math.Min(stats.Low, p)
	}
	if len(history) > 0 && history[0] > 0 {
		stats.ChangePct = (stats.Current - history[0]) / history[0] * 100
	}

	e.statsCache.Add(key, stats)
	return stats, nil
}
