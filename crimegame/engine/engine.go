// Package engine is the authoritative game-state store: the fixed-step tick
// function, every action resolver, and the snapshot/restore boundary. All
// mutations run under one mutex; each method reads a consistent state and
// publishes a complete next state before returning. The engine never does
// I/O: persistence wraps it from the outside via Snapshot/Restore.
package engine

import (
	"fmt"
	"math/rand/v2"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/loot"
)

const statsCacheSize = 64

// Options configure an Engine. Zero values select production defaults.
type Options struct {
	Clock Clock
	Rand  loot.RandSource
}

type Engine struct {
	mu    sync.Mutex
	state GameState

	clock Clock
	rand  loot.RandSource
	gen   *loot.Generator

	// memoized per-stock statistics, invalidated by history length
	statsCache *lru.Cache

	offlineApplied bool
}

func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	cache, _ := lru.New(statsCacheSize)
	return &Engine{
		state:      NewInitialState(opts.Clock.Now()),
		clock:      opts.Clock,
		rand:       opts.Rand,
		gen:        loot.NewGenerator(opts.Rand),
		statsCache: cache,
	}
}

// Snapshot returns a deep copy of the current state for read-only consumers
// and for serialization.
func (e *Engine) Snapshot() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Restore replaces the current state with a loaded document, defaulting any
// fields absent from older saves.
func (e *Engine) Restore(s GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s.normalize(e.clock.Now())
	// The caller keeps its copy; clone so later mutations never alias it.
	e.state = s.clone()
	e.statsCache.Purge()
}

func (e *Engine) nowMs() int64 {
	return e.clock.Now().UnixMilli()
}

// gearTotals aggregates equipped item effects, amplified by per-slot upgrade
// levels (+10% per level).
type gearTotals struct {
	incomeBonus   float64
	crimeSuccess  float64
	heatReduction float64
	luckBonus     float64
}

func (e *Engine) gearTotalsLocked() gearTotals {
	var g gearTotals
	for slot, item := range e.state.Equipped {
		amp := 1 + 0.1*float64(e.state.SlotLevels[slot])
		g.incomeBonus += item.Effects.IncomeBonus * amp
		g.crimeSuccess += item.Effects.CrimeSuccess * amp
		g.heatReduction += item.Effects.HeatReduction * amp
		g.luckBonus += item.Effects.LuckBonus * amp
	}
	return g
}

func (e *Engine) effectiveLuckLocked() int {
	return e.state.Luck + int(e.gearTotalsLocked().luckBonus)
}

// credit adds earned money; netWorth accrues the same delta and never
// decreases outside resets.
func (e *Engine) creditLocked(amount float64) {
	if amount < 0 {
		panic(fmt.Sprintf("engine: negative credit %f", amount))
	}
	e.state.Money += amount
	e.state.NetWorth += amount
	if e.state.NetWorth >= kingpinNetWorth {
		e.unlockLocked(catalog.AchievementKingpin)
	}
}

// debit removes spent money without touching netWorth. Spending past zero is
// an invariant violation: every resolver checks funds first.
func (e *Engine) debitLocked(amount float64) {
	if amount < 0 || e.state.Money-amount < -1e-6 {
		panic(fmt.Sprintf("engine: invalid debit %f with money %f", amount, e.state.Money))
	}
	e.state.Money -= amount
	if e.state.Money < 0 {
		e.state.Money = 0
	}
}

func (e *Engine) inventoryFullLocked() bool {
	return len(e.state.Inventory) >= e.state.MaxInventorySize
}

func (e *Engine) unlockLocked(id string) {
	for _, a := range e.state.Achievements {
		if a == id {
			return
		}
	}
	e.state.Achievements = append(e.state.Achievements, id)
}

// AddMoney credits an external amount (debug tooling, offline modal replays).
func (e *Engine) AddMoney(amount float64) {
	if amount <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.creditLocked(amount)
}

// ClickMainButton is the manual hustle action: a flat payout scaled by the
// prestige multiplier. Returns the credited amount.
func (e *Engine) ClickMainButton() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	amount := clickBaseValue * formula.PrestigeMultiplier(e.state.Reputation)
	e.creditLocked(amount)
	return amount
}

// ToggleSound flips the persisted sound preference and returns the new value.
func (e *Engine) ToggleSound() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SoundEnabled = !e.state.SoundEnabled
	return e.state.SoundEnabled
}

// AdvanceTutorial moves the tutorial forward one step and returns the new
// step.
func (e *Engine) AdvanceTutorial() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.TutorialStep++
	return e.state.TutorialStep
}
