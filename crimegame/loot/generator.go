package loot

import (
	"math"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
)

// Per-effect base coefficients, scaled by rarity and tier.
const (
	baseCrimeSuccess  = 0.01
	baseHeatReduction = 1
	baseIncomeBonus   = 0.05
	baseLuckBonus     = 1

	// Guaranteed contract orders get a fixed premium over random drops.
	orderBonus = 1.2
)

// RandSource returns uniform values in [0, 1). Tests supply fixed sequences.
type RandSource func() float64

// Generator rolls items. It holds no game state; the rand source is the only
// mutable collaborator.
type Generator struct {
	rand RandSource
}

func NewGenerator(rand RandSource) *Generator {
	return &Generator{rand: rand}
}

// Generate rolls a random drop for a crime of the given tier. Returns false
// when the drop gate fails; higher luck widens the gate (clamped at 1).
func (g *Generator) Generate(tier, luck int) (Item, bool) {
	if g.rand() > formula.DropChance(luck) {
		return Item{}, false
	}
	return g.roll(tier, luck), true
}

// GenerateMarket rolls a listing item: same distribution as Generate but the
// drop gate is skipped, since market rotations always fill every slot.
func (g *Generator) GenerateMarket(tier, luck int) Item {
	return g.roll(tier, luck)
}

// GenerateSpecific builds the deterministic item for a smuggling order: the
// caller fixes slot and rarity, stats follow the standard formula with the
// order premium. Only the cosmetic name is random.
func (g *Generator) GenerateSpecific(slot catalog.GearSlot, rarity catalog.Rarity) Item {
	multiplier := catalog.RarityMultiplier(rarity) * orderBonus
	return Item{
		ID:      NewInstanceID(),
		Name:    g.rollName(slot, rarity),
		Rarity:  rarity,
		Slot:    slot,
		Effects: effectsFor(slot, multiplier),
	}
}

func (g *Generator) roll(tier, luck int) Item {
	// The thresholds skip uncommon: it enters play only through smuggling
	// orders, where the rarity is caller-chosen.
	roll := g.rand() + float64(luck)*0.002
	rarity := catalog.RarityCommon
	switch {
	case roll > 0.98:
		rarity = catalog.RarityLegendary
	case roll > 0.85:
		rarity = catalog.RarityEpic
	case roll > 0.60:
		rarity = catalog.RarityRare
	}

	slot := catalog.GearSlots[int(g.rand()*float64(len(catalog.GearSlots)))%len(catalog.GearSlots)]
	multiplier := catalog.RarityMultiplier(rarity) * (1 + float64(tier)*0.2)

	return Item{
		ID:      NewInstanceID(),
		Name:    g.rollName(slot, rarity),
		Rarity:  rarity,
		Slot:    slot,
		Effects: effectsFor(slot, multiplier),
	}
}

func (g *Generator) rollName(slot catalog.GearSlot, rarity catalog.Rarity) string {
	names := baseNames[slot]
	prefixes := rarityPrefixes[rarity]
	base := names[int(g.rand()*float64(len(names)))%len(names)]
	prefix := prefixes[int(g.rand()*float64(len(prefixes)))%len(prefixes)]
	return prefix + " " + base
}

func effectsFor(slot catalog.GearSlot, multiplier float64) Effects {
	var e Effects
	switch catalog.SlotEffect(slot) {
	case catalog.EffectCrimeSuccess:
		e.CrimeSuccess = round3(baseCrimeSuccess * multiplier)
	case catalog.EffectHeatReduction:
		e.HeatReduction = math.Round(baseHeatReduction * multiplier)
	case catalog.EffectIncomeBonus:
		e.IncomeBonus = round3(baseIncomeBonus * multiplier)
	case catalog.EffectLuckBonus:
		e.LuckBonus = math.Round(baseLuckBonus * multiplier)
	}
	return e
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
