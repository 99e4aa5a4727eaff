// Package catalog holds the static content registries of the game: assets,
// crimes, upgrades, stocks, rarity tables. All definitions are immutable;
// lookups by id fail loudly so a catalog/state desync surfaces in tests
// instead of silently no-opping.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by every lookup for an unknown id. Callers inside
// the engine treat it as a programming error.
var ErrNotFound = errors.New("catalog: not found")

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists all rarities in ascending value order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	_, ok := rarityMultipliers[r]
	return ok
}

type GearSlot string

const (
	SlotWeapon    GearSlot = "weapon"
	SlotArmor     GearSlot = "armor"
	SlotTool      GearSlot = "tool"
	SlotAccessory GearSlot = "accessory"
	SlotOutfit    GearSlot = "outfit"
)

// GearSlots lists all equipment slots.
var GearSlots = []GearSlot{SlotWeapon, SlotArmor, SlotTool, SlotAccessory, SlotOutfit}

// Valid reports whether s is a known gear slot.
func (s GearSlot) Valid() bool {
	_, ok := slotEffects[s]
	return ok
}

// EffectKind names the single gameplay axis an item effect applies to.
type EffectKind string

const (
	EffectCrimeSuccess  EffectKind = "crimeSuccess"
	EffectHeatReduction EffectKind = "heatReduction"
	EffectIncomeBonus   EffectKind = "incomeBonus"
	EffectLuckBonus     EffectKind = "luckBonus"
)

type AssetDefinition struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
	BaseIncome  float64
	Tier        int
}

type CrimeDefinition struct {
	ID                string
	Name              string
	ActionCost        float64
	BaseSuccessChance float64
	RiskMultiplier    float64
	BaseHeatError     float64 // heat gained on failure
	MinHeat           float64
	MaxHeat           float64
	Tier              int
}

type UpgradeDefinition struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
}

// PrestigeUpgradeDefinition is a permanent meta upgrade bought with
// reputation. Cost doubles per level.
type PrestigeUpgradeDefinition struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
}

type StockDefinition struct {
	ID         string
	Symbol     string
	Name       string
	BasePrice  float64
	Volatility float64
}

type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
}

// FindAsset returns the asset definition for id.
func FindAsset(id string) (AssetDefinition, error) {
	for _, a := range Assets {
		if a.ID == id {
			return a, nil
		}
	}
	return AssetDefinition{}, fmt.Errorf("asset %q: %w", id, ErrNotFound)
}

// FindCrime returns the crime definition for id.
func FindCrime(id string) (CrimeDefinition, error) {
	for _, c := range Crimes {
		if c.ID == id {
			return c, nil
		}
	}
	return CrimeDefinition{}, fmt.Errorf("crime %q: %w", id, ErrNotFound)
}

// FindUpgrade returns the tech upgrade definition for id.
func FindUpgrade(id string) (UpgradeDefinition, error) {
	for _, u := range Upgrades {
		if u.ID == id {
			return u, nil
		}
	}
	return UpgradeDefinition{}, fmt.Errorf("upgrade %q: %w", id, ErrNotFound)
}

// FindPrestigeUpgrade returns the prestige upgrade definition for id.
func FindPrestigeUpgrade(id string) (PrestigeUpgradeDefinition, error) {
	for _, u := range PrestigeUpgrades {
		if u.ID == id {
			return u, nil
		}
	}
	return PrestigeUpgradeDefinition{}, fmt.Errorf("prestige upgrade %q: %w", id, ErrNotFound)
}

// FindStock returns the stock definition for id.
func FindStock(id string) (StockDefinition, error) {
	for _, s := range Stocks {
		if s.ID == id {
			return s, nil
		}
	}
	return StockDefinition{}, fmt.Errorf("stock %q: %w", id, ErrNotFound)
}

// RarityMultiplier is the generic stat/drop multiplier for a rarity.
func RarityMultiplier(r Rarity) float64 {
	return rarityMultipliers[r]
}

// ScrapValue is the scrap credited for salvaging an item of the given rarity.
// A fixed table, deliberately not derived from the generic multiplier.
func ScrapValue(r Rarity) int {
	return scrapValues[r]
}

// MarketPrice is the black-market listing price for a rarity.
func MarketPrice(r Rarity) float64 {
	return marketPrices[r]
}

// SlotEffect is the effect kind an item in the given slot carries.
func SlotEffect(s GearSlot) EffectKind {
	return slotEffects[s]
}
