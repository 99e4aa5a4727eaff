// Package loot synthesizes gear items: rarity roll, slot roll, stat roll and
// name roll. The random source is injected so tests can feed fixed sequences.
package loot

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
)

// Effects holds at most one non-zero bonus, determined by the item's slot.
// Fractions are multiplicative bonuses (0.05 = +5%), flats are additive.
type Effects struct {
	IncomeBonus   float64 `json:"incomeBonus,omitempty"`
	CrimeSuccess  float64 `json:"crimeSuccess,omitempty"`
	HeatReduction float64 `json:"heatReduction,omitempty"`
	LuckBonus     float64 `json:"luckBonus,omitempty"`
}

// Item is a single gear instance. Its ID is unique per instance; an item
// belongs to exactly one of the inventory list or the equipped map.
type Item struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Rarity  catalog.Rarity   `json:"rarity"`
	Slot    catalog.GearSlot `json:"slot"`
	Effects Effects          `json:"effects"`
}

// NewInstanceID produces a short unique item id: 8 random bytes in base36.
func NewInstanceID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("loot: id entropy unavailable: " + err.Error())
	}
	return base36encode(binary.BigEndian.Uint64(b))
}

func base36encode(n uint64) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}
	var out []byte
	for n > 0 {
		out = append([]byte{alphabet[n%36]}, out...)
		n /= 36
	}
	return string(out)
}
