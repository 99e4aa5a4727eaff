package engine

import (
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/formula"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// EquipItem moves the inventory item into its slot. Swapping into an
// occupied slot returns the previous item to inventory, so the combined
// item count never changes. Ownership transfers; items are never duplicated.
func (e *Engine) EquipItem(itemID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findInventoryLocked(itemID)
	if idx < 0 {
		return false
	}
	item := e.state.Inventory[idx]

	e.state.Inventory = append(e.state.Inventory[:idx], e.state.Inventory[idx+1:]...)
	if old, occupied := e.state.Equipped[item.Slot]; occupied {
		e.state.Inventory = append(e.state.Inventory, old)
	}
	e.state.Equipped[item.Slot] = item

	logger.LogAction("equip", true, "item", item.Name, "slot", string(item.Slot))
	return true
}

// UnequipItem returns the equipped item to inventory. Rejected when the
// inventory is full: no forced overflow.
func (e *Engine) UnequipItem(slot catalog.GearSlot) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.state.Equipped[slot]
	if !ok {
		return false
	}
	if e.inventoryFullLocked() {
		return false
	}
	delete(e.state.Equipped, slot)
	e.state.Inventory = append(e.state.Inventory, item)
	return true
}

// SalvageItem destroys the inventory item and credits its rarity-tiered
// scrap value.
func (e *Engine) SalvageItem(itemID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findInventoryLocked(itemID)
	if idx < 0 {
		return false
	}
	item := e.state.Inventory[idx]
	e.state.Inventory = append(e.state.Inventory[:idx], e.state.Inventory[idx+1:]...)
	e.state.Scrap += catalog.ScrapValue(item.Rarity)

	logger.LogAction("salvage", true, "item", item.Name, "scrap", e.state.Scrap)
	return true
}

// SalvageFilteredItems salvages every inventory item of the given rarity in
// one consistent pass and returns how many were destroyed.
func (e *Engine) SalvageFilteredItems(rarity catalog.Rarity) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.state.Inventory[:0]
	count := 0
	for _, item := range e.state.Inventory {
		if item.Rarity == rarity {
			e.state.Scrap += catalog.ScrapValue(item.Rarity)
			count++
			continue
		}
		kept = append(kept, item)
	}
	e.state.Inventory = kept

	if count > 0 {
		logger.LogAction("salvage_bulk", true, "rarity", string(rarity), "count", count)
	}
	return count
}

// UpgradeSlot spends scrap to raise one gear slot's level. Each slot levels
// independently on the same doubling cost curve.
func (e *Engine) UpgradeSlot(slot catalog.GearSlot) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !slot.Valid() {
		return false
	}
	level := e.state.SlotLevels[slot]
	cost := formula.SlotUpgradeCost(level)
	if e.state.Scrap < cost {
		return false
	}
	e.state.Scrap -= cost
	e.state.SlotLevels[slot] = level + 1

	logger.LogAction("upgrade_slot", true, "slot", string(slot), "level", level+1)
	return true
}

// ExpandInventory buys extra capacity; the price scales with current size.
func (e *Engine) ExpandInventory() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	cost := float64(e.state.MaxInventorySize) * expansionCostFactor
	if e.state.Money < cost {
		return false
	}
	e.debitLocked(cost)
	e.state.MaxInventorySize += inventoryExpansion
	return true
}

func (e *Engine) findInventoryLocked(itemID string) int {
	for i, item := range e.state.Inventory {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
