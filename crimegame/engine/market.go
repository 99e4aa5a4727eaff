package engine

import (
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
)

// rotateMarketLocked replaces the whole listing atomically. Listings are
// tier-2 rolls without the drop gate, priced by rarity.
func (e *Engine) rotateMarketLocked(now int64) {
	listings := make([]MarketListing, 0, marketSize)
	for i := 0; i < marketSize; i++ {
		item := e.gen.GenerateMarket(marketTier, 0)
		listings = append(listings, MarketListing{
			Item: item,
			Cost: catalog.MarketPrice(item.Rarity),
		})
	}
	e.state.Market = listings
	e.state.MarketRefreshTime = now + marketRotationMs
}

// RefreshMarket rotates the listing. A forced refresh before expiry costs a
// flat fee; otherwise it only rotates when the listing has expired.
func (e *Engine) RefreshMarket(force bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.nowMs()
	if now > e.state.MarketRefreshTime {
		e.rotateMarketLocked(now)
		return true
	}
	if !force {
		return false
	}
	if e.state.Money < marketRefreshFee {
		return false
	}
	e.debitLocked(marketRefreshFee)
	e.rotateMarketLocked(now)
	return true
}

// BuyMarketItem purchases a listed item into inventory and removes the
// listing.
func (e *Engine) BuyMarketItem(itemID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, l := range e.state.Market {
		if l.Item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	listing := e.state.Market[idx]
	if e.state.Money < listing.Cost || e.inventoryFullLocked() {
		return false
	}

	e.debitLocked(listing.Cost)
	e.state.Market = append(e.state.Market[:idx], e.state.Market[idx+1:]...)
	e.state.Inventory = append(e.state.Inventory, listing.Item)

	logger.LogAction("buy_market_item", true, "item", listing.Item.Name, "cost", listing.Cost)
	return true
}

// StartSmuggling opens the single in-flight contract: a paid order for a
// guaranteed slot and rarity that matures after the given duration.
func (e *Engine) StartSmuggling(slot catalog.GearSlot, rarity catalog.Rarity, cost float64, minutes int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !slot.Valid() || !rarity.Valid() || cost <= 0 || minutes <= 0 {
		return false
	}
	if e.state.Smuggling.Active {
		return false
	}
	if e.state.Money < cost {
		return false
	}

	e.debitLocked(cost)
	e.state.Smuggling = SmugglingOrder{
		Active:  true,
		EndTime: e.nowMs() + int64(minutes)*60000,
		Slot:    slot,
		Rarity:  rarity,
	}

	logger.LogAction("start_smuggling", true,
		"slot", string(slot), "rarity", string(rarity), "minutes", minutes)
	return true
}

// ClaimSmuggling collects a matured order exactly once. A full inventory
// rejects the claim but leaves the order claimable; nothing is lost.
func (e *Engine) ClaimSmuggling() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	order := e.state.Smuggling
	if !order.Active || !order.Claimed {
		return false
	}
	if e.inventoryFullLocked() {
		return false
	}

	item := e.gen.GenerateSpecific(order.Slot, order.Rarity)
	e.state.Inventory = append(e.state.Inventory, item)
	e.state.Smuggling = SmugglingOrder{}

	logger.LogAction("claim_smuggling", true, "item", item.Name)
	return true
}
