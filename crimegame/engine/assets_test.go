package engine

import (
	"testing"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
)

func TestBuyAsset(t *testing.T) {
	e, _ := newTestEngine()

	if e.BuyAsset("street_crew") {
		t.Error("bought an asset with no money")
	}

	e.AddMoney(100)
	if !e.BuyAsset("street_crew") {
		t.Fatal("BuyAsset rejected with exact funds")
	}

	snap := e.Snapshot()
	a := snap.Assets["street_crew"]
	if a.Level != 1 || !a.Owned {
		t.Errorf("asset = %+v, want level 1 owned", a)
	}
	if snap.Money != 0 {
		t.Errorf("money = %v, want 0", snap.Money)
	}

	if e.BuyAsset("casino") {
		t.Error("bought an unknown asset")
	}
}

func TestBuyAssetMax(t *testing.T) {
	e, _ := newTestEngine()

	if got := e.BuyAssetMax("street_crew"); got != 0 {
		t.Errorf("BuyAssetMax with no money = %d, want 0", got)
	}

	// 100 + 175 buys exactly two levels.
	e.AddMoney(275)
	if got := e.BuyAssetMax("street_crew"); got != 2 {
		t.Errorf("BuyAssetMax = %d, want 2", got)
	}

	snap := e.Snapshot()
	if snap.Assets["street_crew"].Level != 2 {
		t.Errorf("level = %d, want 2", snap.Assets["street_crew"].Level)
	}
	if snap.Money != 0 {
		t.Errorf("money = %v, want 0", snap.Money)
	}
}

func TestBuyUpgrade(t *testing.T) {
	e, _ := newTestEngine()

	if e.BuyUpgrade(catalog.UpgradeDeepPockets) {
		t.Error("bought an upgrade with no money")
	}

	e.AddMoney(2500)
	if !e.BuyUpgrade(catalog.UpgradeDeepPockets) {
		t.Fatal("BuyUpgrade rejected with exact funds")
	}
	snap := e.Snapshot()
	if snap.Upgrades[catalog.UpgradeDeepPockets] != 1 {
		t.Errorf("level = %d, want 1", snap.Upgrades[catalog.UpgradeDeepPockets])
	}
	if snap.MaxInventorySize != baseInventorySize+2 {
		t.Errorf("inventory size = %d, want %d", snap.MaxInventorySize, baseInventorySize+2)
	}

	e.AddMoney(5000)
	if !e.BuyUpgrade(catalog.UpgradeLuckyCharm) {
		t.Fatal("BuyUpgrade rejected lucky charm")
	}
	if got := e.Snapshot().Luck; got != 2 {
		t.Errorf("luck = %d, want 2", got)
	}
}

func TestBuyUpgradeCostScales(t *testing.T) {
	e, _ := newTestEngine()
	e.AddMoney(500)
	if !e.BuyUpgrade(catalog.UpgradeSmoothTalker) {
		t.Fatal("first level rejected")
	}
	// Second level costs 500 * 2.5.
	e.AddMoney(1249)
	if e.BuyUpgrade(catalog.UpgradeSmoothTalker) {
		t.Error("second level bought under its scaled cost")
	}
	e.AddMoney(1)
	if !e.BuyUpgrade(catalog.UpgradeSmoothTalker) {
		t.Error("second level rejected at its exact cost")
	}
}
