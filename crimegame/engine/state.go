package engine

import (
	"time"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/loot"
)

// SchemaVersion is written into every save document. Older documents simply
// lack fields; normalize fills them with initial values on load.
const SchemaVersion = 1

const (
	MaxHeat      = 100.0
	JailDuration = 30000.0 // ms

	baseActionPoints    = 100.0
	baseActionRegen     = 5.0
	actionRegenPerSpeed = 0.5
	actionCapPerLevel   = 50.0

	baseInventorySize = 20

	bribeFraction = 0.5

	depositFeeBase  = 0.10
	depositFeeFloor = 0.02
	interestPerTick = 0.0001

	stockUpdateChance = 0.1
	stockReversion    = 0.05
	stockPriceFloor   = 1.0
	stockHistoryCap   = 50

	marketSize       = 6
	marketTier       = 2
	marketRotationMs = 30 * 60 * 1000
	marketRefreshFee = 2500.0

	offlineMinGapMs     = 60000.0
	offlineCapMs        = 12 * 3600 * 1000.0
	offlineEfficiency   = 0.9
	clickBaseValue      = 10.0
	starterKitPerLevel  = 10000.0
	kingpinNetWorth     = 1000000.0
	inventoryExpansion  = 5
	expansionCostFactor = 1000.0
)

// AssetState tracks one purchasable income asset. Owned flips true on first
// purchase and never reverts within a run.
type AssetState struct {
	Level int  `json:"level"`
	Owned bool `json:"owned"`
}

// SmugglingOrder is the single in-flight guaranteed-loot contract. Claimed
// flips true exactly once when the timer expires; the claim action consumes
// the whole record.
type SmugglingOrder struct {
	Active  bool             `json:"active"`
	EndTime int64            `json:"endTime"` // ms epoch
	Slot    catalog.GearSlot `json:"slot"`
	Rarity  catalog.Rarity   `json:"rarity"`
	Claimed bool             `json:"claimed"`
}

// MarketListing is one ephemeral black-market offer.
type MarketListing struct {
	Item loot.Item `json:"item"`
	Cost float64   `json:"cost"`
}

// OfflineGains reports a one-time offline reconciliation to the caller.
type OfflineGains struct {
	Time  time.Duration
	Money float64
}

// GameState is the full persisted document. All timestamps are millisecond
// epochs, matching the save format.
type GameState struct {
	SchemaVersion int `json:"schemaVersion"`

	// Resources
	Money        float64 `json:"money"`
	NetWorth     float64 `json:"netWorth"` // cumulative lifetime earnings, not liquid wealth
	ActionPoints float64 `json:"actionPoints"`
	Heat         float64 `json:"heat"`
	JailTime     float64 `json:"jailTime"` // ms remaining; >0 blocks crimes

	// Stats
	Power int `json:"power"`
	Speed int `json:"speed"`
	Luck  int `json:"luck"`

	// Progression
	Assets           map[string]*AssetState `json:"assets"`
	Upgrades         map[string]int         `json:"upgrades"`
	PrestigeUpgrades map[string]int         `json:"prestigeUpgrades"`

	// Inventory and equipment. An item lives in exactly one of the two.
	Inventory        []loot.Item                    `json:"inventory"`
	Equipped         map[catalog.GearSlot]loot.Item `json:"equipped"`
	MaxInventorySize int                            `json:"maxInventorySize"`

	// Scrap economy
	Scrap      int                      `json:"scrap"`
	SlotLevels map[catalog.GearSlot]int `json:"slotLevels"`

	// Black market
	Market            []MarketListing `json:"market"`
	MarketRefreshTime int64           `json:"marketRefreshTime"` // ms epoch
	Smuggling         SmugglingOrder  `json:"smuggling"`

	// Financial sub-ledgers
	BankBalance    float64              `json:"bankBalance"`
	StockPortfolio map[string]int       `json:"stockPortfolio"`
	StockPrices    map[string]float64   `json:"stockPrices"`
	StockHistory   map[string][]float64 `json:"stockHistory"`

	// Meta
	Reputation   float64        `json:"reputation"`
	CrimeCounts  map[string]int `json:"crimeCounts"`
	Achievements []string       `json:"achievements"`
	TutorialStep int            `json:"tutorialStep"`
	SoundEnabled bool           `json:"soundEnabled"`

	// Computed per tick, persisted so a fresh load can price offline time.
	IncomePerSecond float64 `json:"incomePerSecond"`

	StartTime    int64 `json:"startTime"`    // ms epoch, immutable
	LastSaveTime int64 `json:"lastSaveTime"` // ms epoch, updated every tick
}

// NewInitialState builds the construction-default state at the given time.
func NewInitialState(now time.Time) GameState {
	ms := now.UnixMilli()
	s := GameState{
		SchemaVersion:    SchemaVersion,
		ActionPoints:     baseActionPoints,
		Power:            1,
		Speed:            1,
		Luck:             1,
		Assets:           map[string]*AssetState{},
		Upgrades:         map[string]int{},
		PrestigeUpgrades: map[string]int{},
		Inventory:        []loot.Item{},
		Equipped:         map[catalog.GearSlot]loot.Item{},
		MaxInventorySize: baseInventorySize,
		SlotLevels:       map[catalog.GearSlot]int{},
		Market:           []MarketListing{},
		StockPortfolio:   map[string]int{},
		StockPrices:      map[string]float64{},
		StockHistory:     map[string][]float64{},
		CrimeCounts:      map[string]int{},
		Achievements:     []string{},
		SoundEnabled:     true,
		StartTime:        ms,
		LastSaveTime:     ms,
	}
	for _, a := range catalog.Assets {
		s.Assets[a.ID] = &AssetState{}
	}
	for _, def := range catalog.Stocks {
		s.StockPrices[def.ID] = def.BasePrice
		s.StockHistory[def.ID] = []float64{def.BasePrice}
	}
	return s
}

// normalize fills fields absent from older save documents with their initial
// values and repairs out-of-range numbers. Called on every restore.
func (s *GameState) normalize(now time.Time) {
	s.SchemaVersion = SchemaVersion
	if s.Assets == nil {
		s.Assets = map[string]*AssetState{}
	}
	for _, a := range catalog.Assets {
		if s.Assets[a.ID] == nil {
			s.Assets[a.ID] = &AssetState{}
		}
	}
	if s.Upgrades == nil {
		s.Upgrades = map[string]int{}
	}
	if s.PrestigeUpgrades == nil {
		s.PrestigeUpgrades = map[string]int{}
	}
	if s.Inventory == nil {
		s.Inventory = []loot.Item{}
	}
	if s.Equipped == nil {
		s.Equipped = map[catalog.GearSlot]loot.Item{}
	}
	if s.MaxInventorySize <= 0 {
		s.MaxInventorySize = baseInventorySize
	}
	if s.SlotLevels == nil {
		s.SlotLevels = map[catalog.GearSlot]int{}
	}
	if s.Market == nil {
		s.Market = []MarketListing{}
	}
	if s.StockPortfolio == nil {
		s.StockPortfolio = map[string]int{}
	}
	if s.StockPrices == nil {
		s.StockPrices = map[string]float64{}
	}
	if s.StockHistory == nil {
		s.StockHistory = map[string][]float64{}
	}
	for _, def := range catalog.Stocks {
		if s.StockPrices[def.ID] <= 0 {
			s.StockPrices[def.ID] = def.BasePrice
		}
		if len(s.StockHistory[def.ID]) == 0 {
			s.StockHistory[def.ID] = []float64{s.StockPrices[def.ID]}
		}
	}
	if s.CrimeCounts == nil {
		s.CrimeCounts = map[string]int{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.Power < 1 {
		s.Power = 1
	}
	if s.Speed < 1 {
		s.Speed = 1
	}
	if s.Luck < 1 {
		s.Luck = 1
	}
	if s.Money < 0 {
		s.Money = 0
	}
	if s.Heat < 0 {
		s.Heat = 0
	}
	if s.Heat > MaxHeat {
		s.Heat = MaxHeat
	}
	if s.JailTime < 0 {
		s.JailTime = 0
	}
	if s.StartTime == 0 {
		s.StartTime = now.UnixMilli()
	}
	if s.LastSaveTime == 0 {
		s.LastSaveTime = now.UnixMilli()
	}
}

// clone returns a deep copy; read-only consumers get snapshots, never the
// live state.
func (s *GameState) clone() GameState {
	out := *s

	out.Assets = make(map[string]*AssetState, len(s.Assets))
	for id, a := range s.Assets {
		copied := *a
		out.Assets[id] = &copied
	}
	out.Upgrades = copyMap(s.Upgrades)
	out.PrestigeUpgrades = copyMap(s.PrestigeUpgrades)
	out.Inventory = append([]loot.Item{}, s.Inventory...)
	out.Equipped = make(map[catalog.GearSlot]loot.Item, len(s.Equipped))
	for slot, item := range s.Equipped {
		out.Equipped[slot] = item
	}
	out.SlotLevels = copyMap(s.SlotLevels)
	out.Market = append([]MarketListing{}, s.Market...)
	out.StockPortfolio = copyMap(s.StockPortfolio)
	out.StockPrices = copyMap(s.StockPrices)
	out.StockHistory = make(map[string][]float64, len(s.StockHistory))
	for id, h := range s.StockHistory {
		out.StockHistory[id] = append([]float64{}, h...)
	}
	out.CrimeCounts = copyMap(s.CrimeCounts)
	out.Achievements = append([]string{}, s.Achievements...)

	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
