package catalog

// Upgrade ids referenced directly by the engine.
const (
	UpgradeSmoothTalker = "smooth_talker"
	UpgradeConnections  = "connections"
	UpgradeDeepPockets  = "deep_pockets"
	UpgradeLuckyCharm   = "lucky_charm"
	UpgradeEndurance    = "endurance"
	UpgradePlanning     = "planning"

	PrestigeStarterKit = "starter_kit"
	PrestigeStreetCred = "street_cred"
	PrestigeTaxHaven   = "tax_haven"
)

var Assets = []AssetDefinition{
	{
		ID:          "street_crew",
		Name:        "Street Crew",
		Description: "Corner toughs collecting protection money",
		BaseCost:    100,
		BaseIncome:  5,
		Tier:        1,
	},
	{
		ID:          "front_business",
		Name:        "Front Business",
		Description: "A laundromat that washes money faster than clothes",
		BaseCost:    1500,
		BaseIncome:  45,
		Tier:        2,
	},
	{
		ID:          "supply_route",
		Name:        "Supply Route",
		Description: "A quiet corridor for moving contraband",
		BaseCost:    12000,
		BaseIncome:  250,
		Tier:        3,
	},
	{
		ID:          "safehouse_network",
		Name:        "Safehouse Network",
		Description: "Hideouts across the city for lying low",
		BaseCost:    85000,
		BaseIncome:  1200,
		Tier:        4,
	},
	{
		ID:          "money_laundering",
		Name:        "Laundering Operation",
		Description: "Professional-grade finance, 100% clean on paper",
		BaseCost:    500000,
		BaseIncome:  6500,
		Tier:        5,
	},
}

var Crimes = []CrimeDefinition{
	{
		ID:                "petty_theft",
		Name:              "Petty Theft",
		ActionCost:        10,
		BaseSuccessChance: 0.9,
		RiskMultiplier:    2,
		BaseHeatError:     5,
		MinHeat:           1,
		MaxHeat:           3,
		Tier:              1,
	},
	{
		ID:                "armed_robbery",
		Name:              "Armed Robbery",
		ActionCost:        25,
		BaseSuccessChance: 0.65,
		RiskMultiplier:    4,
		BaseHeatError:     15,
		MinHeat:           5,
		MaxHeat:           10,
		Tier:              2,
	},
	{
		ID:                "bank_heist",
		Name:              "Bank Heist",
		ActionCost:        50,
		BaseSuccessChance: 0.4,
		RiskMultiplier:    8,
		BaseHeatError:     30,
		MinHeat:           15,
		MaxHeat:           25,
		Tier:              3,
	},
}

var Upgrades = []UpgradeDefinition{
	{
		ID:          UpgradeSmoothTalker,
		Name:        "Smooth Talker",
		Description: "Heat decays 10% faster per level",
		BaseCost:    500,
	},
	{
		ID:          UpgradeConnections,
		Name:        "Connections",
		Description: "Crime payouts +5% per level",
		BaseCost:    1000,
	},
	{
		ID:          UpgradeDeepPockets,
		Name:        "Deep Pockets",
		Description: "+2 inventory slots per level",
		BaseCost:    2500,
	},
	{
		ID:          UpgradeLuckyCharm,
		Name:        "Lucky Charm",
		Description: "+1 Luck per level",
		BaseCost:    5000,
	},
	{
		ID:          UpgradeEndurance,
		Name:        "Endurance",
		Description: "+50 max action points per level",
		BaseCost:    4000,
	},
	{
		ID:          UpgradePlanning,
		Name:        "Planning",
		Description: "Crime success chance +2% per level",
		BaseCost:    7500,
	},
}

var PrestigeUpgrades = []PrestigeUpgradeDefinition{
	{
		ID:          PrestigeStarterKit,
		Name:        "Starter Kit",
		Description: "Begin each new identity with $10,000 per level",
		BaseCost:    1,
	},
	{
		ID:          PrestigeStreetCred,
		Name:        "Street Cred",
		Description: "Permanent crime success chance +2% per level",
		BaseCost:    2,
	},
	{
		ID:          PrestigeTaxHaven,
		Name:        "Tax Haven",
		Description: "Bank deposit fee reduced 1% per level",
		BaseCost:    3,
	},
}

var Stocks = []StockDefinition{
	{
		ID:         "laundro",
		Symbol:     "LNDR",
		Name:       "Laundromat Chains",
		BasePrice:  50,
		Volatility: 0.05,
	},
	{
		ID:         "grayline",
		Symbol:     "GRAY",
		Name:       "Grayline Logistics",
		BasePrice:  75,
		Volatility: 0.04,
	},
	{
		ID:         "nightowl",
		Symbol:     "NITE",
		Name:       "Night Owl Holdings",
		BasePrice:  120,
		Volatility: 0.08,
	},
	{
		ID:         "snakeoil",
		Symbol:     "SNKE",
		Name:       "Snake Oil Pharma",
		BasePrice:  20,
		Volatility: 0.12,
	},
}

// Achievement ids referenced by the engine.
const (
	AchievementFirstScore  = "first_score"
	AchievementJailbird    = "jailbird"
	AchievementShareholder = "shareholder"
	AchievementKingpin     = "kingpin"
	AchievementMadeMan     = "made_man"
)

var Achievements = []AchievementDefinition{
	{ID: AchievementFirstScore, Name: "First Score", Description: "Pull off your first crime"},
	{ID: AchievementJailbird, Name: "Jailbird", Description: "Get arrested"},
	{ID: AchievementShareholder, Name: "Shareholder", Description: "Buy your first stock"},
	{ID: AchievementKingpin, Name: "Kingpin", Description: "Reach $1,000,000 lifetime earnings"},
	{ID: AchievementMadeMan, Name: "Made Man", Description: "Flee the country and start over"},
}

var rarityMultipliers = map[Rarity]float64{
	RarityCommon:    1,
	RarityUncommon:  1.25,
	RarityRare:      1.5,
	RarityEpic:      3,
	RarityLegendary: 10,
}

// Scrap values are a fixed ladder, not derived from rarityMultipliers.
var scrapValues = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  2,
	RarityRare:      5,
	RarityEpic:      15,
	RarityLegendary: 50,
}

var marketPrices = map[Rarity]float64{
	RarityCommon:    500,
	RarityUncommon:  2500,
	RarityRare:      15000,
	RarityEpic:      75000,
	RarityLegendary: 500000,
}

var slotEffects = map[GearSlot]EffectKind{
	SlotWeapon:    EffectCrimeSuccess,
	SlotArmor:     EffectHeatReduction,
	SlotTool:      EffectIncomeBonus,
	SlotAccessory: EffectLuckBonus,
	SlotOutfit:    EffectLuckBonus,
}
