package loot

import "github.com/zerpitt/CrimeGameIdleRPG/crimegame/catalog"

// Name pools are cosmetic only.

var baseNames = map[catalog.GearSlot][]string{
	catalog.SlotWeapon:    {"Pistol", "Crowbar", "Switchblade", "Brass Knuckles", "Machine Pistol"},
	catalog.SlotArmor:     {"Vest", "Leather Jacket", "Dark Shades", "Hoodie"},
	catalog.SlotTool:      {"Lockpick Set", "Drill", "Hacking Rig", "Burner Phone"},
	catalog.SlotAccessory: {"Gold Chain", "Lucky Coin", "Luxury Watch", "Diamond Ring"},
	catalog.SlotOutfit:    {"Tailored Suit", "Trench Coat", "Disguise Kit", "Uniform"},
}

var rarityPrefixes = map[catalog.Rarity][]string{
	catalog.RarityCommon:    {"Rusty", "Secondhand", "Plain", "Cheap"},
	catalog.RarityUncommon:  {"Decent", "Reliable", "Well-Kept", "Refurbished"},
	catalog.RarityRare:      {"Polished", "Custom", "Heavy", "Tactical"},
	catalog.RarityEpic:      {"High-End", "Underground", "Traceless", "Shadow"},
	catalog.RarityLegendary: {"Kingpin's", "Gilded", "Mythic", "Fabled"},
}
