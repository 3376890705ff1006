package card

const CardInvalid Card = 0

// Land
const (
	CardMountain Card = iota + 1
	CardCavern
	CardBellTower
	CardForest
	CardEarthElemental
)

// Flood
const (
	CardFountainOfLife Card = iota + 6
	CardSwamp
	CardGreatFlood
	CardIsland
	CardWaterElemental
)

// Weather
const (
	CardRainstorm Card = iota + 11
	CardBlizzard
	CardSmoke
	CardWhirlwind
	CardAirElemental
)

// Flame
const (
	CardWildfire Card = iota + 16
	CardCandle
	CardForge
	CardLightning
	CardFireElemental
)

// Army
const (
	CardKnights Card = iota + 21
	CardElvenArchers
	CardLightCavalry
	CardDwarvishInfantry
	CardRangers
)

// Wizard
const (
	CardCollector Card = iota + 26
	CardBeastmaster
	CardNecromancer
	CardWarlockLord
	CardEnchantress
)

// Leader
const (
	CardKing Card = iota + 31
	CardQueen
	CardPrincess
	CardWarlord
	CardEmpress
)

// Beast
const (
	CardUnicorn Card = iota + 36
	CardBasilisk
	CardWarhorse
	CardDragon
	CardHydra
)

// Weapon
const (
	CardWarship Card = iota + 41
	CardMagicWand
	CardSwordOfKeth
	CardElvenLongbow
	CardWarDirigible
)

// Artifact
const (
	CardShieldOfKeth Card = iota + 46
	CardGemOfOrder
	CardWorldTree
	CardBookOfChanges
	CardProtectionRune
)

// Wild
const (
	CardDoppelganger Card = iota + 51
	CardMirage
	CardShapeshifter
)

// CatalogSize is the number of distinct cards in the deck.
const CatalogSize = 53

type cardInfo struct {
	name     string
	suit     Suit
	strength int
}

// catalog is indexed by Card; entry 0 is CardInvalid.
var catalog = [CatalogSize + 1]cardInfo{
	{name: "Invalid"},

	{"Mountain", Land, 9},
	{"Cavern", Land, 6},
	{"Bell Tower", Land, 8},
	{"Forest", Land, 7},
	{"Earth Elemental", Land, 4},

	{"Fountain of Life", Flood, 1},
	{"Swamp", Flood, 18},
	{"Great Flood", Flood, 32},
	{"Island", Flood, 14},
	{"Water Elemental", Flood, 4},

	{"Rainstorm", Weather, 8},
	{"Blizzard", Weather, 30},
	{"Smoke", Weather, 27},
	{"Whirlwind", Weather, 13},
	{"Air Elemental", Weather, 4},

	{"Wildfire", Flame, 40},
	{"Candle", Flame, 2},
	{"Forge", Flame, 9},
	{"Lightning", Flame, 11},
	{"Fire Elemental", Flame, 4},

	{"Knights", Army, 20},
	{"Elven Archers", Army, 10},
	{"Light Cavalry", Army, 17},
	{"Dwarvish Infantry", Army, 15},
	{"Rangers", Army, 5},

	{"Collector", Wizard, 7},
	{"Beastmaster", Wizard, 9},
	{"Necromancer", Wizard, 3},
	{"Warlock Lord", Wizard, 25},
	{"Enchantress", Wizard, 5},

	{"King", Leader, 8},
	{"Queen", Leader, 6},
	{"Princess", Leader, 2},
	{"Warlord", Leader, 4},
	{"Empress", Leader, 15},

	{"Unicorn", Beast, 9},
	{"Basilisk", Beast, 35},
	{"Warhorse", Beast, 6},
	{"Dragon", Beast, 30},
	{"Hydra", Beast, 12},

	{"Warship", Weapon, 23},
	{"Magic Wand", Weapon, 1},
	{"Sword of Keth", Weapon, 7},
	{"Elven Longbow", Weapon, 3},
	{"War Dirigible", Weapon, 35},

	{"Shield of Keth", Artifact, 4},
	{"Gem of Order", Artifact, 5},
	{"World Tree", Artifact, 2},
	{"Book of Changes", Artifact, 3},
	{"Protection Rune", Artifact, 1},

	{"Doppelganger", Wild, 0},
	{"Mirage", Wild, 0},
	{"Shapeshifter", Wild, 0},
}
