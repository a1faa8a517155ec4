package enum

// SpawnType is the terrain or environment category a creature may appear on.
type SpawnType int

const (
	SpawnAncient SpawnType = iota + 1
	SpawnArctic
	SpawnBeach
	SpawnCave
	SpawnCemetery
	SpawnCommercial
	SpawnConstructionSite
	SpawnCoralReef
	SpawnDesert
	SpawnDock
	SpawnFarmland
	SpawnForest
	SpawnGarbage
	SpawnGlacier
	SpawnGrass
	SpawnHeath
	SpawnHills
	SpawnIndustrial
	SpawnLake
	SpawnLibrary
	SpawnMedical
	SpawnMilitary
	SpawnMeadow
	SpawnMountain
	SpawnMountainTop
	SpawnNatureReserve
	SpawnOcean
	SpawnPark
	SpawnPlaya
	SpawnPlayground
	SpawnPower
	SpawnQuarry
	SpawnResidential
	SpawnRiver
	SpawnSavanna
	SpawnSports
	SpawnUrban
	SpawnVulcan
	SpawnWetland
	SpawnWood
)

var SpawnTypes = newRegistry[SpawnType]("SpawnType",
	"ANCIENT", "ARCTIC", "BEACH", "CAVE", "CEMETERY", "COMMERCIAL", "CONSTRUCTION_SITE",
	"CORAL_REEF", "DESERT", "DOCK", "FARMLAND", "FOREST", "GARBAGE", "GLACIER", "GRASS",
	"HEATH", "HILLS", "INDUSTRIAL", "LAKE", "LIBRARY", "MEDICAL", "MILITARY", "MEADOW",
	"MOUNTAIN", "MOUNTAIN_TOP", "NATURE_RESERVE", "OCEAN", "PARK", "PLAYA", "PLAYGROUND",
	"POWER", "QUARRY", "RESIDENTIAL", "RIVER", "SAVANNA", "SPORTS", "URBAN", "VULCAN",
	"WETLAND", "WOOD",
)

func (t SpawnType) Ordinal() int   { return int(t) }
func (t SpawnType) String() string { return SpawnTypes.Name(t) }

// POIType is the kind of a located map feature.
type POIType int

const (
	POINone POIType = iota + 1
	POIPokeCenter
	POIProfessor
	POIArchaeologist
	POIAttackTutor
	POIBreeding
	POISafari
	POIDojo
	POISmith
	POIStadium
	POITheatre

	POIShop
	POIShopBalls
	POIShopBuilding
	POIShopBoosts
	POIShopFood
	POIShopFurniture
	POIShopHeals
	POIShopLetters
	POIShopTM
	POIShopTools

	POIArenaNormal
	POIArenaFire
	POIArenaWater
	POIArenaGrass
	POIArenaElectric
	POIArenaIce
	POIArenaFighting
	POIArenaPoison
	POIArenaGround
	POIArenaFlying
	POIArenaPsychic
	POIArenaBug
	POIArenaRock
	POIArenaGhost
	POIArenaDark
	POIArenaDragon
	POIArenaSteel
	POIArenaFairy
)

var POITypes = newRegistry[POIType]("POIType",
	"NONE", "POKE_CENTER", "PROFESSOR", "ARCHAEOLOGIST", "ATTACK_TUTOR", "BREEDING", "SAFARI",
	"DOJO", "SMITH", "STADIUM", "THEATRE",
	"SHOP", "SHOP_BALLS", "SHOP_BUILDING", "SHOP_BOOSTS", "SHOP_FOOD", "SHOP_FURNITURE",
	"SHOP_HEALS", "SHOP_LETTERS", "SHOP_TM", "SHOP_TOOLS",
	"ARENA_NORMAL", "ARENA_FIRE", "ARENA_WATER", "ARENA_GRASS", "ARENA_ELECTRIC", "ARENA_ICE",
	"ARENA_FIGHTING", "ARENA_POISON", "ARENA_GROUND", "ARENA_FLYING", "ARENA_PSYCHIC",
	"ARENA_BUG", "ARENA_ROCK", "ARENA_GHOST", "ARENA_DARK", "ARENA_DRAGON", "ARENA_STEEL",
	"ARENA_FAIRY",
)

func (t POIType) Ordinal() int   { return int(t) }
func (t POIType) String() string { return POITypes.Name(t) }
