package enum

type StreetType int

const (
	StreetHighway StreetType = iota + 1
	StreetStreet
	StreetPath
	StreetRails
	StreetWater
)

var StreetTypes = newRegistry[StreetType]("StreetType",
	"HIGHWAY", "STREET", "PATH", "RAILS", "WATER",
)

func (t StreetType) Ordinal() int   { return int(t) }
func (t StreetType) String() string { return StreetTypes.Name(t) }

type AreaType int

const (
	AreaUndefined AreaType = iota + 1
	AreaSand
	AreaStone
	AreaWater
	AreaIce
	AreaForest
	AreaFarmland
	AreaMeadow
	AreaUrban
	AreaVulcan
	AreaMilitary
)

var AreaTypes = newRegistry[AreaType]("AreaType",
	"UNDEFINED", "SAND", "STONE", "WATER", "ICE", "FOREST", "FARMLAND", "MEADOW", "URBAN",
	"VULCAN", "MILITARY",
)

func (t AreaType) Ordinal() int   { return int(t) }
func (t AreaType) String() string { return AreaTypes.Name(t) }
