package enum

// Environmental axes a spawn condition can constrain.

type MoonType int

const (
	MoonFull MoonType = iota + 1
	MoonDecreasing
	MoonNew
	MoonIncreasing
	MoonLunarEclipse
	MoonSunEclipse
	MoonBloody
)

var MoonTypes = newRegistry[MoonType]("MoonType",
	"FULL", "DECREASING", "NEW", "INCREASING", "LUNAR_ECLIPSE", "SUN_ECLIPSE", "BLOODY",
)

func (t MoonType) Ordinal() int   { return int(t) }
func (t MoonType) String() string { return MoonTypes.Name(t) }

type TimeType int

const (
	TimeMorning TimeType = iota + 1
	TimeNoon
	TimeEvening
	TimeNight
)

var TimeTypes = newRegistry[TimeType]("TimeType",
	"MORNING", "NOON", "EVENING", "NIGHT",
)

func (t TimeType) Ordinal() int   { return int(t) }
func (t TimeType) String() string { return TimeTypes.Name(t) }

type WeatherType int

const (
	WeatherClear WeatherType = iota + 1
	WeatherPartyCloudy
	WeatherCloudy
	WeatherWindy
	WeatherFoggy
	WeatherRainy
	WeatherSnowy
	WeatherSandstorm
	WeatherThunderstorm
	WeatherVolcanicEruption
	WeatherExtremeWarning
)

var WeatherTypes = newRegistry[WeatherType]("WeatherType",
	"CLEAR", "PARTY_CLOUDY", "CLOUDY", "WINDY", "FOGGY", "RAINY", "SNOWY", "SANDSTORM",
	"THUNDERSTORM", "VOLCANIC_ERUPTION", "EXTREME_WARNING",
)

func (t WeatherType) Ordinal() int   { return int(t) }
func (t WeatherType) String() string { return WeatherTypes.Name(t) }

type TemperatureType int

const (
	TemperatureFreezing TemperatureType = iota + 1
	TemperatureCold
	TemperatureNormal
	TemperatureWarm
	TemperatureHot
)

var TemperatureTypes = newRegistry[TemperatureType]("TemperatureType",
	"FREEZING", "COLD", "NORMAL", "WARM", "HOT",
)

func (t TemperatureType) Ordinal() int   { return int(t) }
func (t TemperatureType) String() string { return TemperatureTypes.Name(t) }
