package domain

// scale is the unit-scaling flag carried by a wire-format field. A
// scaled field is divided by 10 to recover decimal meters, seconds, or
// kilowatts; an unscaled field (mostly energies) is used as-is.
type scale float64

const (
	scaleNone scale = 1
	scaleTenth scale = 0.1
)

// Oceanic v-blob row indices (24 positions).
const (
	rowWaveHeight = iota
	rowWavePeriod
	rowPrimaryDirection
	rowTotalEnergy
	rowTotalPower
	rowWindseasHeight
	rowWindseasPeriod
	rowWindseasDirection
	rowWindseasEnergy
	rowWindseasPower
	rowSwellAHeight
	rowSwellAPeriod
	rowSwellADirection
	rowSwellAEnergy
	rowSwellAPower
	rowSwellBHeight
	rowSwellBPeriod
	rowSwellBDirection
	rowSwellBEnergy
	rowSwellBPower
	rowSeaWind
	rowSeaWindDirection
	rowUnused
	rowTides
)

// Beach-overlay s-blob row indices (4 positions, all /10).
const (
	rowBeachTotalHeight = iota
	rowBeachWindseasHeight
	rowBeachPrimarySwellHeight
	rowBeachSecondarySwellHeight
)

// Atmospheric v-blob row indices.
const (
	rowWind = iota
	rowWindDirection
	rowWindGust
	rowStormPotential
	rowPressure
	rowTemperature
	rowClouds
	rowPrecipitation
)
