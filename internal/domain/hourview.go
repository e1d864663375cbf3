package domain

// Mode selects which orientation-dependent rules HourView applies.
type Mode string

const (
	// ModeSurf is a beach-level forecast: beach overlay heights and
	// orientation-aware wind classification are active.
	ModeSurf Mode = "SURF"
	// ModeOceanic is a regional forecast: no beach overlay, coastal
	// wind is always classified OCEANIC.
	ModeOceanic Mode = "OCEANIC"
)

// WaveDetail is one wave channel (total, windseas, swellA, swellB)
// projected for a single hour.
type WaveDetail struct {
	Value           float64 `json:"value"`
	Period          float64 `json:"period"`
	Direction       string  `json:"direction"`
	DirectionDegree int     `json:"directionDegree"`
	Power           float64 `json:"power"`
	Energy          int     `json:"energy"`
}

// Waves groups the four wave channels of a single hour.
type Waves struct {
	TotalHeight WaveDetail `json:"totalHeight"`
	Windseas    WaveDetail `json:"windseas"`
	SwellA      WaveDetail `json:"swellA"`
	SwellB      WaveDetail `json:"swellB"`
}

// CoastWind is the atmospheric-model wind at the beach.
type CoastWind struct {
	DirectionDegree int     `json:"directionDegree"`
	Wind            float64 `json:"wind"`
	WindGust        float64 `json:"windGust"`
	Pressure        string  `json:"pressure"`
	Direction       string  `json:"direction"`
	Type            string  `json:"type"`
}

// SeaWind is the oceanic-model wind, always sourced from slot 0 of the
// day regardless of the current slot — a preserved reference-model
// quirk, not a bug to fix.
type SeaWind struct {
	DirectionDegree int     `json:"directionDegree"`
	Wind            float64 `json:"wind"`
}

// Winds groups the coastal and oceanic wind views of a single hour.
type Winds struct {
	Coast CoastWind `json:"coast"`
	Sea   SeaWind   `json:"sea"`
}

// Atmospheric is the integer-projected atmospheric snapshot for a
// single hour.
type Atmospheric struct {
	Pressure       int `json:"pressure"`
	Temperature    int `json:"temperature"`
	Clouds         int `json:"clouds"`
	Precipitation  int `json:"precipitation"`
	StormPotential int `json:"stormPotential"`
}

// Hour is the fully assembled forecast for one of the 8 fixed slots of
// a day.
type Hour struct {
	Hour        string      `json:"hour"`
	Waves       Waves       `json:"waves"`
	Winds       Winds       `json:"winds"`
	Atmospheric Atmospheric `json:"atmospheric"`
}

// slotHours is the local-hour label for each of the 8 fixed slots.
var slotHours = [slotsPerDay]string{
	"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00",
}

// at returns the string cell at (row, slot) of matrix, or def if the
// matrix is absent, the row is out of bounds, or the slot is out of
// bounds. Every cell access in HourView routes through this helper.
func at(matrix Matrix, row, slot int, def string) string {
	if matrix == nil {
		return def
	}
	if row < 0 || row >= len(matrix) {
		return def
	}
	if slot < 0 || slot >= len(matrix[row]) {
		return def
	}
	return matrix[row][slot]
}

// atInt is at() projected through cellInt.
func atInt(matrix Matrix, row, slot int) int {
	return cellInt(at(matrix, row, slot, "0"))
}

// atFloat is at() projected through cellFloat, with an explicit scale
// flag applied (scaleNone leaves the value as is, scaleTenth divides it
// by 10 for the /10 wire-format fields).
func atFloat(matrix Matrix, row, slot int, sc scale) float64 {
	v := cellFloat(at(matrix, row, slot, "0"))
	if sc == scaleTenth {
		return v / 10
	}
	return v * float64(sc)
}

// waveChannel holds the per-channel row indices needed to project a
// WaveDetail: the oceanic height/period/direction/energy/power rows,
// and the beach-overlay row that may override the height.
type waveChannel struct {
	oceanHeight, period, direction, energy, power int
	beachRow                                      int
}

var waveChannels = map[string]waveChannel{
	"total": {
		oceanHeight: rowWaveHeight, period: rowWavePeriod, direction: rowPrimaryDirection,
		energy: rowTotalEnergy, power: rowTotalPower, beachRow: rowBeachTotalHeight,
	},
	"windseas": {
		oceanHeight: rowWindseasHeight, period: rowWindseasPeriod, direction: rowWindseasDirection,
		energy: rowWindseasEnergy, power: rowWindseasPower, beachRow: rowBeachWindseasHeight,
	},
	"swellA": {
		oceanHeight: rowSwellAHeight, period: rowSwellAPeriod, direction: rowSwellADirection,
		energy: rowSwellAEnergy, power: rowSwellAPower, beachRow: rowBeachPrimarySwellHeight,
	},
	"swellB": {
		oceanHeight: rowSwellBHeight, period: rowSwellBPeriod, direction: rowSwellBDirection,
		energy: rowSwellBEnergy, power: rowSwellBPower, beachRow: rowBeachSecondarySwellHeight,
	},
}

// projectWave builds a WaveDetail for one channel at one slot. The
// height comes from the beach overlay when that row is present in the
// beach matrix, else from the oceanic row; period/direction/power
// always come from the oceanic matrix. Period, height and power carry
// the /10 scale; energy and the raw direction degree do not.
func projectWave(ocean, beach Matrix, ch waveChannel, slot int) WaveDetail {
	var value float64
	if beach != nil && ch.beachRow < len(beach) {
		value = atFloat(beach, ch.beachRow, slot, scaleTenth)
	} else {
		value = atFloat(ocean, ch.oceanHeight, slot, scaleTenth)
	}

	dirDeg := atInt(ocean, ch.direction, slot)

	return WaveDetail{
		Value:           value,
		Period:          atFloat(ocean, ch.period, slot, scaleTenth),
		Direction:       CompassInt(dirDeg),
		DirectionDegree: dirDeg,
		Power:           atFloat(ocean, ch.power, slot, scaleTenth),
		Energy:          atInt(ocean, ch.energy, slot),
	}
}

// BuildHour assembles the waves/winds/atmospheric projection for one
// (day, slot). beach and atmos may be nil when those layers are
// unavailable for the day; beachOrientation is nil for regional
// (non-surf) requests or when the beach's orientation is unknown.
func BuildHour(ocean, beach, atmos Matrix, slot int, beachOrientation *int, mode Mode) Hour {
	waves := Waves{
		TotalHeight: projectWave(ocean, beach, waveChannels["total"], slot),
		Windseas:    projectWave(ocean, beach, waveChannels["windseas"], slot),
		SwellA:      projectWave(ocean, beach, waveChannels["swellA"], slot),
		SwellB:      projectWave(ocean, beach, waveChannels["swellB"], slot),
	}

	coastDirDeg := atInt(atmos, rowWindDirection, slot)
	var windType string
	if mode != ModeSurf || beachOrientation == nil || atmos == nil {
		windType = string(TypeOceanic)
	} else {
		windType = string(Classify(*beachOrientation, coastDirDeg))
	}

	coast := CoastWind{
		DirectionDegree: coastDirDeg,
		Wind:            atFloat(atmos, rowWind, slot, scaleNone),
		WindGust:        atFloat(atmos, rowWindGust, slot, scaleNone),
		Pressure:        at(atmos, rowPressure, slot, "0"),
		Direction:       CompassInt(coastDirDeg),
		Type:            windType,
	}

	// Sea wind is always read from slot 0 of the day, regardless of the
	// slot being projected.
	sea := SeaWind{
		DirectionDegree: atInt(ocean, rowSeaWindDirection, 0),
		Wind:            atFloat(ocean, rowSeaWind, 0, scaleNone),
	}

	atmospheric := Atmospheric{
		Pressure:       atInt(atmos, rowPressure, slot),
		Temperature:    atInt(atmos, rowTemperature, slot),
		Clouds:         atInt(atmos, rowClouds, slot),
		Precipitation:  atInt(atmos, rowPrecipitation, slot),
		StormPotential: atInt(atmos, rowStormPotential, slot),
	}

	return Hour{
		Hour:        slotHours[slot],
		Waves:       waves,
		Winds:       Winds{Coast: coast, Sea: sea},
		Atmospheric: atmospheric,
	}
}
