package domain

// Maxima holds the four scalar maxima computed over a forecast
// horizon.
type Maxima struct {
	MaxHeight float64 `json:"maxHeight"`
	MaxEnergy int     `json:"maxEnergy"`
	MaxPower  float64 `json:"maxPower"`
	MaxWind   int     `json:"maxWind"`
}

// Aggregate walks every assembled hour of the 15-day horizon and
// returns the four wired maxima: maxHeight/maxEnergy/maxPower read off
// each hour's total-height channel (already the beach-overlay-aware
// value when an overlay exists, and identical to a direct read of the
// oceanic wave_height/total_energy/total_power rows when it does not —
// see DESIGN.md on why this formulation keeps the overlay-aware height
// consistent with the reported maxHeight), maxWind read off the coastal
// wind. Empty input returns the zero Maxima.
func Aggregate(hours []Hour) Maxima {
	var m Maxima

	for _, h := range hours {
		if h.Waves.TotalHeight.Value > m.MaxHeight {
			m.MaxHeight = h.Waves.TotalHeight.Value
		}
		if h.Waves.TotalHeight.Energy > m.MaxEnergy {
			m.MaxEnergy = h.Waves.TotalHeight.Energy
		}
		if h.Waves.TotalHeight.Power > m.MaxPower {
			m.MaxPower = h.Waves.TotalHeight.Power
		}
		wind := int(h.Winds.Coast.Wind)
		if wind > m.MaxWind {
			m.MaxWind = wind
		}
	}

	return m
}
