package domain

import "math"

// WindType is the coastal wind classification relative to beach
// orientation.
type WindType string

const (
	TypeOnshore  WindType = "ONSHORE"
	TypeOffshore WindType = "OFFSHORE"
	TypeCrossed  WindType = "CROSSED"
	// TypeOceanic marks a regional (non-surf) hour, or a surf hour whose
	// beach orientation is unknown — classification is meaningless
	// without an orientation to compare against.
	TypeOceanic WindType = "OCEANIC"
)

// Classify compares a beach's seaward orientation against the bearing
// the wind blows from and buckets the result into onshore/offshore/
// crossed. When the difference o - w lies outside [-180, 180], 360 is
// added once to the smaller operand (no loop, no mod 360), so for
// bearings in [0, 360) Classify(o, w) == Classify(o+360, w) ==
// Classify(o, w+360).
func Classify(orientationDeg, windFromDeg int) WindType {
	o := float64(orientationDeg)
	w := float64(windFromDeg)

	angle := o - w
	if angle > 180 || angle < -180 {
		if o < w {
			angle = o + 360 - w
		} else {
			angle = o - (w + 360)
		}
	}

	abs := math.Abs(angle)
	switch {
	case abs > 125:
		return TypeOffshore
	case abs >= 66:
		return TypeCrossed
	default:
		return TypeOnshore
	}
}
