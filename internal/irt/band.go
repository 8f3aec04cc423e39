package irt

// Band is a qualitative ability label derived from fixed theta cut-points.
type Band string

const (
	BandBelowAverage Band = "below average"
	BandApproaching  Band = "approaching average"
	BandAverage      Band = "average"
	BandAboveAverage Band = "above average"
	BandExcellent    Band = "excellent"
)

// Cut-points between adjacent bands.
const (
	cutLow     = -1.5
	cutMidLow  = -0.5
	cutMidHigh = 0.5
	cutHigh    = 1.5
)

// BandFor maps an ability estimate to its band.
func BandFor(theta float64) Band {
	switch {
	case theta < cutLow:
		return BandBelowAverage
	case theta < cutMidLow:
		return BandApproaching
	case theta <= cutMidHigh:
		return BandAverage
	case theta <= cutHigh:
		return BandAboveAverage
	default:
		return BandExcellent
	}
}

// AllBands returns the bands in ascending ability order.
func AllBands() []Band {
	return []Band{BandBelowAverage, BandApproaching, BandAverage, BandAboveAverage, BandExcellent}
}
