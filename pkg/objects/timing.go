package objects

import "math"

// BPMTimeToReal converts a beat position to seconds. When shufflePeriod is
// positive, beats in every odd period window (window index truncated toward
// zero) are pushed back by shuffle*shufflePeriod before scaling. A
// non-positive bpm disables the conversion and num is returned as given.
func BPMTimeToReal(num, bpm, shuffle, shufflePeriod float32) float32 {
	if bpm <= 0 {
		return num
	}

	if shufflePeriod > 0 && shuffleWindow(num, shufflePeriod)%2 == 1 {
		num += shuffle * shufflePeriod
	}

	return (num / bpm) * 60
}

// shuffleWindow returns the period window num falls in, truncated toward
// zero and saturated to the int32 range (NaN maps to 0).
func shuffleWindow(num, period float32) int32 {
	w := math.Trunc(float64(num * (1 / period)))
	switch {
	case math.IsNaN(w):
		return 0
	case w >= math.MaxInt32:
		return math.MaxInt32
	case w <= math.MinInt32:
		return math.MinInt32
	}
	return int32(w)
}
