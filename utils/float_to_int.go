// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 re-quantizes a normalized sample: round(x * 32767), half away
// from zero, clamped to the int16 range. NaN becomes silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	v := math.Round(float64(x) * math.MaxInt16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 normalizes a PCM sample by the negative half-range (32768),
// so the result always lies in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	f := float32(v) / 32768.0
	if f < -1 {
		return -1
	} else if f > 1 {
		return 1
	}
	return f
}

// ClampInt16 saturates an int into the int16 range.
func ClampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
