// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/base64"
	"encoding/binary"
	"math"
)

// PCM16 packs samples as signed 16-bit little-endian bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// SinePCM renders frames frames of a sine tone at 80% of full scale as raw
// interleaved PCM, the same on every channel.
func SinePCM(sampleRate, channels, frames int, frequency float64) []byte {
	samples := make([]int16, frames*channels)
	for i := range frames {
		v := int16(0.8 * math.MaxInt16 * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)))
		for ch := range channels {
			samples[i*channels+ch] = v
		}
	}
	return PCM16(samples...)
}

// Base64 is the standard padded base64 form of raw.
func Base64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
