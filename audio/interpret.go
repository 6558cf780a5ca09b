// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// Interpret reads raw as signed 16-bit little-endian linear PCM, interleaved
// by channel, and returns the normalized Buffer.
//
// Each sample is divided by 32768 and clamped into [-1, 1], so -32768 maps to
// exactly -1.0 and 32767 to just below 1.0.
//
// Bytes that do not fill a complete frame (2*channels bytes) at the end of raw
// are dropped, never zero padded. If no complete frame remains, ErrEmptyAudio
// is returned. Non-positive sampleRate or channels yield ErrInvalidFormat.
func Interpret(raw []byte, sampleRate, channels int) (*Buffer, error) {
	if err := ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	frameSize := channels * BytesPerSample
	frames := len(raw) / frameSize
	if frames == 0 {
		return nil, fmt.Errorf("%w: %d bytes, %d-byte frames", ErrEmptyAudio, len(raw), frameSize)
	}

	samples := make([]float32, frames*channels)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = utils.Int16ToFloat32(v)
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
	}, nil
}
