// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

const (
	// HeaderSize is the canonical RIFF/WAVE header: RIFF (12) + fmt (24) + data header (8).
	HeaderSize = 44

	// FormatPCM is the WAVE audio format code for linear PCM.
	FormatPCM = 1

	fmtChunkSize = 16

	// MaxDataSize is the largest data chunk whose RIFF size (36 + data) fits 32 bits.
	MaxDataSize = math.MaxUint32 - (HeaderSize - 8)
)

// checkFormat rejects formats whose header fields would not hold them:
// block align is 16 bits, sample rate and byte rate are 32 bits.
func checkFormat(sampleRate, channels int) error {
	if err := audio.ValidateFormat(sampleRate, channels); err != nil {
		return err
	}
	blockAlign := uint64(channels) * audio.BytesPerSample
	if blockAlign > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels do not fit a WAV header", audio.ErrInvalidFormat, channels)
	}
	if uint64(sampleRate)*blockAlign > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate of %d Hz x %d channels does not fit a WAV header",
			audio.ErrInvalidFormat, sampleRate, channels)
	}
	return nil
}

// putHeader writes the 44-byte canonical header for 16-bit PCM into dst[:44].
// The format must have passed checkFormat.
func putHeader(dst []byte, sampleRate, channels int, dataSize uint32) {
	blockAlign := uint16(channels * audio.BytesPerSample)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], HeaderSize-8+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], audio.BitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// dataSize returns the byte length of n interleaved 16-bit samples, or
// ErrAllocation if it does not fit the RIFF size fields.
func dataSize(n int) (uint32, error) {
	size := uint64(n) * audio.BytesPerSample
	if size > MaxDataSize {
		return 0, fmt.Errorf("%w: %d samples exceed the RIFF size limit", ErrAllocation, n)
	}
	return uint32(size), nil
}
