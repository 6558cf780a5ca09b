// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// Write streams buf to w as a WAV file without building the whole file in memory.
// The output is byte-for-byte identical to Encode.
func Write(w io.Writer, buf *audio.Buffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", audio.ErrInvalidFormat)
	}

	pcm := make([]int16, buf.Len())
	for i := range pcm {
		pcm[i] = utils.Float32ToInt16(buf.At(i))
	}

	return WriteWAV16(w, buf.SampleRate(), buf.Channels(), pcm)
}

// WriteWAV16 writes interleaved 16-bit PCM at sampleRate with the given channel count.
// This uses an optimized implementation for minimal allocations.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if err := checkFormat(sampleRate, channels); err != nil {
		return err
	}

	size, err := dataSize(len(samples))
	if err != nil {
		return err
	}

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, HeaderSize)
	putHeader(header, sampleRate, channels, size)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time
	const chunkSize = 8192

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
