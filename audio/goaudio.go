// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// AsIntBuffer re-quantizes the buffer to 16-bit integers in a go-audio
// IntBuffer, using the same rounding and clamping as the WAV encoder.
func (b *Buffer) AsIntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(b.samples))
	for i, s := range b.samples {
		data[i] = int(utils.Float32ToInt16(s))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.channels,
			SampleRate:  b.sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitsPerSample,
	}
}

// FromIntBuffer normalizes a 16-bit go-audio IntBuffer into a Buffer.
// A SourceBitDepth of zero is taken as 16. Trailing samples that do not
// complete a frame are dropped, as in Interpret.
func FromIntBuffer(ib *goaudio.IntBuffer) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidFormat)
	}

	if ib.SourceBitDepth != 0 && ib.SourceBitDepth != BitsPerSample {
		return nil, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, ib.SourceBitDepth)
	}

	channels := ib.Format.NumChannels
	if err := ValidateFormat(ib.Format.SampleRate, channels); err != nil {
		return nil, err
	}

	frames := len(ib.Data) / channels
	if frames == 0 {
		return nil, ErrEmptyAudio
	}

	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = utils.Int16ToFloat32(utils.ClampInt16(ib.Data[i]))
	}

	return &Buffer{
		sampleRate: ib.Format.SampleRate,
		channels:   channels,
		samples:    samples,
	}, nil
}
