// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

// Decode reads a 16-bit PCM WAV file back into a Buffer. It is meant for
// files this package produced, such as clips stored on disk.
func Decode(r io.ReadSeeker) (*audio.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != FormatPCM || dec.BitDepth != audio.BitsPerSample {
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrOnlyPCM16bitSupported, dec.WavAudioFormat, dec.BitDepth)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	return audio.FromIntBuffer(ib)
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(data []byte) (*audio.Buffer, error) {
	return Decode(bytes.NewReader(data))
}
