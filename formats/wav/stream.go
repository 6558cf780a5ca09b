// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// EncodeSource drains src into ws as a 16-bit PCM WAV file and returns the
// number of frames written. Sizes in the header are patched once src is
// exhausted, which is why ws has to be seekable (typically an *os.File).
//
// A source that yields no complete frame is reported as audio.ErrEmptyAudio
// and nothing is written.
func EncodeSource(ws io.WriteSeeker, src audio.Source) (int, error) {
	channels := src.Channels()
	if err := checkFormat(src.SampleRate(), channels); err != nil {
		return 0, err
	}

	enc := gowav.NewEncoder(ws, src.SampleRate(), audio.BitsPerSample, channels, FormatPCM)

	// read whole frames only
	size := max(src.BufSize()/channels, 1) * channels
	buf := make([]float32, size)
	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, size),
		SourceBitDepth: audio.BitsPerSample,
	}

	frames := 0
	for {
		n, err := src.ReadSamples(buf)
		n -= n % channels
		if n > 0 {
			ib.Data = ib.Data[:n]
			for i := range n {
				ib.Data[i] = int(utils.Float32ToInt16(buf[i]))
			}
			if werr := enc.Write(ib); werr != nil {
				return frames, fmt.Errorf("writing wav frames: %w", werr)
			}
			frames += n / channels
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("reading source: %w", err)
		}
	}

	if frames == 0 {
		return 0, audio.ErrEmptyAudio
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing wav: %w", err)
	}

	return frames, nil
}
