// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// Reader streams a buffer as interleaved s16le bytes.
type Reader struct {
	src     audio.Source
	samples []float32
	pending []byte // converted bytes not yet returned
	eof     bool
}

// NewReader returns a Reader positioned at the first frame of buf.
func NewReader(buf *audio.Buffer) *Reader {
	src := buf.Source()
	size := max(src.BufSize()/src.Channels(), 1) * src.Channels()
	return &Reader{
		src:     src,
		samples: make([]float32, size),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.eof {
			return 0, io.EOF
		}
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *Reader) fill() error {
	n, err := r.src.ReadSamples(r.samples)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return err
	}

	out := make([]byte, 2*n)
	for i, s := range r.samples[:n] {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(utils.Float32ToInt16(s)))
	}
	r.pending = out
	return nil
}
