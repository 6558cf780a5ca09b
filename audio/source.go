// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// bufferSource streams a Buffer through the Source interface.
type bufferSource struct {
	buf *Buffer
	pos int // next sample index
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return s.buf.channels }
func (s *bufferSource) BufSize() int    { return min(len(s.buf.samples), 4096) }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.pos >= len(s.buf.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.samples) {
		return n, io.EOF
	}
	return n, nil
}
