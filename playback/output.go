// SPDX-License-Identifier: EPL-2.0

// Package playback sends audio buffers to a sound device.
//
// Buffers are re-quantized to signed 16-bit little-endian PCM with the same
// rounding and clamping as the WAV encoder, so what is heard is exactly what
// a downloaded file contains.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

// ErrFormatMismatch is returned when a buffer does not match the device format.
// No resampling or channel mixing is done.
var ErrFormatMismatch = errors.New("buffer format does not match output")

// Output plays buffers. Play blocks until playback ends or ctx is done.
type Output interface {
	Play(ctx context.Context, buf *audio.Buffer) error
	Close() error
}

// WriterOutput writes the PCM of every played buffer to w, e.g. a pipe into
// an external player.
type WriterOutput struct {
	w io.Writer
}

func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

func (o *WriterOutput) Play(ctx context.Context, buf *audio.Buffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", audio.ErrInvalidFormat)
	}
	_, err := io.Copy(o.w, &ctxReader{ctx: ctx, r: NewReader(buf)})
	return err
}

func (o *WriterOutput) Close() error { return nil }

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
