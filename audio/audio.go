// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

const (
	// BitsPerSample is the bit depth of every PCM stream handled by this module.
	BitsPerSample = 16
	// BytesPerSample is the width of one PCM sample on the wire.
	BytesPerSample = BitsPerSample / 8
)

// Source is a pull-based stream of interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the preferred length of dst for ReadSamples.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Buffer is a decoded, normalized block of audio. Samples are stored
// interleaved by channel, channel 0 first in every frame.
//
// A Buffer is immutable: every accessor that exposes samples returns a copy.
// It is always non-empty and carries a positive sample rate and channel count.
type Buffer struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewBuffer builds a Buffer from interleaved samples. The slice is copied.
//
// Values outside [-1, 1] are kept as given; encoders clamp on the way out.
// len(samples) must be a non-zero multiple of channels.
func NewBuffer(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if err := ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}

	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    append([]float32(nil), samples...),
	}, nil
}

// ValidateFormat reports ErrInvalidFormat unless both values are positive.
func ValidateFormat(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, sampleRate)
	}
	if channels <= 0 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidFormat, channels)
	}
	return nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }

// Frames returns the number of complete frames.
func (b *Buffer) Frames() int { return len(b.samples) / b.channels }

// Len returns the total sample count, Frames() * Channels().
func (b *Buffer) Len() int { return len(b.samples) }

// Frame returns a copy of the samples of frame i, one per channel.
func (b *Buffer) Frame(i int) []float32 {
	start := i * b.channels
	return append([]float32(nil), b.samples[start:start+b.channels]...)
}

// Sample returns the sample of channel ch in frame i.
func (b *Buffer) Sample(i, ch int) float32 {
	return b.samples[i*b.channels+ch]
}

// At returns the i-th interleaved sample, 0 <= i < Len().
func (b *Buffer) At(i int) float32 { return b.samples[i] }

// Samples returns a copy of the interleaved sample data.
func (b *Buffer) Samples() []float32 {
	return append([]float32(nil), b.samples...)
}

// DurationSeconds is Frames() / SampleRate().
func (b *Buffer) DurationSeconds() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// Duration is DurationSeconds as a time.Duration, truncated to nanoseconds.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.sampleRate)
}

// Source returns a fresh streaming view over the buffer. Each call starts at
// frame zero; the Buffer itself is not consumed.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}
