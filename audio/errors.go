// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned when a read buffer does not hold whole frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrEmptyAudio is returned when PCM data holds no complete frame.
	ErrEmptyAudio = errors.New("audio contains no complete frame")

	// ErrInvalidFormat is a caller error: sample rate and channel count must be positive.
	ErrInvalidFormat = errors.New("invalid audio format")

	// ErrPartialFrame is returned when interleaved samples do not fill whole frames.
	ErrPartialFrame = errors.New("samples do not form whole frames")

	// ErrUnsupportedBitDepth is returned when bridging PCM that is not 16-bit.
	ErrUnsupportedBitDepth = errors.New("only 16-bit PCM is supported")
)
