// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrAllocation is returned when the encoded file cannot be allocated:
	// the data chunk overflows the 32-bit RIFF size fields or the runtime
	// refuses the allocation.
	ErrAllocation = errors.New("cannot allocate WAV output")
)
