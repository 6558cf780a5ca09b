// SPDX-License-Identifier: EPL-2.0

// Package audio turns raw PCM into normalized sample buffers.
//
// # Buffer
//
// A Buffer holds interleaved float32 samples together with their sample rate
// and channel count. Buffers are immutable and never empty:
//
//	buf, err := audio.Interpret(raw, 24000, 1)
//	if errors.Is(err, audio.ErrEmptyAudio) {
//	    // fewer bytes than one complete frame
//	}
//
// # Interpreting PCM
//
// Interpret reads signed 16-bit little-endian PCM. Each sample is divided by
// 32768 and clamped into [-1, 1]:
//   - -32768 maps to exactly -1.0
//   - 0 maps to 0.0
//   - 32767 maps to 32767/32768, just below 1.0
//
// Trailing bytes that do not complete a frame are dropped.
//
// # Source Interface
//
// Buffer.Source exposes a buffer as a pull-based stream, the shape consumed
// by the streaming WAV writer and the playback layer:
//
//	src := buf.Source()
//	dst := make([]float32, src.BufSize())
//	for {
//	    n, err := src.ReadSamples(dst)
//	    // use dst[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// # go-audio interop
//
// AsIntBuffer and FromIntBuffer convert to and from github.com/go-audio/audio
// IntBuffers using the same 16-bit quantization as the WAV encoder.
package audio
