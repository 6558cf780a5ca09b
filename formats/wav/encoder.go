// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/utils"
)

// Encode serializes buf into a complete RIFF/WAVE byte stream: the canonical
// 44-byte header followed by interleaved signed 16-bit little-endian samples.
//
// Every sample is re-quantized as round(s * 32767) and clamped to the int16
// range, so buffers built outside Interpret cannot overflow.
//
// Encode keeps no state; the returned slice belongs to the caller. A nil
// buffer, a non-positive rate or channel count, or a format that overflows
// the header fields is a caller error reported as audio.ErrInvalidFormat.
// ErrAllocation is returned when the output cannot be allocated.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", audio.ErrInvalidFormat)
	}
	if err := checkFormat(buf.SampleRate(), buf.Channels()); err != nil {
		return nil, err
	}

	size, err := dataSize(buf.Len())
	if err != nil {
		return nil, err
	}

	out, err := allocate(HeaderSize + int(size))
	if err != nil {
		return nil, err
	}

	putHeader(out, buf.SampleRate(), buf.Channels(), size)

	pcm := out[HeaderSize:]
	for i := range buf.Len() {
		binary.LittleEndian.PutUint16(pcm[2*i:2*i+2], uint16(utils.Float32ToInt16(buf.At(i))))
	}

	return out, nil
}

// allocate turns a refused makeslice into ErrAllocation instead of a panic.
func allocate(n int) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				err = fmt.Errorf("%w: %d bytes: %v", ErrAllocation, n, re)
				return
			}
			panic(r)
		}
	}()

	return make([]byte, n), nil
}
