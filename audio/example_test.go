// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

// ExampleInterpret shows how raw 16-bit PCM becomes a normalized buffer.
func ExampleInterpret() {
	// three little-endian int16 samples: 0, 16384, -32768, plus one stray byte
	raw := []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x80, 0x7f}

	buf, err := audio.Interpret(raw, 24000, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("frames: %d\n", buf.Frames())
	for i := range buf.Frames() {
		fmt.Printf("  %+.4f\n", buf.Sample(i, 0))
	}
	// Output:
	// frames: 3
	//   +0.0000
	//   +0.5000
	//   -1.0000
}

// ExampleInterpret_empty shows that sub-frame input is an error, not silence.
func ExampleInterpret_empty() {
	_, err := audio.Interpret([]byte{0x01}, 24000, 1)
	fmt.Println(errors.Is(err, audio.ErrEmptyAudio))
	// Output:
	// true
}
