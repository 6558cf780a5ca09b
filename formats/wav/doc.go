// SPDX-License-Identifier: EPL-2.0

// Package wav encodes normalized audio buffers as 16-bit PCM RIFF/WAVE files.
//
// # Encoding
//
// Encode builds the whole file in memory:
//
//	buf, _ := audio.Interpret(raw, 24000, 1)
//	data, err := wav.Encode(buf)
//
// Write produces the same bytes on an io.Writer, and EncodeSource drains an
// audio.Source into a seekable writer through github.com/go-audio/wav.
//
// Samples are re-quantized as round(s * 32767), clamped to the int16 range.
//
// # File Format
//
// Output always carries the canonical 44-byte header:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     sample rate * channels * 2
//	32      2     channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     data size
//
// All integers are little-endian. No other chunks are written.
//
// # Decoding
//
// Decode reads 16-bit PCM WAV files back into an audio.Buffer:
//
//	f, _ := os.Open("clip.wav")
//	buf, err := wav.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the file is not 16-bit linear PCM
//   - ErrAllocation: the output does not fit a RIFF file or memory
package wav
