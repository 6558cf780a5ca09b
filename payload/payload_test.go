// SPDX-License-Identifier: EPL-2.0

package payload_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/payload"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{}},
		{"three zero bytes", "AAAA", []byte{0, 0, 0}},
		{"one byte padded", "AEA=", []byte{0x00, 0x40}},
		{"two bytes padded", "/w==", []byte{0xff}},
		{"plus and slash", "+/+/", []byte{0xfb, 0xff, 0xbf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := payload.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.input, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = % x, want % x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"illegal character", "AA!A"},
		{"missing padding", "AEA"},
		{"url alphabet", "-_-_"},
		{"embedded newline", "AAAA\nAAAA"},
		{"trailing carriage return", "AAAA\r"},
		{"space", "AA AA"},
		{"too much padding", "AA==="},
		{"non-zero padding bits", "AB=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := payload.Decode(tt.input)
			if !errors.Is(err, payload.ErrDecode) {
				t.Errorf("Decode(%q) error = %v, want ErrDecode", tt.input, err)
			}
			if got != nil {
				t.Errorf("Decode(%q) = % x, want nil", tt.input, got)
			}
		})
	}
}

func TestEncode_Inverse(t *testing.T) {
	t.Parallel()

	raw := []byte{0x00, 0x40, 0xff, 0x7f, 0x01}

	got, err := payload.Decode(payload.Encode(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Decode(Encode(x)) = % x, want % x", got, raw)
	}
}
