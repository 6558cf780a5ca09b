// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"testing"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

func TestDataSize(t *testing.T) {
	t.Parallel()

	largest := MaxDataSize / 2
	size, err := dataSize(largest)
	if err != nil {
		t.Fatalf("dataSize(%d) error = %v", largest, err)
	}
	if want := uint32(largest) * 2; size != want {
		t.Errorf("dataSize(%d) = %d, want %d", largest, size, want)
	}

	_, err = dataSize(largest + 1)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("dataSize(%d) error = %v, want ErrAllocation", largest+1, err)
	}
}

func TestAllocate_RecoversRuntimePanic(t *testing.T) {
	t.Parallel()

	out, err := allocate(-1)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("allocate(-1) error = %v, want ErrAllocation", err)
	}
	if out != nil {
		t.Errorf("allocate(-1) = %d bytes, want nil", len(out))
	}

	out, err = allocate(HeaderSize)
	if err != nil || len(out) != HeaderSize {
		t.Errorf("allocate(%d) = %d bytes, %v", HeaderSize, len(out), err)
	}
}

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		wantErr    bool
	}{
		{"mono 24k", 24000, 1, false},
		{"widest block align", 24000, math.MaxUint16 / audio.BytesPerSample, false},
		{"block align overflow", 24000, math.MaxUint16/audio.BytesPerSample + 1, true},
		{"byte rate at limit", math.MaxUint32 / 4, 2, false},
		{"byte rate overflow", math.MaxInt32, 2, true},
		{"zero rate", 0, 1, true},
		{"zero channels", 24000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkFormat(tt.sampleRate, tt.channels)
			if tt.wantErr && !errors.Is(err, audio.ErrInvalidFormat) {
				t.Errorf("checkFormat(%d, %d) error = %v, want ErrInvalidFormat", tt.sampleRate, tt.channels, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("checkFormat(%d, %d) error = %v, want nil", tt.sampleRate, tt.channels, err)
			}
		})
	}
}
