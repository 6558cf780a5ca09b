// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"testing"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	buf, err := audio.NewBuffer(24000, 1, []float32{0, 0.5})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if err := checkFormat(buf, 24000, 1); err != nil {
		t.Errorf("checkFormat(match) = %v", err)
	}
	if err := checkFormat(buf, 48000, 1); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("checkFormat(rate) = %v, want ErrFormatMismatch", err)
	}
	if err := checkFormat(buf, 24000, 2); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("checkFormat(channels) = %v, want ErrFormatMismatch", err)
	}
	if err := checkFormat(nil, 24000, 1); !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("checkFormat(nil) = %v, want ErrInvalidFormat", err)
	}
}

func TestNewOto_InvalidFormat(t *testing.T) {
	t.Parallel()

	if _, err := NewOto(0, 1); !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("NewOto(0, 1) error = %v, want ErrInvalidFormat", err)
	}
}
