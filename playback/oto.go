// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog/log"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
)

// Oto plays through the system sound device using oto. oto allows a single
// context per process, so an Oto is bound to one format for its lifetime
// and should be created once by the caller.
type Oto struct {
	otoCtx     *oto.Context
	sampleRate int
	channels   int

	mu     sync.Mutex
	volume float64
}

// NewOto opens the sound device for sampleRate/channels 16-bit PCM.
func NewOto(sampleRate, channels int) (*Oto, error) {
	if err := audio.ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	log.Debug().Int("sample_rate", sampleRate).Int("channels", channels).Msg("audio output initialized")

	return &Oto{
		otoCtx:     ctx,
		sampleRate: sampleRate,
		channels:   channels,
		volume:     1,
	}, nil
}

// SetVolume sets the volume in [0, 1] for subsequent plays.
func (o *Oto) SetVolume(v float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.volume = min(max(v, 0), 1)
}

// Play blocks until buf has been played or ctx is done; in the latter case
// playback stops and ctx.Err() is returned.
func (o *Oto) Play(ctx context.Context, buf *audio.Buffer) error {
	if err := checkFormat(buf, o.sampleRate, o.channels); err != nil {
		return err
	}

	o.mu.Lock()
	volume := o.volume
	o.mu.Unlock()

	player := o.otoCtx.NewPlayer(NewReader(buf))
	defer player.Close()

	player.SetVolume(volume)
	player.Play()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return player.Err()
}

// Close suspends the device.
func (o *Oto) Close() error {
	return o.otoCtx.Suspend()
}

func checkFormat(buf *audio.Buffer, sampleRate, channels int) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", audio.ErrInvalidFormat)
	}
	if buf.SampleRate() != sampleRate || buf.Channels() != channels {
		return fmt.Errorf("%w: buffer %d Hz/%d ch, output %d Hz/%d ch",
			ErrFormatMismatch, buf.SampleRate(), buf.Channels(), sampleRate, channels)
	}
	return nil
}
