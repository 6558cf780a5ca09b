// SPDX-License-Identifier: EPL-2.0

package studio

import (
	"fmt"
	"time"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

// Clip is one generated utterance. Clips are never modified after creation.
type Clip struct {
	ID        string
	Text      string
	Voice     tts.Voice
	CreatedAt time.Time

	// Buffer is the decoded audio, for playback.
	Buffer *audio.Buffer

	artifact *Artifact
}

// Artifact is the WAV file backing the clip.
func (c *Clip) Artifact() *Artifact { return c.artifact }

// Duration of the audio.
func (c *Clip) Duration() time.Duration { return c.Buffer.Duration() }

// DownloadName is the suggested file name, e.g. "voxfluent-Kore-1a2b3c.wav".
func (c *Clip) DownloadName() string {
	id := c.ID
	if len(id) > 6 {
		id = id[:6]
	}
	return fmt.Sprintf("voxfluent-%s-%s.wav", c.Voice.Name, id)
}
