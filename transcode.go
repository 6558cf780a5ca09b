// SPDX-License-Identifier: EPL-2.0

package voxfluent

import (
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/formats/wav"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/payload"
)

const (
	// DefaultSampleRate is the rate of speech produced by the synthesis service.
	DefaultSampleRate = 24000
	// DefaultChannels is the channel count of synthesized speech (mono).
	DefaultChannels = 1
)

// Transcode runs the whole pipeline on a base64 speech payload: decode,
// interpret as 16-bit PCM at sampleRate/channels, and encode as WAV.
//
// It returns the normalized buffer, for playback or inspection, together with
// the WAV file bytes. Both are fresh values owned by the caller. Errors from
// each stage are returned unchanged and can be matched with errors.Is.
func Transcode(p string, sampleRate, channels int) (*audio.Buffer, []byte, error) {
	raw, err := payload.Decode(p)
	if err != nil {
		return nil, nil, err
	}

	buf, err := audio.Interpret(raw, sampleRate, channels)
	if err != nil {
		return nil, nil, err
	}

	data, err := wav.Encode(buf)
	if err != nil {
		return nil, nil, err
	}

	return buf, data, nil
}
