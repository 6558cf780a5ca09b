// SPDX-License-Identifier: EPL-2.0

package tts

import "context"

// Speech is the raw answer of a Synthesizer.
type Speech struct {
	// Payload is standard base64 text wrapping headerless s16le PCM.
	Payload string
	// SampleRate of the PCM in Hz. Zero means the caller's default.
	SampleRate int
	// Channels of the PCM. Zero means the caller's default.
	Channels int
	// MIMEType as reported by the service, if any.
	MIMEType string
}

// Synthesizer generates speech for text in the voice voiceID.
// Implementations must be safe for concurrent use.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (*Speech, error)
}

// SynthesizerFunc adapts a plain function to the Synthesizer interface.
type SynthesizerFunc func(ctx context.Context, text, voiceID string) (*Speech, error)

func (f SynthesizerFunc) Synthesize(ctx context.Context, text, voiceID string) (*Speech, error) {
	return f(ctx, text, voiceID)
}
