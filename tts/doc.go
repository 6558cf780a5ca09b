// SPDX-License-Identifier: EPL-2.0

// Package tts defines the contract between the studio and a speech
// generation service, plus the catalogue of voices a user can pick from.
//
// A Synthesizer turns text into Speech: a base64 payload of raw 16-bit
// little-endian PCM together with its sample rate and channel count. The
// payload is handed to voxfluent.Transcode unchanged.
//
// Implementations live in subpackages:
//   - tts/gemini: the Gemini speech-generation API
//   - tts/silence: an offline generator for tests and demos
//
// Providers are looked up by name through a Registry:
//
//	reg := tts.NewRegistry()
//	reg.Register("silence", func(context.Context) (tts.Synthesizer, error) {
//	    return silence.New(), nil
//	})
//	synth, err := reg.New(ctx, "silence")
package tts
