// SPDX-License-Identifier: EPL-2.0

// Package voxfluent turns synthesized speech payloads into playable WAV files.
//
// A speech-generation service returns audio as base64 text wrapping headerless
// signed 16-bit little-endian PCM. This module decodes that text, interprets
// the PCM as normalized samples and packages the samples as a RIFF/WAVE file.
//
// # Quick Start
//
// The simplest way to process a payload is Transcode:
//
//	buf, wavData, err := voxfluent.Transcode(payload, voxfluent.DefaultSampleRate, voxfluent.DefaultChannels)
//	if err != nil {
//	    // payload.ErrDecode, audio.ErrEmptyAudio, wav.ErrAllocation ...
//	}
//	os.WriteFile("clip.wav", wavData, 0o644)
//
// # Pipeline Stages
//
// Each stage lives in its own package and can be used alone:
//   - payload.Decode: base64 text to raw bytes
//   - audio.Interpret: raw PCM to an audio.Buffer
//   - wav.Encode: audio.Buffer to WAV bytes
//
// Every stage returns a fresh value the caller owns. Nothing is cached and
// nothing is shared, so the stages are safe to call from many goroutines.
//
// # Studio
//
// The studio package builds on the pipeline: it asks a tts.Synthesizer for
// speech, transcodes it and keeps a newest-first history of clips, each
// backed by a WAV file that is released when the clip is deleted.
//
// # Error Handling
//
// Errors are sentinels matched with errors.Is:
//
//	_, _, err := voxfluent.Transcode(p, 24000, 1)
//	switch {
//	case errors.Is(err, payload.ErrDecode):
//	    // not base64
//	case errors.Is(err, audio.ErrEmptyAudio):
//	    // less than one frame of PCM
//	case errors.Is(err, wav.ErrAllocation):
//	    // too large for a WAV file
//	}
package voxfluent
