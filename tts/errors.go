// SPDX-License-Identifier: EPL-2.0

package tts

import "errors"

var (
	// ErrEmptyText is returned when the text to speak is blank.
	ErrEmptyText = errors.New("text is empty")

	// ErrUnknownVoice is returned for a voice id missing from the catalogue.
	ErrUnknownVoice = errors.New("unknown voice")

	// ErrNoAudio is returned when the service answers without an audio payload.
	ErrNoAudio = errors.New("no audio data received")

	ErrUnknownProvider = errors.New("unknown speech provider")
	ErrEmptyCatalog    = errors.New("voice catalog is empty")
	ErrDuplicateVoice  = errors.New("duplicate voice id")
)
