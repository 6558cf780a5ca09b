// SPDX-License-Identifier: EPL-2.0

// Package payload decodes the base64 text that carries synthesized audio.
package payload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrDecode is returned for text that is not standard padded base64.
var ErrDecode = errors.New("payload is not valid base64")

// Decode converts standard-alphabet, padded base64 text into raw bytes.
//
// The empty string decodes to an empty slice; rejecting empty audio is left
// to the PCM layer. Characters outside the alphabet, bad padding, non-zero
// padding bits and line breaks are all reported as ErrDecode.
func Decode(s string) ([]byte, error) {
	// StdEncoding silently skips CR and LF; the payload is a single token.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: line break at offset %d", ErrDecode, i)
	}

	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return raw, nil
}

// Encode is the inverse of Decode.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
