// SPDX-License-Identifier: EPL-2.0

package studio

import "errors"

var (
	// ErrClipNotFound is returned when no clip in the history has the given id.
	ErrClipNotFound = errors.New("clip not found")
	// ErrClosed is returned by Generate after Close.
	ErrClosed = errors.New("studio is closed")

	// ErrReleased is returned when reading an artifact after its release.
	ErrReleased = errors.New("artifact released")
)
