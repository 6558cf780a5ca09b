// SPDX-License-Identifier: EPL-2.0

package studio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// Artifact is a WAV file on disk owned by exactly one clip. It is released
// once, when the clip is deleted or the studio is closed.
type Artifact struct {
	path string
	size int64

	mu       sync.Mutex
	released bool
}

func writeArtifact(dir, id string, data []byte) (*Artifact, error) {
	f, err := os.CreateTemp(dir, "voxfluent-"+id+"-*.wav")
	if err != nil {
		return nil, fmt.Errorf("creating clip file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing clip file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("closing clip file: %w", err)
	}

	return &Artifact{path: f.Name(), size: int64(len(data))}, nil
}

// Path of the WAV file. It stays valid until Release.
func (a *Artifact) Path() string { return a.path }

// Size in bytes of the WAV file.
func (a *Artifact) Size() int64 { return a.size }

func (a *Artifact) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Open returns the WAV file for reading, or ErrReleased.
func (a *Artifact) Open() (io.ReadCloser, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil, ErrReleased
	}
	return os.Open(a.path)
}

// ReadAll returns the WAV bytes.
func (a *Artifact) ReadAll() ([]byte, error) {
	rc, err := a.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Release removes the file. Only the first call does anything; later calls
// return nil. A file already gone is not an error.
func (a *Artifact) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil
	}
	a.released = true

	if err := os.Remove(a.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("releasing %s: %w", a.path, err)
	}
	return nil
}
