// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker. Writes past the end grow the
// buffer; seeking past the end and writing zero-fills the gap.
type WriteSeeker struct {
	data []byte
	pos  int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.data)) {
		w.data = append(w.data, make([]byte, end-int64(len(w.data)))...)
	}
	copy(w.data[w.pos:end], p)
	w.pos = end
	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = w.pos + offset
	case io.SeekEnd:
		pos = int64(len(w.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, errors.New("negative position")
	}

	w.pos = pos
	return pos, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.data }
