// Package security provides input limits for files irocheck reads.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// MaxConfigSize caps config files.
	MaxConfigSize int64 = 1 << 20

	// MaxStoreSize caps the palette store.
	MaxStoreSize int64 = 16 << 20
)

// ErrTooLarge is returned when a file exceeds its size limit.
var ErrTooLarge = errors.New("file exceeds size limit")

// LimitedReader wraps an io.Reader and fails once more than Remaining bytes are read.
// Unlike io.LimitReader it reports an error instead of a silent EOF.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining < 0 {
		return 0, ErrTooLarge
	}
	// One byte past the limit tells a full file apart from an oversized one.
	if int64(len(p)) > l.Remaining+1 {
		p = p[:l.Remaining+1]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	if l.Remaining < 0 {
		return n, ErrTooLarge
	}
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadFile reads path, rejecting files larger than maxBytes.
// Errors from opening the file are returned unwrapped so os.ErrNotExist checks still work.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - callers pass user-configured paths
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(NewLimitedReader(f, maxBytes))
	if errors.Is(err, ErrTooLarge) {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrTooLarge, maxBytes)
	}
	return data, err
}
