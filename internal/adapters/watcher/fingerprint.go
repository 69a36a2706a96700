package watcher

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints remembers a content hash per file so that saves which do not
// change the bytes on disk are ignored.
type Fingerprints struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewFingerprints returns an empty set.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{hashes: make(map[string]uint64)}
}

// Record stores the current hash of path. A missing file is recorded as absent.
func (f *Fingerprints) Record(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if sum, err := hashFile(path); err == nil {
		f.hashes[path] = sum
	} else {
		delete(f.hashes, path)
	}
}

// Changed rehashes path and reports whether its content differs from the
// last recorded state. exists is false when the file can no longer be read.
func (f *Fingerprints) Changed(path string) (changed, exists bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, known := f.hashes[path]

	sum, err := hashFile(path)
	if err != nil {
		delete(f.hashes, path)
		return known, false
	}

	f.hashes[path] = sum
	return !known || prev != sum, true
}

func hashFile(path string) (uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
