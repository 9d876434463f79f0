package storage

import (
	"encoding/binary"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no entry in the backend.
var ErrNotFound = errors.New("entry not found")

func BitSet(cond bool) byte {
	if cond {
		return 1
	}
	return 0
}

// GetKey builds the 17-byte entry key:
// <8 bytes file fingerprint> <1 bit manifest tag> <8 bytes column index>
func GetKey(manifest bool, fileID, column int64) []byte {
	buf := make([]byte, 17)
	binary.LittleEndian.PutUint64(buf[:8], uint64(fileID))
	buf[8] = BitSet(manifest)
	binary.LittleEndian.PutUint64(buf[9:], uint64(column))
	return buf
}

func GetKeyPrefix(manifest bool, fileID int64) []byte {
	buf := make([]byte, 9)
	binary.LittleEndian.PutUint64(buf[:8], uint64(fileID))
	buf[8] = BitSet(manifest)
	return buf
}

func GetFileIDFromKey(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf[:8]))
}

func GetManifestFromKey(buf []byte) bool {
	return buf[8] == 1
}

func GetColumnFromKey(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf[9:]))
}

// Backend stores encoded column summaries and one manifest entry
// per fingerprinted file.
type Backend interface {
	GetSummary(fileID, column int64) ([]byte, error)
	PutSummary(fileID, column int64, buf []byte) error
	GetManifest(fileID int64) ([]byte, error)
	PutManifest(fileID int64, buf []byte) error

	// PutFile writes a file's manifest and all of its column
	// summaries, indexed by position, as one batch.
	PutFile(fileID int64, manifest []byte, summaries [][]byte) error
	DeleteFile(fileID int64) error

	IterateColumns(fileID int64, lambda func(int64) error) error

	Close() error
}

type InMemoryBackend struct {
	entries map[string][]byte
	mu      sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		entries: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) get(key []byte) ([]byte, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	buf, ok := backend.entries[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) put(key, buf []byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.entries[string(key)] = buf
	return nil
}

func (backend *InMemoryBackend) GetSummary(fileID, column int64) ([]byte, error) {
	return backend.get(GetKey(false, fileID, column))
}

func (backend *InMemoryBackend) PutSummary(fileID, column int64, buf []byte) error {
	return backend.put(GetKey(false, fileID, column), buf)
}

func (backend *InMemoryBackend) GetManifest(fileID int64) ([]byte, error) {
	return backend.get(GetKey(true, fileID, 0))
}

func (backend *InMemoryBackend) PutManifest(fileID int64, buf []byte) error {
	return backend.put(GetKey(true, fileID, 0), buf)
}

func (backend *InMemoryBackend) PutFile(
	fileID int64, manifest []byte, summaries [][]byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.entries[string(GetKey(true, fileID, 0))] = manifest
	for column, buf := range summaries {
		backend.entries[string(GetKey(false, fileID, int64(column)))] = buf
	}
	return nil
}

func (backend *InMemoryBackend) DeleteFile(fileID int64) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for k := range backend.entries {
		if GetFileIDFromKey([]byte(k)) == fileID {
			delete(backend.entries, k)
		}
	}
	return nil
}

func (backend *InMemoryBackend) IterateColumns(
	fileID int64, lambda func(int64) error) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for k := range backend.entries {
		buf := []byte(k)
		if GetFileIDFromKey(buf) != fileID || GetManifestFromKey(buf) {
			continue
		}
		if err := lambda(GetColumnFromKey(buf)); err != nil {
			return err
		}
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.entries = nil
	return nil
}
