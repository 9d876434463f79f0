package archive

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
)

// Fingerprint identifies a file's current contents by absolute path,
// size, and modification time. Any change to the file yields a new
// fingerprint, so stale archive entries are simply never read again.
func Fingerprint(path string) (int64, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return 0, err
	}

	h := fnv.New64a()
	_, _ = io.WriteString(h, abs)
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], uint64(info.Size()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(info.ModTime().UnixNano()))
	_, _ = h.Write(buf)
	return int64(h.Sum64()), nil
}
