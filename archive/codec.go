package archive

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"scalardat/stats"
)

const summaryBytesLen = 48

// Manifest records what was reduced for one fingerprinted file.
type Manifest struct {
	Nequil  int64
	NumRows int64
	Names   []string
}

func SummaryToBytes(summary *stats.Summary) []byte {
	buf := make([]byte, summaryBytesLen)
	binary.LittleEndian.PutUint64(buf[0:], uint64(summary.Count))
	binary.LittleEndian.PutUint64(buf[8:], uint64(summary.Nequil))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(summary.Mean))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(summary.Variance))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(summary.Error))
	binary.LittleEndian.PutUint64(buf[40:], math.Float64bits(summary.Kappa))
	return buf
}

func BytesToSummary(buf []byte) (*stats.Summary, error) {
	if len(buf) != summaryBytesLen {
		return nil, fmt.Errorf("summary entry is %d bytes, expected %d",
			len(buf), summaryBytesLen)
	}
	return &stats.Summary{
		Count:    int64(binary.LittleEndian.Uint64(buf[0:])),
		Nequil:   int64(binary.LittleEndian.Uint64(buf[8:])),
		Mean:     math.Float64frombits(binary.LittleEndian.Uint64(buf[16:])),
		Variance: math.Float64frombits(binary.LittleEndian.Uint64(buf[24:])),
		Error:    math.Float64frombits(binary.LittleEndian.Uint64(buf[32:])),
		Kappa:    math.Float64frombits(binary.LittleEndian.Uint64(buf[40:])),
	}, nil
}

func ManifestToBytes(manifest *Manifest) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:], uint64(manifest.Nequil))
	binary.LittleEndian.PutUint64(buf[8:], uint64(manifest.NumRows))
	return append(buf, []byte(strings.Join(manifest.Names, "\n"))...)
}

func BytesToManifest(buf []byte) (*Manifest, error) {
	if len(buf) < 16 {
		return nil, fmt.Errorf("manifest entry is %d bytes, expected >= 16",
			len(buf))
	}
	manifest := &Manifest{
		Nequil:  int64(binary.LittleEndian.Uint64(buf[0:])),
		NumRows: int64(binary.LittleEndian.Uint64(buf[8:])),
	}
	if len(buf) > 16 {
		manifest.Names = strings.Split(string(buf[16:]), "\n")
	}
	return manifest, nil
}
