package table

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write serializes t in the same header+rows text format Parse reads.
// Values are formatted with enough digits to survive a round trip.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(t.names, " ") + "\n"); err != nil {
		return err
	}
	fields := make([]string, len(t.names))
	for row := 0; row < t.numRows; row++ {
		for col := range t.names {
			fields[col] = strconv.FormatFloat(t.columns[col][row], 'g', -1, 64)
		}
		if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes t to the file at path, truncating any existing file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
