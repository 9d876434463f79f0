package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const DefaultComment = "#"

// Options control how a scalar table is read from text.
type Options struct {
	// Comment is the marker that starts a comment line. Lines whose
	// first non-blank character sequence begins with it are skipped
	// entirely. Empty means DefaultComment.
	Comment string
}

func (opt Options) comment() string {
	if opt.Comment == "" {
		return DefaultComment
	}
	return opt.Comment
}

// Parse reads a scalar table from r with default options.
func Parse(r io.Reader) (*Table, error) {
	return ParseWith(r, Options{})
}

// ParseWith reads a scalar table from r in a single sequential pass.
// The first non-comment, non-blank line is the header; every later
// non-comment, non-blank line is a data row matching the header arity.
func ParseWith(r io.Reader, opt Options) (*Table, error) {
	marker := opt.comment()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var t *Table
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, marker) {
			continue
		}
		tokens := strings.Fields(text)
		if t == nil {
			header, err := newTable(tokens)
			if err != nil {
				return nil, err
			}
			t = header
			continue
		}
		values := make([]float64, len(tokens))
		for i, token := range tokens {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, &ParseError{
					Line:   line,
					Reason: fmt.Sprintf("bad number %q", token),
				}
			}
			values[i] = v
		}
		if err := t.appendRow(line, values); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &SchemaError{Reason: "no header line"}
	}
	return t, nil
}

// ParseFile reads a scalar table from the file at path. The file is
// closed before returning, on success and on failure.
func ParseFile(path string) (*Table, error) {
	return ParseFileWith(path, Options{})
}

func ParseFileWith(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWith(f, opt)
}
