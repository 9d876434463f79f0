package table

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func assertSameTable(t *testing.T, want, got *Table) {
	assert.True(t, cmp.Equal(want.ColumnNames(), got.ColumnNames()))
	assert.Equal(t, want.NumRows(), got.NumRows())
	for _, name := range want.ColumnNames() {
		wantCol, err := want.Column(name)
		assert.NoError(t, err)
		gotCol, err := got.Column(name)
		assert.NoError(t, err)
		assert.True(t, cmp.Equal(wantCol, gotCol))
	}
}

func TestWriteRoundTrip(t *testing.T) {
	tbl, err := New(
		[]string{"LocalEnergy", "Variance"},
		[][]float64{
			{-45.123456789012345, 0.5},
			{-45.3, 0.4123456789},
			{1e-300, 12345678901234.5},
		})
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = Write(&buf, tbl)
	assert.NoError(t, err)

	again, err := Parse(&buf)
	assert.NoError(t, err)
	assertSameTable(t, tbl, again)
}

func TestWriteRoundTripEmpty(t *testing.T) {
	tbl, err := New([]string{"A", "B"}, nil)
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = Write(&buf, tbl)
	assert.NoError(t, err)

	again, err := Parse(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 0, again.NumRows())
	assert.Equal(t, []string{"A", "B"}, again.ColumnNames())
}

func TestWriteFileRoundTrip(t *testing.T) {
	tbl, err := New([]string{"E"}, [][]float64{{1.5}, {2.5}})
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scalar.dat")
	err = WriteFile(path, tbl)
	assert.NoError(t, err)

	again, err := ParseFile(path)
	assert.NoError(t, err)
	assertSameTable(t, tbl, again)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
