package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, "#", cfg.Comment)
	assert.Equal(t, 0, cfg.Equil)
	assert.Equal(t, "", cfg.Archive)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalardat.yaml")
	err := os.WriteFile(path,
		[]byte("comment: \"%\"\nequil: 32\narchive: /tmp/scalardat\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "%", cfg.Comment)
	assert.Equal(t, 32, cfg.Equil)
	assert.Equal(t, "/tmp/scalardat", cfg.Archive)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalardat.yaml")
	err := os.WriteFile(path, []byte("equil: 8\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "#", cfg.Comment)
	assert.Equal(t, 8, cfg.Equil)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "#", cfg.Comment)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalardat.yaml")
	err := os.WriteFile(path, []byte(":::not yaml"), 0644)
	assert.NoError(t, err)
	_, err = Load(path)
	assert.Error(t, err)

	err = os.WriteFile(path, []byte("equil: -2\n"), 0644)
	assert.NoError(t, err)
	_, err = Load(path)
	assert.Error(t, err)
}
