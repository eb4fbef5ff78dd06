package rom

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnafees/c8vm/internal"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func writeROM(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestRead(t *testing.T) {
	want := []byte{0x00, 0xE0, 0x12, 0x00}
	data, err := Read(writeROM(t, want))
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(want, data))
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(writeROM(t, nil))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	vm, err := internal.NewC8VM()
	assert.NoError(t, err)

	assert.NoError(t, Load(vm, writeROM(t, []byte{0x61, 0x07})))
	assert.Equal(t, uint8(0x61), vm.Memory(0x200))
	assert.Equal(t, uint8(0x07), vm.Memory(0x201))
}

func TestLoadTooLarge(t *testing.T) {
	vm, err := internal.NewC8VM()
	assert.NoError(t, err)

	err = Load(vm, writeROM(t, make([]byte, 4096)))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrProgramTooLarge))
}
