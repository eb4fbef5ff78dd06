package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestSetKey(t *testing.T) {
	vm := newTestVM(t)

	assert.NoError(t, vm.SetKey(0xF, true))
	assert.NoError(t, vm.SetKey(0x0, true))
	assert.True(t, vm.IsKeyDown(0xF))
	assert.True(t, vm.IsKeyDown(0x0))

	// releasing twice must not toggle the key back on
	assert.NoError(t, vm.SetKey(0xF, false))
	assert.NoError(t, vm.SetKey(0xF, false))
	assert.False(t, vm.IsKeyDown(0xF))
	assert.True(t, vm.IsKeyDown(0x0))
}

func TestSetKeyInvalid(t *testing.T) {
	vm := newTestVM(t)

	err := vm.SetKey(16, true)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.True(t, IsFatal(err))
	assert.False(t, vm.IsKeyDown(16))
}
