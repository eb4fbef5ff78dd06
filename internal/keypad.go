package internal

import (
	"github.com/pkg/errors"
)

// SetKey updates the state of one of the 16 keypad keys
func (vm *C8VM) SetKey(index uint8, down bool) error {
	if index >= KeyCount {
		return errors.Wrapf(ErrInvalidKey, "key %d", index)
	}
	mask := uint16(1) << index
	if down {
		vm.key |= mask
	} else {
		vm.key &^= mask
	}
	return nil
}

// IsKeyDown returns whether the key is currently pressed
func (vm *C8VM) IsKeyDown(index uint8) bool {
	if index >= KeyCount {
		return false
	}
	mask := uint16(1) << index
	return vm.key&mask == mask
}

// firstKeyDown returns the lowest pressed key
func (vm *C8VM) firstKeyDown() (uint8, bool) {
	for i := uint8(0); i < KeyCount; i++ {
		if vm.IsKeyDown(i) {
			return i, true
		}
	}
	return 0, false
}
