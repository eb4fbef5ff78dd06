// Package rom reads CHIP-8 program images from disk.
package rom

import (
	"os"

	"github.com/mnafees/c8vm/internal"
	"github.com/pkg/errors"
)

// Read loads a raw CHIP-8 program. Images are headerless, the bytes are
// returned as stored.
func Read(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loading program")
	}
	if len(data) == 0 {
		return nil, errors.Errorf("program %s is empty", filename)
	}
	return data, nil
}

// Load reads filename and copies it into the VM's memory
func Load(vm *internal.C8VM, filename string) error {
	data, err := Read(filename)
	if err != nil {
		return err
	}
	if err := vm.Load(data); err != nil {
		return errors.Wrapf(err, "loading %s", filename)
	}
	return nil
}
