package internal

// Quirks selects between behaviours that differ across CHIP-8 interpreters
type Quirks struct {
	// LegacyShiftFlags computes VF for SHR and SHL with the nibble masks
	// vx&0x0F == 1 and vx&0xF0 == 1 instead of the bit shifted out. The
	// second mask can never match, so SHL always clears VF in this mode.
	LegacyShiftFlags bool
}

// Option configures a C8VM at construction time
type Option func(vm *C8VM)

// WithRandom sets the source used by RND Vx, kk
func WithRandom(src RandomSource) Option {
	return func(vm *C8VM) {
		vm.rand = src
	}
}

// WithQuirks sets the interpreter quirks
func WithQuirks(q Quirks) Option {
	return func(vm *C8VM) {
		vm.quirks = q
	}
}
