package config

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags("chopper", []string{"game.ch8"}, false)
	assert.NoError(t, err)

	assert.Equal(t, "game.ch8", opts.ROM)
	assert.Equal(t, DefaultInstructionsPerSecond, opts.InstructionsPerSecond)
	assert.Equal(t, DefaultScale, opts.Scale)
	assert.Equal(t, DefaultFPS, opts.FPS)
	assert.Equal(t, 0, opts.Cycles)
	assert.False(t, opts.LegacyShift)
	assert.False(t, opts.Debug)
	assert.Len(t, opts.VMOptions(), 2)
}

func TestParseFlagsHeadless(t *testing.T) {
	args := []string{"-cycles", "500", "-keys", "10:1+", "-trace", "-legacy-shift", "-seed", "42", "rom.ch8"}
	opts, err := ParseFlags("chopper-headless", args, true)
	assert.NoError(t, err)

	assert.Equal(t, "rom.ch8", opts.ROM)
	assert.Equal(t, 500, opts.Cycles)
	assert.Equal(t, "10:1+", opts.Keys)
	assert.Equal(t, int64(42), opts.Seed)
	assert.True(t, opts.Trace)
	assert.True(t, opts.Debug)
	assert.True(t, opts.LegacyShift)
	assert.Equal(t, 0, opts.Scale)
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing rom", []string{}},
		{"two roms", []string{"a.ch8", "b.ch8"}},
		{"unknown flag", []string{"-bogus", "a.ch8"}},
		{"headless flag on sdl", []string{"-cycles", "5", "a.ch8"}},
		{"zero ips", []string{"-ips", "0", "a.ch8"}},
		{"zero fps", []string{"-fps", "0", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("chopper", tt.args, false)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
