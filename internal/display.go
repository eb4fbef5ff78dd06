package internal

// clearPixels resets all pixels to a value of 0
func (vm *C8VM) clearPixels() {
	vm.pixels = [ScreenHeight][ScreenWidth]uint8{}
}

// drawSprite XORs an n byte sprite read from I onto the display at (x, y).
// Coordinates wrap on both axes. Returns whether any lit pixel was switched
// off.
func (vm *C8VM) drawSprite(x uint8, y uint8, n uint8) bool {
	collision := false
	for byteIdx := uint8(0); byteIdx < n; byteIdx++ {
		spriteByte := vm.memory[(vm.regI+uint16(byteIdx))&lastAddr]
		row := (int(y) + int(byteIdx)) % ScreenHeight
		for bitIdx := uint8(0); bitIdx < 8; bitIdx++ {
			if spriteByte&(0x80>>bitIdx) == 0 {
				continue
			}
			col := (int(x) + int(bitIdx)) % ScreenWidth
			px := &vm.pixels[row][col]
			if *px == 1 {
				collision = true
			}
			*px ^= 1
		}
	}
	return collision
}

// ShouldDraw returns whether the display changed since the previous call
// and clears the flag.
func (vm *C8VM) ShouldDraw() bool {
	draw := vm.drawFlag
	vm.drawFlag = false
	return draw
}

// Pixels returns a copy of the display, indexed by row then column
func (vm *C8VM) Pixels() [ScreenHeight][ScreenWidth]uint8 {
	return vm.pixels
}

// Pixel returns whether the pixel at column x, row y is lit. Coordinates
// wrap like they do for sprites.
func (vm *C8VM) Pixel(x, y int) bool {
	x %= ScreenWidth
	if x < 0 {
		x += ScreenWidth
	}
	y %= ScreenHeight
	if y < 0 {
		y += ScreenHeight
	}
	return vm.pixels[y][x] == 1
}
