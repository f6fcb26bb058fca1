// Package keypad implements the 16-key hexadecimal input latch.
package keypad

// Keys is the number of keys on the keypad.
const Keys = 16

// Keypad holds the pressed state of keys 0x0-0xF. It is driven by a host
// input poller and read by the CPU. Key indices are taken modulo Keys.
type Keypad struct {
	state [Keys]bool
}

// Press marks key as held down.
func (k *Keypad) Press(key uint8) {
	k.state[key&0x0F] = true
}

// Release marks key as released.
func (k *Keypad) Release(key uint8) {
	k.state[key&0x0F] = false
}

// Set sets the state of key.
func (k *Keypad) Set(key uint8, pressed bool) {
	k.state[key&0x0F] = pressed
}

// IsPressed reports whether key is held down.
func (k *Keypad) IsPressed(key uint8) bool {
	return k.state[key&0x0F]
}

// FirstPressed returns the lowest pressed key.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for i, pressed := range k.state {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.state = [Keys]bool{}
}
