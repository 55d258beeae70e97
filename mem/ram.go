package mem

import "github.com/pgrabas/emu502/program"

// RAM is a flat, read-write byte array device.
type RAM struct {
	data []byte
}

var _ Device = (*RAM)(nil)

// NewRAM allocates a zero-filled RAM device of the given size.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

func (r *RAM) Len() int { return len(r.data) }

func (r *RAM) Load(offset program.Address) (byte, error) {
	if int(offset) >= len(r.data) {
		return 0, ErrOutOfRange
	}
	return r.data[offset], nil
}

func (r *RAM) Store(offset program.Address, b byte) error {
	if int(offset) >= len(r.data) {
		return ErrOutOfRange
	}
	r.data[offset] = b
	return nil
}
