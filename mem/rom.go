package mem

import "github.com/pgrabas/emu502/program"

// ROM is a flat, read-only byte array device. Store always fails with
// ErrReadOnly.
type ROM struct {
	data []byte
}

var _ Device = (*ROM)(nil)

// NewROM wraps data as a read-only device; data is not copied.
func NewROM(data []byte) *ROM {
	return &ROM{data: data}
}

func (r *ROM) Len() int { return len(r.data) }

func (r *ROM) Load(offset program.Address) (byte, error) {
	if int(offset) >= len(r.data) {
		return 0, ErrOutOfRange
	}
	return r.data[offset], nil
}

func (r *ROM) Store(offset program.Address, b byte) error {
	return ErrReadOnly
}
