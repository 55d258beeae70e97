package program

// RelativeJumpOffset computes the signed branch displacement from the
// address immediately after the branch's operand byte to target. It
// fails with ErrBranchRange if the displacement doesn't fit in a signed
// 8-bit offset.
func RelativeJumpOffset(pcAfterOperand, target Address) (NearOffset, error) {
	delta := int(target) - int(pcAfterOperand)
	if delta < -128 || delta > 127 {
		return 0, ErrBranchRange
	}
	return NearOffset(delta), nil
}

// PatchBytes computes the bytes to write at a relocation's position for
// the resolved target address, per its RelocMode.
func PatchBytes(mode RelocMode, position, target Address) ([]byte, error) {
	switch mode {
	case RelocAbsolute:
		return []byte{byte(target), byte(target >> 8)}, nil
	case RelocRelative:
		off, err := RelativeJumpOffset(position+1, target)
		if err != nil {
			return nil, err
		}
		return []byte{byte(off)}, nil
	case RelocZeroPage:
		if target > 0xFF {
			return nil, ErrZeroPageHigh
		}
		return []byte{byte(target)}, nil
	default:
		return nil, ErrBadRelocMode
	}
}
