package token

import "strconv"

// DecodeNumber parses a numeric literal and returns its little-endian
// byte encoding. For hex and binary literals the number of digits
// written selects 1 or 2 bytes — "$FF" is one byte, "$00FF" is two, even
// though both represent values that would fit in a byte. Decimal
// literals are sized by magnitude. Values above 0xFFFF are rejected.
func DecodeNumber(text string) ([]byte, error) {
	switch {
	case len(text) >= 1 && text[0] == '$':
		return decodeFixedWidth(text[1:], 16, ErrBadNumber(text))
	case len(text) >= 1 && text[0] == '%':
		return decodeFixedWidth(text[1:], 2, ErrBadNumber(text))
	case len(text) >= 2 && (text[:2] == "0x" || text[:2] == "0X"):
		return decodeFixedWidth(text[2:], 16, ErrBadNumber(text))
	default:
		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil || v > 0xffff {
			return nil, ErrBadNumber(text)
		}
		return sizeByMagnitude(v), nil
	}
}

// decodeFixedWidth parses digits in the given base and sizes the result by
// digit count: 1-2 digits (base 16) or 1-8 digits (base 2) yield one byte;
// 3-4 digits (base 16) or 9-16 digits (base 2) yield two bytes.
func decodeFixedWidth(digits string, base int, badErr error) ([]byte, error) {
	if len(digits) == 0 {
		return nil, badErr
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return nil, badErr
	}

	var perByteDigits int
	switch base {
	case 16:
		perByteDigits = 2
	case 2:
		perByteDigits = 8
	default:
		perByteDigits = len(digits)
	}

	switch {
	case len(digits) <= perByteDigits:
		if v > 0xff {
			return nil, badErr
		}
		return []byte{byte(v)}, nil
	case len(digits) <= perByteDigits*2:
		if v > 0xffff {
			return nil, badErr
		}
		return []byte{byte(v), byte(v >> 8)}, nil
	default:
		return nil, badErr
	}
}

func sizeByMagnitude(v uint64) []byte {
	if v <= 0xff {
		return []byte{byte(v)}
	}
	return []byte{byte(v), byte(v >> 8)}
}
