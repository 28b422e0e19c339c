//go:build rp2040 || rp2350

package strconvx

// Minimal, allocation-aware helpers with strconv-compatible signatures.
// Supported bases: 2..36. Out-of-range values return an error, matching
// strconv rather than silently truncating.

type parseError struct{}

func (parseError) Error() string { return "invalid syntax" }

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func Atoi(s string) (int, error) {
	v, err := ParseInt(s, 10, 0)
	return int(v), err
}

func FormatInt(i int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	neg := i < 0
	var u uint64
	if neg {
		u = uint64(-i)
	} else {
		u = uint64(i)
	}
	s := formatUint(u, base)
	if neg {
		return "-" + s
	}
	return s
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return formatUint(u, base)
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

// bitSize: 0,8,16,32,64 as in strconv; 0 maps to the int size (64 here).
func ParseInt(s string, base, bitSize int) (int64, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	u, err := ParseUint(s, base, 64)
	if err != nil {
		return 0, err
	}
	var v int64
	if neg {
		if u > 1<<63 {
			return 0, parseError{}
		}
		v = -int64(u)
	} else {
		if u >= 1<<63 {
			return 0, parseError{}
		}
		v = int64(u)
	}
	if bitSize != 0 && bitSize != 64 {
		lim := int64(1) << (bitSize - 1)
		if v >= lim || v < -lim {
			return 0, parseError{}
		}
	}
	return v, nil
}

func ParseUint(s string, base, bitSize int) (uint64, error) {
	if base < 2 || base > 36 || len(s) == 0 {
		return 0, parseError{}
	}
	if bitSize == 0 {
		bitSize = 64
	}
	var max uint64 = 1<<63 - 1 + 1<<63
	if bitSize < 64 {
		max = 1<<uint(bitSize) - 1
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'z':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'Z':
			d = c - 'A' + 10
		default:
			return 0, parseError{}
		}
		if int(d) >= base {
			return 0, parseError{}
		}
		if v > (max-uint64(d))/uint64(base) {
			return 0, parseError{}
		}
		v = v*uint64(base) + uint64(d)
	}
	return v, nil
}
