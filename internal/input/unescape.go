package input

import "strings"

// unescape resolves C-style backslash sequences: \n \t \r \a \v \b \f,
// \xHH, up to three octal digits, and \c for any other c.
// A trailing lone backslash is kept.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		switch c = s[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'v':
			b.WriteByte('\v')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'x':
			n, width := 0, 0
			for width < 2 && i+1 < len(s) && isHex(s[i+1]) {
				i++
				n = n*16 + hexValue(s[i])
				width++
			}
			if width == 0 {
				b.WriteByte('x')
			} else {
				b.WriteByte(byte(n))
			}
		default:
			if c >= '0' && c <= '7' {
				n := int(c - '0')
				for width := 1; width < 3 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; width++ {
					i++
					n = n*8 + int(s[i]-'0')
				}
				b.WriteByte(byte(n))
				continue
			}
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
