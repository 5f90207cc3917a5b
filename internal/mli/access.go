package mli

// accessLetters gives the flag character for each bit position 7..0 of
// the access byte; position 3 and 4 (bits 4 and 3) are reserved and
// always rendered '.'.
var accessLetters = [8]byte{'d', 'n', 'b', '.', '.', 'i', 'w', 'r'}

// defaultAccess is applied whenever the access xattr is missing or
// fails strict parsing: destroy-enable, rename-enable, write-enable and
// read-enable set, backup-needed and invisible clear.
const defaultAccess byte = 0xC3

// formatAccess renders an access byte as the eight-character flag
// string used by the access xattr.
func formatAccess(b byte) string {
	out := make([]byte, 8)
	for i, letter := range accessLetters {
		bit := byte(7 - i)
		if letter == '.' {
			out[i] = '.'
			continue
		}
		if b&(1<<bit) != 0 {
			out[i] = letter
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}

// parseAccess strictly parses an eight-character access flag string.
// Reserved positions must be '.'; other positions must be their
// expected letter or '-'. Any violation reports ok=false, and the caller
// is expected to substitute defaultAccess.
func parseAccess(s string) (byte, bool) {
	if len(s) != 8 {
		return 0, false
	}
	var b byte
	for i, letter := range accessLetters {
		bit := byte(7 - i)
		c := s[i]
		if letter == '.' {
			if c != '.' {
				return 0, false
			}
			continue
		}
		switch c {
		case letter:
			b |= 1 << bit
		case '-':
			// bit stays clear
		default:
			return 0, false
		}
	}
	return b, true
}
