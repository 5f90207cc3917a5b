package system

import (
	"bufio"
	"io"
)

// ConvertText copies r to w, translating between ProDOS's text
// convention (CR line endings, high bit set on every byte) and a host
// plain-text convention (LF line endings, high bit clear). toHost
// selects the direction: true converts ProDOS-format input to host
// format, false converts host-format input to ProDOS format.
func ConvertText(r io.Reader, w io.Writer, toHost bool) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if toHost {
			b &= 0x7F
			if b == 0x0D {
				b = 0x0A
			}
		} else {
			if b == 0x0A {
				b = 0x0D
			}
			b |= 0x80
		}
		if err := bw.WriteByte(b); err != nil {
			return err
		}
	}
	return bw.Flush()
}
