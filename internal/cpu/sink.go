package cpu

import (
	"fmt"
	"io"
)

// WriterSink adapts an io.Writer to DebugSink, writing each line
// terminated with a newline. A failed write is silently dropped: debug
// logging must never be able to crash emulation.
type WriterSink struct {
	W io.Writer
}

// WriteLine implements DebugSink.
func (s WriterSink) WriteLine(line string) {
	fmt.Fprintln(s.W, line)
}
