package memory

// languageCard holds the Apple II Language Card's soft-switch state:
// three independent flags plus the write-enable pre-qualification latch.
// Recomputing bank/read policy on every access, rather than caching it,
// mirrors how the real hardware's decode PAL treats every access as a
// fresh command.
type languageCard struct {
	readEnabled   bool // true: $D000-$FFFF reads see LC RAM; false: ROM
	writeEnabled  bool // true: $D000-$FFFF writes reach LC RAM; false: discarded
	bank1Selected bool // true: bank 1 selected for $D000-$DFFF; false: bank 2
	writeLatch    bool // armed by one qualifying read, cleared by anything else
}

// reset returns the Language Card to {read disabled, write disabled,
// bank 1, latch cleared}.
func (lc *languageCard) reset() {
	lc.readEnabled = false
	lc.writeEnabled = false
	lc.bank1Selected = true
	lc.writeLatch = false
}

// apply processes one access to a $C080-$C08F soft switch. addr's low 4
// bits select bank (bit 3) and command (bits 1-0); bit 2 is unused by
// ProDOS-era Language Card hardware and ignored here, matching beevik's
// mask of the low nibble.
func (lc *languageCard) apply(addr uint16, isWrite bool) {
	k := addr & 0x0F
	lc.bank1Selected = k&0x08 != 0
	cmd := k & 0x03

	writeEnabling := cmd == 0x01 || cmd == 0x03
	lc.readEnabled = cmd == 0x00 || cmd == 0x03

	if isWrite {
		// A write access to a soft switch always clears the latch and
		// disables LC write, regardless of which switch was hit.
		lc.writeLatch = false
		lc.writeEnabled = false
		return
	}

	if !writeEnabling {
		// A read of a non-write-enabling switch clears the latch.
		lc.writeLatch = false
		lc.writeEnabled = false
		return
	}

	// A read of a write-enabling switch (cmd 01 or 11): the first such
	// read arms the latch; the second (with the latch already armed)
	// completes write-enable and clears the latch.
	if lc.writeLatch {
		lc.writeEnabled = true
		lc.writeLatch = false
	} else {
		lc.writeLatch = true
	}
}
