package cpu

// Bus is the minimal interface the CPU core needs to fetch and execute
// instructions: byte-level read/write plus the Language-Card soft-switch
// hook, consulted on every access. A small interface owned by the CPU
// package, satisfied by the concrete memory implementation, so the core
// can be driven by a flat test bus too.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
	SoftSwitch(addr uint16, isWrite bool)
}

// MLIBus is the richer multi-byte access the MLI dispatcher needs to
// decode parameter blocks. A CPU's Bus must also implement MLIBus for
// the JSR $BF00 trap to do anything useful; test buses that never
// exercise the trap need not implement it.
type MLIBus interface {
	Bus
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, v uint16)
	ReadWord24(addr uint16) uint32
	WriteWord24(addr uint16, v uint32)
	ReadBytes(addr uint16, b []byte)
	WriteBytes(addr uint16, b []byte)
}

// Dispatcher is implemented by the MLI subsystem and invoked by the
// CPU's JSR $BF00 trap.
type Dispatcher interface {
	Dispatch(bus MLIBus, callNumber byte, paramBlockAddr uint16) byte
}
