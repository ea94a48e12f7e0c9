// Package pia implements the Apple-1-class peripheral interface
// adapter described in spec §6: a memory-mapped bridge between the
// CPU and an asynchronous terminal, exposing character-at-a-time
// keyboard input and display output across four registers.
package pia

import "sync"

// Register addresses. These are absolute addresses in the host's
// address space: the Chip answers at 0xD010-0xD013 wherever it is
// installed on a bus.
const (
	RegKeyboardData    = uint16(0xD010)
	RegKeyboardControl = uint16(0xD011)
	RegDisplayData     = uint16(0xD012)
	RegDisplayControl  = uint16(0xD013)
)

// Chip is the PIA. It owns two byte queues: Inbound carries characters
// from the terminal's keyboard-reader goroutine toward the CPU;
// Outbound carries characters the CPU has written toward the
// terminal's display-writer goroutine. All access to the Chip's state
// goes through its exported methods: Read and Write take mu, so the
// bus transaction the CPU sees is atomic, while Feed and Output touch
// only the queues, which are channels, so the two terminal goroutines
// can push/pull concurrently without racing each other or the CPU
// (spec §5).
type Chip struct {
	mu sync.Mutex

	keyboardLatch uint8
	keyboardReady bool
	keyboardCtrl  uint8
	displayLatch  uint8
	displayCtrl   uint8

	inbound  chan uint8
	outbound chan uint8
}

// New returns a powered-on Chip. inboundCap/outboundCap size the two
// queues; a small buffer (e.g. 256) is enough to keep a keyboard-reader
// or display-writer goroutine from blocking under ordinary typing or
// print rates.
func New(inboundCap, outboundCap int) *Chip {
	return &Chip{
		inbound:  make(chan uint8, inboundCap),
		outbound: make(chan uint8, outboundCap),
	}
}

// Owns reports whether addr is one of the PIA's four registers.
func (c *Chip) Owns(addr uint16) bool {
	switch addr {
	case RegKeyboardData, RegKeyboardControl, RegDisplayData, RegDisplayControl:
		return true
	}
	return false
}

// Read implements bus.Bus (and bus.Device via Owns).
func (c *Chip) Read(addr uint16) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch addr {
	case RegKeyboardData:
		c.pollInboundLocked()
		val := c.keyboardLatch
		c.keyboardLatch = 0
		c.keyboardReady = false
		return val
	case RegKeyboardControl:
		c.pollInboundLocked()
		if c.keyboardReady {
			return 0xFF
		}
		return 0x00
	case RegDisplayData:
		return c.displayLatch
	case RegDisplayControl:
		return c.displayCtrl
	}
	return 0x00
}

// Write implements bus.Bus (and bus.Device via Owns).
func (c *Chip) Write(addr uint16, val uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch addr {
	case RegKeyboardData:
		// No side effect beyond the store; a real keyboard register is
		// read-only from the CPU's perspective but nothing stops a
		// program from writing here.
		c.keyboardLatch = val
	case RegKeyboardControl:
		c.keyboardCtrl = val
	case RegDisplayData:
		out := val & 0x7F
		if out == 0x0D {
			out = 0x0A
		}
		select {
		case c.outbound <- out:
		default:
			// Outbound queue is full; drop rather than block the CPU,
			// matching spec §4.1's "writes discard at the bus's
			// discretion" for a saturated device.
		}
		c.displayLatch = 0x00
	case RegDisplayControl:
		c.displayCtrl = val
	}
}

// pollInboundLocked non-blockingly pulls one byte off Inbound into the
// keyboard latch if one isn't already waiting there. Caller must hold
// mu.
func (c *Chip) pollInboundLocked() {
	if c.keyboardReady {
		return
	}
	select {
	case b := <-c.inbound:
		c.keyboardLatch = b
		c.keyboardReady = true
	default:
	}
}

// Feed enqueues a byte from the terminal's keyboard-reader goroutine
// onto Inbound. It blocks only if the queue is full.
func (c *Chip) Feed(b uint8) {
	c.inbound <- b
}

// Output dequeues one byte for the terminal's display-writer goroutine
// to render, blocking until one is available.
func (c *Chip) Output() uint8 {
	return <-c.outbound
}
