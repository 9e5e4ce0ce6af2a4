//go:build rp2040

package main

// PIO-driven interrupt source
// Loads a tiny PIO program that periodically raises PIO IRQ flag 0 and
// routes it to the PIO0_IRQ_0 NVIC line, giving the demo a second,
// fully hardware-generated interrupt with no CPU involvement between
// ticks.

import (
	"device/rp"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// PIO tick program:
//
//	.wrap_target
//	    set x, 31           ; reload delay counter
//	delay:
//	    jmp x--, delay [31] ; ~1024 PIO cycles of delay
//	    irq wait 0          ; raise IRQ flag 0, stall until acked
//	.wrap
//
// With the clock divider below this raises roughly two interrupts per
// second. "irq wait" stalls the state machine until the handler clears
// the flag, so a slow handler drops ticks instead of piling them up.
var pioTickProgram = []uint16{
	0xE03F, // 0: set x, 31
	0x1F41, // 1: jmp x--, 1 [31]
	0xC020, // 2: irq wait 0
}

const pioTickOrigin = 0 // load at offset 0 for correct jump addresses

// PioTicker owns one PIO0 state machine running the tick program.
type PioTicker struct {
	sm     rp2pio.StateMachine
	offset uint8
	loaded bool
}

// NewPioTicker claims state machine smNum on PIO0.
func NewPioTicker(smNum uint8) *PioTicker {
	return &PioTicker{
		sm: rp2pio.PIO0.StateMachine(smNum),
	}
}

// Start loads the program and begins raising interrupts. Call only
// after a handler for the PIO tick line is registered, or the raises
// will take the fault path.
func (t *PioTicker) Start() error {
	if !t.loaded {
		t.sm.TryClaim()

		offset, err := rp2pio.PIO0.AddProgram(pioTickProgram, pioTickOrigin)
		if err != nil {
			return err
		}
		t.offset = offset

		cfg := rp2pio.DefaultStateMachineConfig()
		cfg.SetWrap(offset+uint8(len(pioTickProgram))-1, offset)
		// Slowest available PIO clock; the delay loop does the rest
		cfg.SetClkDivIntFrac(65535, 255)

		t.sm.Init(offset, cfg)
		t.loaded = true
	}

	// Route PIO IRQ flag 0 (bit 8 of the INTE map) to PIO0_IRQ_0
	rp.PIO0.IRQ0_INTE.SetBits(1 << 8)
	t.sm.SetEnabled(true)
	return nil
}

// Ack clears IRQ flag 0, releasing the stalled state machine for the
// next tick. Called from the tick handler.
func (t *PioTicker) Ack() {
	rp.PIO0.IRQ.Set(1 << 0)
}

// Stop halts the state machine and unroutes its interrupt.
func (t *PioTicker) Stop() {
	t.sm.SetEnabled(false)
	rp.PIO0.IRQ0_INTE.ClearBits(1 << 8)
	rp.PIO0.IRQ.Set(1 << 0) // drop a tick left pending at the flag
}
