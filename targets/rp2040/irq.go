//go:build rp2040

package main

// RP2040 interrupt controller binding
// Implements core.Controller against the Cortex-M0+ NVIC and points each
// hooked hardware vector at the core dispatch trampoline.

import (
	"device/arm"
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"irqscope/core"
	"irqscope/targets/rp2040/board"
)

//go:generate go run irqscope/host/cmd/irqgen -config lines.yaml -out board/board.go

// Cortex-M0+ NVIC set/clear-enable registers (single word, 32 IRQs)
const (
	nvicBase = 0xE000E100
	nvicISER = nvicBase + 0x00
	nvicICER = nvicBase + 0x80
)

var (
	nvicSetEnable = (*volatile.Register32)(unsafe.Pointer(uintptr(nvicISER)))
	nvicClrEnable = (*volatile.Register32)(unsafe.Pointer(uintptr(nvicICER)))
)

// Line mask tokens carry a flag bit so Restore can tell them apart from
// PRIMASK values returned by MaskAll.
const lineTokenFlag core.MaskState = 1 << 31

type nvicController struct{}

func (nvicController) NumLines() int {
	return board.LineCount
}

// Mask disables one NVIC line, preserving its previous enable state in
// the returned token so nested critical sections compose.
func (nvicController) Mask(line core.Line) core.MaskState {
	irq := uint32(board.LineVector(line))
	wasEnabled := nvicSetEnable.Get()&(1<<irq) != 0

	nvicClrEnable.Set(1 << irq)
	// The disable is not guaranteed visible until after a barrier
	arm.Asm("dsb")
	arm.Asm("isb")

	token := lineTokenFlag | core.MaskState(irq)<<1
	if wasEnabled {
		token |= 1
	}
	return token
}

// MaskAll sets PRIMASK, disabling every configurable interrupt.
func (nvicController) MaskAll() core.MaskState {
	return core.MaskState(interrupt.Disable())
}

func (nvicController) Restore(state core.MaskState) {
	if state&lineTokenFlag != 0 {
		if state&1 != 0 {
			nvicSetEnable.Set(1 << (uint32(state>>1) & 0x1F))
		}
		return
	}
	interrupt.Restore(interrupt.State(state))
}

// initVectors hooks every board line's hardware vector to the dispatch
// trampoline and enables it in the NVIC. Peripherals stay quiet until
// the demo arms them, so an enabled line with no registered handler
// never fires on its own.
func initVectors() {
	interrupt.New(rp.IRQ_TIMER_IRQ_0, func(interrupt.Interrupt) {
		core.Dispatch(board.TimerAlarm0)
	}).Enable()
	interrupt.New(rp.IRQ_TIMER_IRQ_1, func(interrupt.Interrupt) {
		core.Dispatch(board.TimerAlarm1)
	}).Enable()
	interrupt.New(rp.IRQ_PIO0_IRQ_0, func(interrupt.Interrupt) {
		core.Dispatch(board.PioTick)
	}).Enable()
}
