//go:build rp2040

package main

// Demo: scoped interrupt handlers on the RP2040
// Registers handlers for a hardware timer alarm and a PIO-generated
// interrupt inside one scope, runs an idle loop that shares a counter
// with the handlers through a PriorityLock, then lets the scope tear
// everything down before the counters go out of use.

import (
	"device/rp"
	"time"

	"irqscope/core"
	"irqscope/targets/rp2040/board"
)

const tickIntervalUS = 100_000 // alarm 0 period: 10Hz

func main() {
	// Give USB CDC time to enumerate so early output is not lost
	time.Sleep(2 * time.Second)

	core.SetController(nvicController{})
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetFaultHandler(func(line core.Line) {
		println("irq fault: unhandled interrupt", board.LineName(line))
		core.DumpTraceRing()
		for {
		}
	})
	initVectors()

	println("irqscope rp2040 demo")

	// Shared between the timer handler (interrupt context) and the
	// idle loop below. The handler side may lose a race against the
	// idle loop holding the lock; it just skips that tick's update.
	var stats core.PriorityLock
	ticks := 0
	contended := 0
	pioTicks := 0

	alarm := core.NewHandler(func() {
		rp.TIMER.INTR.Set(1 << 0) // ack alarm 0
		rp.TIMER.ALARM0.Set(rp.TIMER.TIMERAWL.Get() + tickIntervalUS)

		if stats.TryLockHigh() {
			ticks++
			stats.UnlockHigh()
		} else {
			contended++ // handler-only state, no lock needed
		}
	})

	ticker := NewPioTicker(0)
	pio := core.NewHandler(func() {
		ticker.Ack()
		pioTicks++ // only this handler touches pioTicks while registered
	})

	err := core.WithScope(func(s *core.Scope) error {
		if err := s.Register(board.TimerAlarm0, &alarm); err != nil {
			return err
		}
		if err := s.Register(board.PioTick, &pio); err != nil {
			return err
		}

		// Arm the peripherals only after the handlers are installed
		rp.TIMER.INTE.SetBits(1 << 0)
		rp.TIMER.ALARM0.Set(rp.TIMER.TIMERAWL.Get() + tickIntervalUS)
		if err := ticker.Start(); err != nil {
			return err
		}

		// Idle loop
		for i := 0; i < 10; i++ {
			time.Sleep(time.Second)

			stats.LockLow()
			n := ticks
			stats.UnlockLow()
			println("ticks:", n, "contended:", contended, "pio:", pioTicks)
		}

		// Quiesce the peripherals before teardown; a raise latched
		// after this point would hit the fault path once the slots
		// are cleared.
		rp.TIMER.INTE.ClearBits(1 << 0)
		ticker.Stop()
		return nil
	})
	if err != nil {
		println("scope failed:", err.Error())
	}

	// Slots are clear; ticks, contended and pioTicks are now plain
	// foreground variables again.
	println("scope exited, handlers deregistered")
	core.DumpTraceRing()

	for {
		time.Sleep(time.Second)
	}
}
