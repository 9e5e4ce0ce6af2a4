package core

import "errors"

var (
	// ErrInvalidLine indicates a line index outside the platform's range.
	ErrInvalidLine = errors.New("interrupt line out of range")

	// ErrLineOccupied indicates a registration against a line that
	// already holds a handler. The existing registration is untouched.
	ErrLineOccupied = errors.New("interrupt line already has a handler")
)

// Global handler table, one slot per interrupt line. A slot is either
// nil or holds exactly one installed handler. Slots are only written
// while the corresponding line (or everything) is masked; the masked
// window is a single slot write so the blackout for other lines stays
// minimal.
var handlers [MaxLines]*Handler

// install stores h in line's slot. Fails without mutating the slot if
// it is already occupied.
func install(line Line, h *Handler) error {
	ctl := MustController()
	if int(line) >= ctl.NumLines() || int(line) >= MaxLines {
		return ErrInvalidLine
	}

	state := ctl.Mask(line)
	if handlers[line] != nil {
		ctl.Restore(state)
		return ErrLineOccupied
	}
	handlers[line] = h
	ctl.Restore(state)

	recordTrace(EvtInstall, line)
	return nil
}

// clear empties line's slot. Idempotent; safe to call with an interrupt
// for line pending, since the line is masked before the slot write and
// a later dispatch then takes the unhandled path instead of observing a
// half-cleared slot.
func clear(line Line) {
	if int(line) >= MaxLines {
		return
	}

	ctl := MustController()
	state := ctl.Mask(line)
	handlers[line] = nil
	ctl.Restore(state)

	recordTrace(EvtClear, line)
}

// lookup returns the handler installed for line, or nil. Called only
// from the dispatch trampoline, which hardware already serializes
// against re-entrant firing of the same line, so a bare read suffices.
func lookup(line Line) *Handler {
	if int(line) >= MaxLines {
		return nil
	}
	return handlers[line]
}

// ClearAll empties every slot under a global mask. Used by targets when
// resetting firmware state; scoped registrations are normally cleared
// by their own scope's teardown instead.
func ClearAll() {
	ctl := MustController()
	state := ctl.MaskAll()
	for i := range handlers {
		handlers[i] = nil
	}
	ctl.Restore(state)
}
