package core

// Line identifies one hardware interrupt line. Lines are small, dense
// indices - typically produced by the irqgen tool (see gen/) from a named
// line list - and the core uses them only as handler table indices.
type Line uint8

// MaxLines is the compile-time capacity of the handler table. Platforms
// with fewer lines report their actual count via Controller.NumLines.
const MaxLines = 64

// MaskState is an opaque token returned by Mask/MaskAll and passed back
// to Restore. Its encoding is controller-specific; callers only store
// and return it, which makes nested critical sections compose safely.
type MaskState uintptr

// Controller is the abstract interrupt-masking interface that core code
// uses. Platform-specific implementations handle the actual hardware
// (NVIC on Cortex-M targets, a software controller in sim/ for host
// builds). Every handler table mutation goes through it; the core never
// touches the table without masking at least the affected line.
type Controller interface {
	// NumLines returns how many interrupt lines the platform exposes.
	// Must not exceed MaxLines.
	NumLines() int

	// Mask disables delivery of a single line and returns a token
	// capturing the previous state. Nestable.
	Mask(line Line) MaskState

	// MaskAll disables delivery of every line. Nestable.
	MaskAll() MaskState

	// Restore reverts a previous Mask or MaskAll, re-enabling delivery
	// if this was the outermost critical section.
	Restore(state MaskState)
}

// Global singleton used by core code.
var controller Controller

// SetController is called by target-specific code to register its
// interrupt controller.
func SetController(c Controller) {
	controller = c
}

// MustController returns the configured controller or panics if missing.
func MustController() Controller {
	if controller == nil {
		panic("interrupt controller not configured")
	}
	return controller
}
