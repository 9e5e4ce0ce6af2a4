// Software interrupt controller for host builds
// Stands in for a hardware NVIC in tests and demos: lines can be raised
// from test code, and raises against a masked line stay pending until
// the mask is dropped, matching real disable/restore semantics.
package sim

import "irqscope/core"

// Controller implements core.Controller in software. It models a single
// core: a raise against an unmasked line dispatches synchronously (the
// "hardware preemption"), a raise against a masked line latches the
// line pending, and dropping the last mask delivers pending lines in
// ascending order.
//
// Controller is not safe for concurrent use; the execution model it
// simulates has one core.
type Controller struct {
	numLines int
	allDepth int
	lineMask [core.MaxLines]int
	pending  [core.MaxLines]bool

	// Raised counts every Raise call per line, delivered or pending.
	Raised [core.MaxLines]int
}

// New returns a controller exposing numLines interrupt lines. Panics if
// numLines exceeds core.MaxLines, mirroring MustController's attitude
// to configuration mistakes.
func New(numLines int) *Controller {
	if numLines < 1 || numLines > core.MaxLines {
		panic("sim: line count out of range")
	}
	return &Controller{numLines: numLines}
}

// NumLines returns the simulated line count.
func (c *Controller) NumLines() int {
	return c.numLines
}

// Token encoding: 0 is a MaskAll token, line tokens are line+1.

// Mask disables one line. Nestable.
func (c *Controller) Mask(line core.Line) core.MaskState {
	c.lineMask[line]++
	return core.MaskState(line) + 1
}

// MaskAll disables every line. Nestable.
func (c *Controller) MaskAll() core.MaskState {
	c.allDepth++
	return 0
}

// Restore reverts a Mask or MaskAll and, if the affected lines became
// deliverable, dispatches anything pending on them.
func (c *Controller) Restore(state core.MaskState) {
	if state == 0 {
		c.allDepth--
	} else {
		c.lineMask[core.Line(state-1)]--
	}
	c.deliverPending()
}

// Raise fires interrupt line. Delivery is synchronous when the line is
// unmasked - the handler (or fault path) runs before Raise returns -
// and deferred until the last Restore otherwise.
func (c *Controller) Raise(line core.Line) {
	c.Raised[line]++
	if c.maskedFor(line) {
		c.pending[line] = true
		return
	}
	core.Dispatch(line)
}

// Pending reports whether line has a latched raise awaiting delivery.
func (c *Controller) Pending(line core.Line) bool {
	return c.pending[line]
}

func (c *Controller) maskedFor(line core.Line) bool {
	return c.allDepth > 0 || c.lineMask[line] > 0
}

func (c *Controller) deliverPending() {
	for line := core.Line(0); int(line) < c.numLines; line++ {
		if c.pending[line] && !c.maskedFor(line) {
			c.pending[line] = false
			core.Dispatch(line)
		}
	}
}
