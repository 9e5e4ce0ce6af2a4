//go:build tinygo

package core

// defaultFault on hardware builds parks the core instead of faulting:
// panicking inside interrupt context is itself unsafe, so a stall is
// the safer failure mode for deployed firmware. Targets that can report
// first should install their own policy via SetFaultHandler.
func defaultFault(line Line) {
	for {
	}
}
