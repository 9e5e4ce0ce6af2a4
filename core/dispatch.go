package core

// Dispatch is the trampoline invoked by a platform's vector-table veneer
// when interrupt line fires. If a handler is installed it runs to
// completion before control returns to the preempted context; hardware
// masks recurrence of the same line while it runs, so Dispatch itself
// only has to guard against table mutation from the foreground, which
// the masking in table.go already serializes.
//
// With no handler installed the unregistered-interrupt policy applies:
// a fault handler set via SetFaultHandler, or the build's default
// (panic identifying the line on host builds, a non-returning stall
// loop on tinygo builds - faulting from interrupt context is itself
// unsafe, so a silent stall is the deployment failure mode).
func Dispatch(line Line) {
	h := lookup(line)
	if h == nil {
		recordTrace(EvtUnhandled, line)
		unhandled(line)
		return
	}
	recordTrace(EvtDispatch, line)
	h.Invoke()
}

// faultHandler, when set, replaces the default unregistered-interrupt
// policy. It must not return control in a way that resumes normal
// execution on hardware targets; report, then stall or reset.
var faultHandler func(Line)

// SetFaultHandler installs a platform-specific policy for interrupts
// that fire with no registered handler. Passing nil restores the
// build's default.
func SetFaultHandler(fn func(Line)) {
	faultHandler = fn
}

func unhandled(line Line) {
	if faultHandler != nil {
		faultHandler(line)
		return
	}
	defaultFault(line)
}
