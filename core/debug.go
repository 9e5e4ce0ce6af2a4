package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TraceEvent captures one handler table or dispatch event for
// post-mortem analysis
type TraceEvent struct {
	EventType uint8  // Event type code
	Line      Line   // Interrupt line involved
	Seq       uint32 // Monotonic sequence number
}

// Event type codes
const (
	EvtInstall   = 1 // Handler installed in a slot
	EvtClear     = 2 // Slot cleared
	EvtDispatch  = 3 // Interrupt dispatched to a handler
	EvtUnhandled = 4 // Interrupt fired with an empty slot
)

const (
	TraceRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// Trace capture ring buffer (non-blocking, for post-mortem)
	traceRing     [TraceRingSize]TraceEvent
	traceRingHead uint8
	traceSeq      uint32
	traceEnabled  bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetTraceEnabled enables or disables trace capture
// Useful for benchmarks where even the ring write would affect timing
func SetTraceEnabled(enabled bool) {
	traceEnabled = enabled
}

// recordTrace captures a table/dispatch event in the ring buffer
// This is always non-blocking and very fast
func recordTrace(eventType uint8, line Line) {
	if !traceEnabled {
		return
	}
	traceSeq++
	idx := traceRingHead
	traceRing[idx] = TraceEvent{
		EventType: eventType,
		Line:      line,
		Seq:       traceSeq,
	}
	traceRingHead = (idx + 1) % TraceRingSize
}

// DumpTraceRing outputs the trace ring buffer (call on fault/shutdown)
// This should be called after stopping time-critical code
func DumpTraceRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[IRQ] === Trace Ring Dump ===")

	// Read from oldest to newest
	start := traceRingHead
	for i := uint8(0); i < TraceRingSize; i++ {
		idx := (start + i) % TraceRingSize
		evt := &traceRing[idx]
		if evt.EventType == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.EventType {
		case EvtInstall:
			name = "INSTALL"
		case EvtClear:
			name = "CLEAR"
		case EvtDispatch:
			name = "DISPATCH"
		case EvtUnhandled:
			name = "UNHANDLED!"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[IRQ] " + name +
			" line=" + itoa(int(evt.Line)) +
			" seq=" + itoa(int(evt.Seq)))
	}
	debugPrintln("[IRQ] === End Dump ===")
}

// ClearTraceRing clears the trace buffer
func ClearTraceRing() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceRingHead = 0
}
