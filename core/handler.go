// Scoped interrupt handler registration
// Lets firmware install handlers that borrow stack-local data, with the
// enclosing scope guaranteeing deregistration before that data goes away.
package core

// Handler is a type-erased nullary unit of behavior installable against
// one interrupt line. A Go func value is already the (code pointer,
// context pointer) pair the table needs, so wrapping a closure here
// performs no additional allocation; the Handler itself lives in
// caller-owned storage and is registered by pointer.
//
// The captured state must be safe to touch from interrupt context: if
// the foreground also accesses it, use sync/atomic or a PriorityLock.
// The handler may be invoked many times over the life of its
// registration and must not assume anything about the call stack it
// runs on.
type Handler struct {
	fn func()
}

// NewHandler wraps fn as an installable Handler. Declare the result in
// a frame that strictly encloses the WithScope call registering it; the
// scope's teardown then guarantees the registration is gone before the
// frame unwinds.
func NewHandler(fn func()) Handler {
	return Handler{fn: fn}
}

// Invoke runs the wrapped unit exactly once. Called from the dispatch
// trampoline while the triggering line is masked by hardware.
func (h *Handler) Invoke() {
	h.fn()
}
