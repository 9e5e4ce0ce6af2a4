package core

import "errors"

var (
	// ErrScopeExited indicates a Register call on a scope whose body has
	// already returned.
	ErrScopeExited = errors.New("scope no longer active")

	// ErrNilHandler indicates a Register call without a handler.
	ErrNilHandler = errors.New("nil handler")
)

// Scope binds a set of interrupt registrations to a lexical region.
// Every registration made through it is cleared before WithScope
// returns, on every exit path, so handlers may freely borrow data from
// frames enclosing the WithScope call. A Scope owns no data itself but
// is the sole authority permitted to clear the slots it created.
type Scope struct {
	active bool
	lines  lineSet
}

// WithScope runs body with a fresh scope. Handlers registered through
// the scope stay installed while body runs (typically an idle loop) and
// are deregistered - each under masking of its line - before WithScope
// returns, whether body returns normally, returns an error, or panics.
// Only once WithScope has returned may data captured by those handlers
// be reused or dropped.
func WithScope(body func(*Scope) error) error {
	s := &Scope{active: true}
	defer s.teardown()
	return body(s)
}

// Register installs h for line until the scope ends. At most one
// registration per line can be live at a time: a second Register for an
// occupied line fails with ErrLineOccupied and leaves the existing
// handler in place. h must point to storage that outlives the scope
// body, which the caller gets for free by declaring it before the
// WithScope call.
func (s *Scope) Register(line Line, h *Handler) error {
	if !s.active {
		return ErrScopeExited
	}
	if h == nil || h.fn == nil {
		return ErrNilHandler
	}
	if err := install(line, h); err != nil {
		return err
	}
	s.lines.add(line)
	return nil
}

// Deregister removes a registration made through this scope before the
// scope ends. No-op for lines this scope does not own.
func (s *Scope) Deregister(line Line) {
	if !s.active || !s.lines.has(line) {
		return
	}
	clear(line)
	s.lines.remove(line)
}

// teardown clears every slot this scope registered, in ascending line
// order. Runs via defer so panic unwinding takes the same path. An
// invocation that started just before a line was masked may still be
// running to completion; deregistration only prevents future dispatches
// from finding the handler.
func (s *Scope) teardown() {
	s.active = false
	s.lines.forEach(clear)
	s.lines = lineSet{}
}
