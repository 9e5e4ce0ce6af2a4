package core

import "sync/atomic"

// PriorityLock shares mutable data between a foreground context and one
// interrupt context on cores without an atomic compare-and-swap
// instruction, using Peterson's algorithm. It protects exactly two
// parties: the low side (the idle loop or a low-priority interrupt) and
// the high side (a handler that may preempt the low side).
//
// The low side blocks until the lock is free; that is safe because the
// high side always releases before returning. The high side must use
// TryLockHigh and handle failure: if it preempted the low side while
// the low side holds the lock, waiting would deadlock, so the attempt
// fails instead. There is no general recovery from that - callers
// typically skip the shared update and catch up on the next interrupt.
//
// The zero value is an unlocked lock.
type PriorityLock struct {
	wants [2]uint32
	turn  uint32
}

const (
	lockLow  = 0
	lockHigh = 1
)

// LockLow acquires the lock from the foreground, spinning while the
// interrupt side holds it. Must not be called from interrupt context.
func (l *PriorityLock) LockLow() {
	atomic.StoreUint32(&l.wants[lockLow], 1)
	atomic.StoreUint32(&l.turn, lockHigh)

	// Spin while the high side wants in and we yielded the turn. The
	// high side never blocks, so this window is bounded by one handler.
	for atomic.LoadUint32(&l.wants[lockHigh]) == 1 &&
		atomic.LoadUint32(&l.turn) == lockHigh {
	}
}

// UnlockLow releases the foreground's hold.
func (l *PriorityLock) UnlockLow() {
	atomic.StoreUint32(&l.wants[lockLow], 0)
}

// TryLockHigh attempts to acquire the lock from interrupt context.
// Returns false when the preempted foreground already holds it; the
// handler must tolerate that and skip or defer its shared access.
func (l *PriorityLock) TryLockHigh() bool {
	atomic.StoreUint32(&l.wants[lockHigh], 1)
	atomic.StoreUint32(&l.turn, lockLow)

	if atomic.LoadUint32(&l.wants[lockLow]) == 1 &&
		atomic.LoadUint32(&l.turn) == lockLow {
		// Foreground holds the lock. Back out so it can make progress
		// once the handler returns.
		atomic.StoreUint32(&l.wants[lockHigh], 0)
		return false
	}
	return true
}

// UnlockHigh releases the interrupt side's hold.
func (l *PriorityLock) UnlockHigh() {
	atomic.StoreUint32(&l.wants[lockHigh], 0)
}
