package joy

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/ardnew/softjoy/pkg"
)

// Singleton admission state for the guard lineage. The atomic flag is the
// only cross-thread synchronization in the library. The reference count and
// owner thread ID are deliberately plain values: they are written only while
// a live guard is provably held on the owning thread, so atomic access would
// serve no purpose except hiding misuse at a higher level.
var (
	guardOpen  atomic.Bool
	guardRefs  int
	guardOwner uint64
)

// noCopy triggers a go vet copylocks diagnostic when a Guard is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard proves that driver access from the current OS thread is permitted.
//
// The native driver keeps static mutable state, so all access must be
// confined to one OS thread for as long as any handles exist. A Guard
// lineage enforces this: a new lineage can be minted by [OpenGuard] only
// while no other guards exist anywhere in the process, and additional
// guards can be produced only by [Guard.Clone] on the owning thread.
// Minting pins the calling goroutine to its OS thread with
// [runtime.LockOSThread]; the pin is dropped when the last guard closes.
//
// Using a guard from any other thread is a programming error and panics.
// This is intentional: the invariant is "single-thread access", and a
// violation must fail fast rather than be quietly tolerated.
type Guard struct {
	noCopy noCopy
	closed bool
}

// OpenGuard mints a new guard lineage.
//
// It succeeds only if no lineage is currently live in the process. Failure
// is not an error condition: it means another lineage holds access, and the
// caller may retry after it closes (possibly from a different thread).
func OpenGuard() (*Guard, bool) {
	if !guardOpen.CompareAndSwap(false, true) {
		return nil, false
	}

	// The flag was just taken, so no other guards exist and the plain
	// state is safe to write.
	runtime.LockOSThread()
	guardOwner = currentThreadID()
	guardRefs = 1

	pkg.LogDebug(pkg.ComponentGuard, "guard lineage opened", "thread", guardOwner)
	return &Guard{}, true
}

// Clone produces an additional guard in the live lineage.
// Panics if called from a foreign thread or on a closed guard.
func (g *Guard) Clone() *Guard {
	if g.closed {
		panic("softjoy: clone of released guard")
	}
	g.mustOwnThread()
	guardRefs++
	return &Guard{}
}

// Close releases this guard. When the last guard in the lineage closes, the
// thread pin is dropped and the admission flag is released so a future
// [OpenGuard] may succeed, possibly on a different thread.
func (g *Guard) Close() error {
	if g.closed {
		return pkg.ErrGuardReleased
	}
	g.mustOwnThread()
	g.closed = true
	guardRefs--

	if guardRefs == 0 {
		runtime.UnlockOSThread()
		pkg.LogDebug(pkg.ComponentGuard, "guard lineage closed")
		// Release store: publishes all prior driver interaction to
		// whichever thread opens the next lineage.
		guardOpen.Store(false)
	}
	return nil
}

// check reports whether this guard may cover a driver call right now.
// A closed guard yields pkg.ErrGuardReleased; a foreign thread panics.
func (g *Guard) check() error {
	if g.closed {
		return pkg.ErrGuardReleased
	}
	g.mustOwnThread()
	return nil
}

func (g *Guard) mustOwnThread() {
	if tid := currentThreadID(); tid != guardOwner {
		panic(fmt.Sprintf("softjoy: guard used from thread %d, lineage owned by thread %d", tid, guardOwner))
	}
}
