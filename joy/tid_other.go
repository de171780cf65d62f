//go:build !linux && !windows

package joy

// currentThreadID has no portable implementation on this platform, so every
// caller observes the same ID and the foreign-thread panic never fires.
// Confinement still holds through the runtime.LockOSThread pin taken by
// OpenGuard; only misuse *detection* is degraded.
func currentThreadID() uint64 {
	return 1
}
