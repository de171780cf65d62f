//go:build linux

package joy

import "golang.org/x/sys/unix"

// currentThreadID returns the OS thread ID of the calling goroutine's thread.
// Meaningful only while the goroutine is pinned with runtime.LockOSThread.
func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}
