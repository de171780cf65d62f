// Package prof provides on-demand profiling for feeder loops.
//
// It wraps [runtime/pprof] behind the "profile" build tag:
//
//	go build -tags profile
//
// When built without the tag, all exported functions become no-ops, so a
// feeder can keep its -cpuprofile flag wired without paying for it in
// normal builds.
//
// CPU profiling streams samples and requires explicit start/stop:
//
//	prof.StartCPU("cpu.prof")
//	defer prof.StopCPU()
//
// Other profiles capture a point-in-time snapshot:
//
//	prof.Write(prof.ProfileHeap, "heap.prof")
package prof
