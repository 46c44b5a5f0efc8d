// Package profile provides optional runtime profiling via
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag; without it,
// every operation is a no-op with zero overhead. When enabled, the
// supported modes are listed by [Modes] (cpu, heap, allocs, mem, block,
// mutex, goroutine, thread, clock, trace), and [net/http/pprof] handlers
// are registered for any HTTP server the application starts.
//
// Profiles are written to the configured directory with names matching
// the mode (cpu.pprof, heap.pprof, ...), ready for go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
