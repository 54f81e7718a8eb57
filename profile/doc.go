// Package profile provides optional runtime profiling for toms-logger.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation. Profiling must be enabled at build time with the "pprof" build
// tag; without it every operation is a no-op.
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// From the command line, after building with the tag:
//
//	go build -tags pprof -o toms-logger .
//	toms-logger --pprof-mode=mutex emit --count=100000 --workers=8 hello
//	go tool pprof -http=: ~/.cache/toms-logger/pprof/mutex.pprof
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/toms-logger/pprof   (Linux/Unix)
//	~/Library/Caches/toms-logger/pprof  (macOS)
//	%LocalAppData%\toms-logger\pprof    (Windows)
//
// When built with the tag, this package also imports [net/http/pprof], which
// registers HTTP handlers at /debug/pprof/ on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
