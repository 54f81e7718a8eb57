package profile

// Profiler configures and starts a profiling session.
type Profiler struct {
	// Mode selects what is profiled; see [Modes].
	Mode string
	// Path is the directory profile data is written to.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Start begins profiling and returns a handle for stopping it.
//
// If the pprof build tag is unset, or p.Mode is empty or unknown, Start
// returns a no-op handle. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

type ignore struct{}

func (ignore) Stop() {}
