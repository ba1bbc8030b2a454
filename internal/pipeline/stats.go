package pipeline

// RunStats tracks what a run produced.
type RunStats struct {
	Cards  int // Card PNGs written.
	Videos int // Video clips encoded.
	Failed int // Steps that errored out.
}

// OK reports whether the run completed without failures.
func (s *RunStats) OK() bool { return s.Failed == 0 }
