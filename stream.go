package glob

// Stream is the lazy-pull counterpart to Glob (spec §4.4 "stream
// contract"): semantically equivalent to Glob, single-pass and
// non-restartable, with no partial results on error. The traversal itself
// is not incremental (the library has no suspension points per §5), so the
// "laziness" here is in the consumer-facing pull: the full result set is
// computed up front — raising any error before the first yield, exactly as
// the contract requires — and handed out one entry at a time through Next.
type Stream struct {
	entries []GlobEntry
	pos     int
	err     error
}

// NewStream runs the orchestrator pipeline and returns a Stream positioned
// before the first entry. If the pipeline fails, Next immediately reports
// done with Err() set, matching "no partial results" in the stream
// contract.
func NewStream(patterns []string, opts Options) *Stream {
	entries, err := run(patterns, opts)
	return &Stream{entries: entries, err: err}
}

// Next advances the stream and reports whether an entry is available. The
// consumer stops pulling to cancel; a stopped stream yields a valid but
// incomplete prefix of the full result, per §5's cooperative-cancellation
// model.
func (s *Stream) Next() bool {
	if s.err != nil || s.pos >= len(s.entries) {
		return false
	}
	s.pos++
	return true
}

// Entry returns the entry most recently made available by Next.
func (s *Stream) Entry() GlobEntry {
	return s.entries[s.pos-1]
}

// Err returns the error that aborted the stream, if any. It is always
// available before the first successful Next call, never only discovered
// partway through.
func (s *Stream) Err() error {
	return s.err
}
