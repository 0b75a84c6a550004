package dialogue

// Sequencer presents an ordered list of lines one at a time. It is a
// two-state machine: idle (no current line) and active (one line shown,
// remainder queued). Not safe for concurrent use; the owning session
// serializes access.
type Sequencer struct {
	current *Line
	queue   []Line
}

// NewSequencer returns an idle sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Start replaces any running sequence with lines. Empty input is a no-op.
func (s *Sequencer) Start(lines []Line) {
	if len(lines) == 0 {
		return
	}
	head := lines[0]
	s.current = &head
	s.queue = append([]Line(nil), lines[1:]...)
}

// Advance pops the next queued line into current, or clears the current
// line and goes idle when the queue is empty. Advancing an idle
// sequencer is a no-op.
func (s *Sequencer) Advance() {
	if len(s.queue) > 0 {
		head := s.queue[0]
		s.current = &head
		s.queue = s.queue[1:]
		return
	}
	s.current = nil
	s.queue = nil
}

// Clear drops the current line and queue immediately.
func (s *Sequencer) Clear() {
	s.current = nil
	s.queue = nil
}

// Current returns the line on display, or nil when idle.
func (s *Sequencer) Current() *Line {
	return s.current
}

// Active reports whether a line is being presented.
func (s *Sequencer) Active() bool {
	return s.current != nil
}

// Pending returns a copy of the queued lines.
func (s *Sequencer) Pending() []Line {
	return append([]Line(nil), s.queue...)
}
