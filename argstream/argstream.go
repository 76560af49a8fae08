package argstream

// Stream provides sequential, consume-once access to a list of command
// line arguments. A parser and the sub-parsers of its registered commands
// read from the same Stream instance, so a command's parser picks up
// exactly where its parent stopped.
type Stream struct {
	args  []string
	index int
}

// New creates a Stream over a copy of the given arguments.
func New(args []string) *Stream {
	return &Stream{args: append([]string(nil), args...)}
}

// Append adds an argument to the end of the stream.
func (s *Stream) Append(arg string) {
	s.args = append(s.args, arg)
}

// HasNext reports whether the stream contains at least one more argument.
func (s *Stream) HasNext() bool {
	return s.index < len(s.args)
}

// HasNextValue reports whether the next argument is formally parsable as
// an option value. Any argument not beginning with a dash qualifies, as
// do a dash on its own and negative numbers. The check is purely lexical:
// "123abc" passes it and fails later with a conversion error if the
// consuming option expects a number.
func (s *Stream) HasNextValue() bool {
	if !s.HasNext() {
		return false
	}
	arg := s.args[s.index]
	if arg == "" || arg[0] != '-' {
		return true
	}
	if len(arg) == 1 {
		return true
	}
	return arg[1] >= '0' && arg[1] <= '9'
}

// Next consumes and returns the next argument. It panics on an exhausted
// stream, callers are expected to check HasNext first.
func (s *Stream) Next() string {
	if !s.HasNext() {
		panic("argstream: Next() called on an exhausted stream")
	}
	arg := s.args[s.index]
	s.index++
	return arg
}

// Peek returns the next argument without consuming it. Like Next it
// panics if the stream is exhausted.
func (s *Stream) Peek() string {
	if !s.HasNext() {
		panic("argstream: Peek() called on an exhausted stream")
	}
	return s.args[s.index]
}
