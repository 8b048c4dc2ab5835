package safe

// Sponge is the state machine of §4.3: a fixed-width array of T split
// into one capacity cell (state[0]) and a rate of width-1 cells
// (state[1:]), driven by a caller-declared io pattern.
//
// A Sponge is single-owner and single-threaded: no method may be called
// concurrently on the same instance from multiple goroutines. Distinct
// instances are fully independent.
type Sponge[T any, C Permutation[T]] struct {
	caps C
	// state holds the capacity cell at index 0 and the rate cells at
	// indices [1, width).
	state      []T
	pattern    Pattern
	ioCount    int
	posAbsorb  int
	posSqueeze int
	output     []T
	alive      bool
}

// Start validates and normalizes pattern, derives the initial tag from
// the encoded pattern and domain separator, and returns a live Sponge of
// the given width (width must be at least 2: one capacity cell plus a
// non-empty rate).
//
// The type parameters cannot be inferred from an interface-typed
// argument, so callers instantiate explicitly, e.g.
// safe.Start[poseidon.Elem](caps, 7, pattern, domainSep).
func Start[T any, C Permutation[T]](caps C, width int, pattern Pattern, domainSep DomainSeparator) (*Sponge[T, C], error) {
	if width < 2 {
		return nil, &PatternValidationError{Reason: "width must be at least 2"}
	}
	if err := pattern.Validate(); err != nil {
		return nil, err
	}

	tagInput := encodeTagInput(pattern, domainSep)
	tag := caps.Tag(tagInput)

	state := make([]T, width)
	state[0] = tag

	original := make(Pattern, len(pattern))
	copy(original, pattern)

	return &Sponge[T, C]{
		caps:    caps,
		state:   state,
		pattern: original,
		alive:   true,
	}, nil
}

// rate returns the number of rate cells: width - 1.
func (s *Sponge[T, C]) rate() int {
	return len(s.state) - 1
}

// Absorb injects the first n elements of input into the state,
// interleaving calls to Permute, and checks that this call matches the
// next call the io pattern declared.
func (s *Sponge[T, C]) Absorb(n int, input []T) error {
	if !s.alive {
		return ErrErased
	}

	if s.ioCount >= len(s.pattern) || !callMatches(s.pattern[s.ioCount], KindAbsorb, n) {
		reason := "unexpected call"
		if s.ioCount < len(s.pattern) {
			reason = "expected " + s.pattern[s.ioCount].Kind.String()
		}
		err := &IOPatternError{CallIndex: s.ioCount, Reason: reason}
		s.erase()
		return err
	}

	if len(input) < n {
		err := &LengthError{Want: n, Got: len(input), Sentinel: ErrTooFewInputElements}
		s.erase()
		return err
	}

	rate := s.rate()
	for i := 0; i < n; i++ {
		if s.posAbsorb == rate {
			s.caps.Permute(s.state)
			s.posAbsorb = 0
		}
		pos := s.posAbsorb + 1
		s.state[pos] = s.caps.Add(s.state[pos], input[i])
		s.posAbsorb++
	}

	s.ioCount++
	// Force a permutation before the next squeeze (§4.3, position
	// discipline asymmetry: absorb resets the squeeze cursor, while
	// squeeze never touches the absorb cursor).
	s.posSqueeze = rate

	return nil
}

// Squeeze reads n elements out of the state into the accumulated output,
// interleaving calls to Permute, and checks that this call matches the
// next call the io pattern declared. It never touches the absorb cursor:
// a subsequent absorb may overwrite rate cells this call just read.
func (s *Sponge[T, C]) Squeeze(n int) error {
	if !s.alive {
		return ErrErased
	}

	if s.ioCount >= len(s.pattern) || !callMatches(s.pattern[s.ioCount], KindSqueeze, n) {
		reason := "unexpected call"
		if s.ioCount < len(s.pattern) {
			reason = "expected " + s.pattern[s.ioCount].Kind.String()
		}
		err := &IOPatternError{CallIndex: s.ioCount, Reason: reason}
		s.erase()
		return err
	}

	rate := s.rate()
	for i := 0; i < n; i++ {
		if s.posSqueeze == rate {
			s.caps.Permute(s.state)
			s.posSqueeze = 0
		}
		s.output = append(s.output, s.state[s.posSqueeze+1])
		s.posSqueeze++
	}

	s.ioCount++

	return nil
}

// Finish asserts that every call in the io pattern has been consumed,
// erases the sponge's state, and returns the accumulated squeeze output.
// The instance is unusable after Finish returns, whether or not it
// returned an error.
func (s *Sponge[T, C]) Finish() ([]T, error) {
	if !s.alive {
		return nil, ErrErased
	}

	if s.ioCount != len(s.pattern) {
		err := &IOPatternError{CallIndex: s.ioCount, Reason: "io pattern not fully consumed"}
		s.erase()
		return nil, err
	}

	out := s.output
	s.output = nil
	s.erase()
	return out, nil
}

// erase overwrites every state cell with the zero value of T, clears the
// output buffer and io pattern, and marks the instance dead.
func (s *Sponge[T, C]) erase() {
	var zero T
	for i := range s.state {
		s.state[i] = zero
	}
	s.output = nil
	s.pattern = nil
	s.ioCount = 0
	s.posAbsorb = 0
	s.posSqueeze = 0
	s.alive = false
}

func callMatches(c Call, kind CallKind, n int) bool {
	return c.Kind == kind && int(c.N) == n
}
