package field

// Rotate is the simplest possible permutation: a cyclic left rotation of
// the state by one cell. It mirrors the `Rotate` permutation used by the
// reference implementation's own sponge tests, and is useful here for
// writing worked-example tests where the effect of each Absorb/Squeeze
// call on the state needs to stay easy to compute by hand.
//
// It is not a cryptographic permutation: rotation has no diffusion, so
// Rotate must never back anything but tests.
type Rotate struct{}

// Permute rotates state left by one position in place.
func (Rotate) Permute(state []Elem) {
	if len(state) < 2 {
		return
	}
	first := state[0]
	copy(state, state[1:])
	state[len(state)-1] = first
}

// Tag hashes input into one field element.
func (Rotate) Tag(input []byte) Elem { return TagFromBytes(input) }

// Add returns a + b.
func (Rotate) Add(a, b Elem) Elem { return Add(a, b) }

// Subtract returns a - b.
func (Rotate) Subtract(a, b Elem) Elem { return Sub(a, b) }

// IsEqual reports whether a and b are equal.
func (Rotate) IsEqual(a, b Elem) bool { return IsEqual(a, b) }
