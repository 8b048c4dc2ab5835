package field

// Poseidon is a small, from-scratch Poseidon-style permutation: full
// rounds apply an x^d S-box to every cell, partial rounds apply it only
// to the capacity cell, and every round finishes with an MDS mix. It
// satisfies safe.Permutation[Elem] and safe.Encryption[Elem].
type Poseidon struct {
	width int
	rf    int // total number of full rounds, split evenly before/after the partial rounds
	rp    int // number of partial rounds
	d     uint64
	rc    [][]Elem // one row of `width` round constants per round
	mds   [][]Elem // width x width MDS matrix
}

// sboxDegree is 7: the smallest d with gcd(d, Modulus-1) = 1, so x -> x^d
// is a bijection on the field.
const sboxDegree = 7

// NewPoseidon builds a Poseidon permutation over `width` field elements
// with a fixed, deterministically generated round-constant and MDS
// schedule. Parameters are sized for demonstration, not audited for a
// production security margin.
func NewPoseidon(width int) *Poseidon {
	const fullRounds = 8
	const partialRounds = 13

	seed := uint64(0x506f7365) ^ uint64(width)*0x9E3779B97F4A7C15

	rc := make([][]Elem, fullRounds+partialRounds)
	for r := range rc {
		row := make([]Elem, width)
		for i := range row {
			row[i] = FromUint64(splitmix64(&seed))
		}
		rc[r] = row
	}

	return &Poseidon{
		width: width,
		rf:    fullRounds,
		rp:    partialRounds,
		d:     sboxDegree,
		rc:    rc,
		mds:   cauchyMDS(width),
	}
}

// Permute applies the fixed round schedule to state in place. Callers
// must pass a slice of exactly the configured width.
func (p *Poseidon) Permute(state []Elem) {
	halfFull := p.rf / 2
	total := p.rf + p.rp
	mixed := make([]Elem, p.width)

	for r := 0; r < total; r++ {
		full := r < halfFull || r >= halfFull+p.rp
		if full {
			for i := range state {
				state[i] = Add(state[i], p.rc[r][i])
				state[i] = Pow(state[i], p.d)
			}
		} else {
			state[0] = Add(state[0], p.rc[r][0])
			state[0] = Pow(state[0], p.d)
		}

		matVec(mixed, p.mds, state)
		copy(state, mixed)
	}
}

// Tag hashes input into one field element.
func (p *Poseidon) Tag(input []byte) Elem { return TagFromBytes(input) }

// Add returns a + b.
func (p *Poseidon) Add(a, b Elem) Elem { return Add(a, b) }

// Subtract returns a - b, the inverse of Add.
func (p *Poseidon) Subtract(a, b Elem) Elem { return Sub(a, b) }

// IsEqual reports whether a and b are equal.
func (p *Poseidon) IsEqual(a, b Elem) bool { return IsEqual(a, b) }

func matVec(out []Elem, mds [][]Elem, in []Elem) {
	for i := range out {
		acc := Elem(0)
		row := mds[i]
		for j := range in {
			acc = Add(acc, Mul(row[j], in[j]))
		}
		out[i] = acc
	}
}

// cauchyMDS builds a width x width Cauchy matrix M[i][j] = 1/(x_i + y_j)
// with x_i = i+1 and y_j = width+j+1. Cauchy matrices with distinct x_i,
// distinct y_j, and no zero denominator are always MDS.
func cauchyMDS(width int) [][]Elem {
	x := make([]Elem, width)
	y := make([]Elem, width)
	for i := 0; i < width; i++ {
		x[i] = FromUint64(uint64(i + 1))
		y[i] = FromUint64(uint64(width + i + 1))
	}

	m := make([][]Elem, width)
	for i := 0; i < width; i++ {
		row := make([]Elem, width)
		for j := 0; j < width; j++ {
			row[j] = inv(Add(x[i], y[j]))
		}
		m[i] = row
	}
	return m
}

// inv returns a's multiplicative inverse via Fermat's little theorem.
func inv(a Elem) Elem {
	return Pow(a, Modulus-2)
}

// splitmix64 is the standard SplitMix64 generator, used only to derive
// deterministic, non-adversarial-looking round constants.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
