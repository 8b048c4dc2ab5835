package safe

import (
	"encoding/binary"
)

// maxCallLen is the largest length a single Call, or an aggregated run of
// same-kind calls, may declare: n must fit in 31 bits (§6).
const maxCallLen = 1<<31 - 1

// absorbBit is the high bit set in the encoded tag-input word for an
// Absorb call and cleared for a Squeeze call (§6, normative).
const absorbBit = uint32(1) << 31

// CallKind distinguishes an absorb call from a squeeze call.
type CallKind uint8

const (
	// KindAbsorb marks a call that feeds elements into the sponge.
	KindAbsorb CallKind = iota
	// KindSqueeze marks a call that reads elements out of the sponge.
	KindSqueeze
)

func (k CallKind) String() string {
	if k == KindAbsorb {
		return "Absorb"
	}
	return "Squeeze"
}

// Call is one step of an io pattern: absorb or squeeze N elements.
type Call struct {
	Kind CallKind
	N    uint32
}

// Absorb constructs an Absorb(n) call.
func Absorb(n uint32) Call { return Call{Kind: KindAbsorb, N: n} }

// Squeeze constructs a Squeeze(n) call.
func Squeeze(n uint32) Call { return Call{Kind: KindSqueeze, N: n} }

// Pattern is a finite ordered sequence of Call values declared to start
// before absorbing or squeezing anything.
type Pattern []Call

// NewPattern returns a Pattern holding a copy of calls (empty when none
// are given), ready for chained Absorb/Squeeze calls, e.g.
// safe.NewPattern().Absorb(4).Squeeze(2).
func NewPattern(calls ...Call) Pattern {
	if len(calls) == 0 {
		return Pattern{}
	}
	out := make(Pattern, len(calls))
	copy(out, calls)
	return out
}

// Absorb appends an Absorb(n) call and returns the extended pattern.
func (p Pattern) Absorb(n uint32) Pattern { return append(p, Absorb(n)) }

// Squeeze appends a Squeeze(n) call and returns the extended pattern.
func (p Pattern) Squeeze(n uint32) Pattern { return append(p, Squeeze(n)) }

// Validate checks the structural rules of §4.2: non-empty, at least two
// calls, starts with Absorb, ends with Squeeze, no zero-length call, no
// call (or aggregated run) whose length would overflow 31 bits, and no
// total squeezed output across the whole pattern exceeding 31 bits.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return &PatternValidationError{Reason: "pattern is empty"}
	}
	if len(p) == 1 {
		return &PatternValidationError{Reason: "pattern must contain at least two calls"}
	}
	if p[0].Kind != KindAbsorb {
		return &PatternValidationError{Reason: "pattern must start with Absorb"}
	}
	if p[len(p)-1].Kind != KindSqueeze {
		return &PatternValidationError{Reason: "pattern must end with Squeeze"}
	}
	totalSqueeze := 0
	for _, c := range p {
		if c.N == 0 {
			return &PatternValidationError{Reason: "call length must be positive"}
		}
		if c.N > maxCallLen {
			return &PatternValidationError{Reason: "call length exceeds 31 bits"}
		}
		if c.Kind == KindSqueeze {
			totalSqueeze += int(c.N)
			if totalSqueeze > maxCallLen {
				return &PatternValidationError{Reason: "total squeezed output exceeds 31 bits"}
			}
		}
	}
	// Sum each run in 64 bits: aggregate() sums in uint32, which wraps for
	// runs of three or more near-maximal calls.
	var runLen uint64
	for i, c := range p {
		if i > 0 && c.Kind != p[i-1].Kind {
			runLen = 0
		}
		runLen += uint64(c.N)
		if runLen > maxCallLen {
			return &PatternValidationError{Reason: "aggregated call length overflows 31 bits"}
		}
	}
	return nil
}

// aggregate folds contiguous same-kind calls into one by summing their
// lengths. Used only for tag derivation; dispatch always uses the
// original, non-aggregated pattern.
func (p Pattern) aggregate() Pattern {
	if len(p) == 0 {
		return nil
	}
	out := make(Pattern, 0, len(p))
	out = append(out, p[0])
	for _, c := range p[1:] {
		last := &out[len(out)-1]
		if last.Kind == c.Kind {
			last.N += c.N
			continue
		}
		out = append(out, c)
	}
	return out
}

// DomainSeparator is an opaque byte string appended verbatim to the
// encoded io pattern before hashing to the initial tag.
type DomainSeparator []byte

// DomainSeparatorBytes wraps raw bytes as a domain separator.
func DomainSeparatorBytes(b []byte) DomainSeparator {
	out := make(DomainSeparator, len(b))
	copy(out, b)
	return out
}

// DomainSeparatorUint64 renders v as a minimal big-endian byte string
// (no leading zero bytes; zero itself encodes as a single zero byte).
func DomainSeparatorUint64(v uint64) DomainSeparator {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return DomainSeparatorBytes(buf[i:])
}

// encodeTagInput builds the normative tag-input byte string of §6: one
// big-endian 32-bit word per aggregated call, high bit set for Absorb,
// followed by the domain separator's bytes verbatim.
func encodeTagInput(p Pattern, domainSep DomainSeparator) []byte {
	agg := p.aggregate()
	out := make([]byte, 0, len(agg)*4+len(domainSep))
	var word [4]byte
	for _, c := range agg {
		v := c.N
		if c.Kind == KindAbsorb {
			v |= absorbBit
		}
		binary.BigEndian.PutUint32(word[:], v)
		out = append(out, word[:]...)
	}
	out = append(out, domainSep...)
	return out
}
