package safe

import (
	"errors"
	"testing"
)

func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		wantErr bool
	}{
		{"empty", NewPattern(), true},
		{"single call", NewPattern(Absorb(1)), true},
		{"starts with squeeze", NewPattern(Squeeze(1), Squeeze(1)), true},
		{"ends with absorb", NewPattern(Absorb(1), Absorb(1)), true},
		{"zero length call", NewPattern(Absorb(0), Squeeze(1)), true},
		{"length overflows 31 bits", NewPattern(Absorb(maxCallLen+1), Squeeze(1)), true},
		{"aggregated overflow", NewPattern(Absorb(maxCallLen), Absorb(1), Squeeze(1)), true},
		{"non-contiguous total squeeze overflow", NewPattern(Absorb(1), Squeeze(maxCallLen), Absorb(1), Squeeze(2)), true},
		{"valid minimal", NewPattern(Absorb(1), Squeeze(1)), false},
		{"valid multi-call", NewPattern().Absorb(4).Absorb(1).Squeeze(2).Absorb(2).Squeeze(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidIOPattern) {
				t.Errorf("error does not match ErrInvalidIOPattern sentinel: %v", err)
			}
		})
	}
}

func TestPatternAggregate(t *testing.T) {
	p := NewPattern().Absorb(2).Absorb(3).Squeeze(1).Squeeze(4).Absorb(1)
	agg := p.aggregate()

	want := Pattern{Absorb(5), Squeeze(5), Absorb(1)}
	if len(agg) != len(want) {
		t.Fatalf("aggregate() = %v, want %v", agg, want)
	}
	for i := range want {
		if agg[i] != want[i] {
			t.Errorf("aggregate()[%d] = %v, want %v", i, agg[i], want[i])
		}
	}
}

func TestDomainSeparatorUint64(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{1 << 56, 8},
	}
	for _, tt := range tests {
		got := DomainSeparatorUint64(tt.v)
		if len(got) != tt.want {
			t.Errorf("DomainSeparatorUint64(%d) length = %d, want %d", tt.v, len(got), tt.want)
		}
	}
}

func TestEncodeTagInputUsesAggregatedPattern(t *testing.T) {
	p1 := NewPattern().Absorb(2).Absorb(3).Squeeze(5)
	p2 := NewPattern().Absorb(5).Squeeze(5)

	sep := DomainSeparatorBytes([]byte("x"))
	in1 := encodeTagInput(p1, sep)
	in2 := encodeTagInput(p2, sep)

	if string(in1) != string(in2) {
		t.Errorf("encodeTagInput should treat contiguous same-kind calls identically to their aggregate:\n%x\n%x", in1, in2)
	}
}

func TestEncodeTagInputHighBit(t *testing.T) {
	p := NewPattern().Absorb(3).Squeeze(2)
	out := encodeTagInput(p, nil)
	if len(out) != 8 {
		t.Fatalf("encodeTagInput length = %d, want 8", len(out))
	}
	if out[0]&0x80 == 0 {
		t.Error("absorb word must have the high bit set")
	}
	if out[4]&0x80 != 0 {
		t.Error("squeeze word must have the high bit clear")
	}
}
