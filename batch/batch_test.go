package batch

import (
	"testing"

	safe "github.com/dusk-network/safe-go"
	"github.com/dusk-network/safe-go/internal/field"
)

func TestHashAllMatchesSequential(t *testing.T) {
	caps := field.NewPoseidon(7)
	pattern := safe.NewPattern().Absorb(3).Squeeze(2)
	domainSep := safe.DomainSeparatorBytes([]byte("batch-test"))

	inputs := make([][]field.Elem, 20)
	for i := range inputs {
		inputs[i] = []field.Elem{field.FromUint64(uint64(i)), field.FromUint64(uint64(i * 2)), field.FromUint64(uint64(i * 3))}
	}

	got, err := HashAll[field.Elem](caps, 7, pattern, domainSep, inputs, 4)
	if err != nil {
		t.Fatalf("HashAll: %v", err)
	}

	for i, input := range inputs {
		sponge, err := safe.Start[field.Elem](caps, 7, pattern, domainSep)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if err := sponge.Absorb(3, input); err != nil {
			t.Fatalf("Absorb: %v", err)
		}
		if err := sponge.Squeeze(2); err != nil {
			t.Fatalf("Squeeze: %v", err)
		}
		want, err := sponge.Finish()
		if err != nil {
			t.Fatalf("Finish: %v", err)
		}

		if len(got[i]) != len(want) {
			t.Fatalf("input %d: length = %d, want %d", i, len(got[i]), len(want))
		}
		for j := range want {
			if got[i][j] != want[j] {
				t.Errorf("input %d, element %d = %v, want %v", i, j, got[i][j], want[j])
			}
		}
	}
}

func TestHashAllRejectsWrongPatternShape(t *testing.T) {
	caps := field.NewPoseidon(7)
	pattern := safe.NewPattern().Absorb(1).Absorb(1).Squeeze(1)
	_, err := HashAll[field.Elem](caps, 7, pattern, nil, [][]field.Elem{{1}}, 2)
	if err == nil {
		t.Fatal("expected an error for a pattern with more than two calls")
	}
}
