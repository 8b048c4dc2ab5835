package field

import "testing"

func TestAddSubInverse(t *testing.T) {
	a := FromUint64(123456789)
	b := FromUint64(987654321)
	if got := Sub(Add(a, b), b); got != a {
		t.Errorf("Sub(Add(a, b), b) = %v, want %v", got, a)
	}
}

func TestAddWraps(t *testing.T) {
	a := Elem(Modulus - 1)
	got := Add(a, FromUint64(2))
	if got != FromUint64(1) {
		t.Errorf("Add(Modulus-1, 2) = %v, want 1", got)
	}
}

func TestSubWraps(t *testing.T) {
	got := Sub(FromUint64(0), FromUint64(1))
	if got != Elem(Modulus-1) {
		t.Errorf("Sub(0, 1) = %v, want Modulus-1", got)
	}
}

func TestMulByZero(t *testing.T) {
	if got := Mul(FromUint64(999), FromUint64(0)); got != 0 {
		t.Errorf("Mul(x, 0) = %v, want 0", got)
	}
}

func TestPowIdentities(t *testing.T) {
	a := FromUint64(5)
	if got := Pow(a, 0); got != FromUint64(1) {
		t.Errorf("Pow(a, 0) = %v, want 1", got)
	}
	if got := Pow(a, 1); got != a {
		t.Errorf("Pow(a, 1) = %v, want %v", got, a)
	}
}

func TestFermatInverseRoundTrip(t *testing.T) {
	a := FromUint64(123)
	inv := Pow(a, Modulus-2)
	if got := Mul(a, inv); got != FromUint64(1) {
		t.Errorf("a * a^(p-2) = %v, want 1", got)
	}
}

func TestIsEqual(t *testing.T) {
	if !IsEqual(FromUint64(7), FromUint64(7)) {
		t.Error("IsEqual(7, 7) = false, want true")
	}
	if IsEqual(FromUint64(7), FromUint64(8)) {
		t.Error("IsEqual(7, 8) = true, want false")
	}
}

func TestTagFromBytesDeterministic(t *testing.T) {
	a := TagFromBytes([]byte("safe-go"))
	b := TagFromBytes([]byte("safe-go"))
	if a != b {
		t.Errorf("TagFromBytes not deterministic: %v vs %v", a, b)
	}
	c := TagFromBytes([]byte("safe-go!"))
	if a == c {
		t.Error("TagFromBytes returned the same element for different inputs")
	}
}
