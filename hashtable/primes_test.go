package hashtable

import "testing"

func TestNextPrime(t *testing.T) {
	cases := map[uint64]uint64{0: 2, 1: 2, 2: 2, 3: 3, 4: 5, 10: 11, 100: 101, 7919: 7919}
	for in, want := range cases {
		if got := nextPrime(in); got != want {
			t.Errorf("nextPrime(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPrevPrime(t *testing.T) {
	cases := map[uint64]uint64{2: 2, 3: 3, 4: 3, 10: 7, 100: 97}
	for in, want := range cases {
		if got := prevPrime(in); got != want {
			t.Errorf("prevPrime(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 97, 7919}
	for _, p := range primes {
		if !isPrime(p) {
			t.Errorf("isPrime(%d) = false, want true", p)
		}
	}
	composites := []uint64{0, 1, 4, 6, 8, 9, 100, 7921}
	for _, c := range composites {
		if isPrime(c) {
			t.Errorf("isPrime(%d) = true, want false", c)
		}
	}
}
