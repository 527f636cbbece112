// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64

import "math/bits"

// MaxPrime is the largest prime that fits in a uint64, equal to 2⁶⁴ - 59.
//
// See https://primes.utm.edu/lists/2small/0bit.html for verification.
const MaxPrime uint64 = 18446744073709551557

// smallPrimes is the trial-division table used to filter the input before
// running any witness round. Its length only affects speed, not correctness:
// a longer table rejects more composites up front but costs more divisions on
// every call.
var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Witness sets proven sufficient for a deterministic answer below the paired
// bound. The first three are due to Pomerance, Selfridge & Wagstaff and
// Jaeschke; the 12-prime set is exact up to 3.3 × 10²⁴ (Sorenson & Webster),
// which covers the whole uint64 range with room to spare. Do not modify a set
// or a bound without re-checking it against the published records.
const (
	bound1 = 2047
	bound2 = 1373653
	bound3 = 4759123141
)

var (
	witnesses1 = []uint64{2}
	witnesses2 = []uint64{2, 3}
	witnesses3 = []uint64{2, 7, 61}
	witnessesU = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}
)

// witnesses selects the cheapest witness set that is still exact for n.
// Substituting witnessesU everywhere would be just as correct, only slower
// for small inputs.
func witnesses(n uint64) []uint64 {
	switch {
	case n < bound1:
		return witnesses1
	case n < bound2:
		return witnesses2
	case n < bound3:
		return witnesses3
	default:
		return witnessesU
	}
}

// IsPrime reports whether n is prime. The answer is exact over the whole
// uint64 range: this is a Miller-Rabin test driven by fixed witness sets that
// are proven to leave no composite undetected below 2⁶⁴, not a probabilistic
// test with an error bound.
func IsPrime(n uint64) bool {
	if isPrime, known := smallFactor(n); known {
		return isPrime
	}
	return millerRabin(n)
}

// smallFactor decides n by trial division against smallPrimes. When it
// returns known == false the input is odd, greater than 37, and coprime with
// every table entry; only then is the witness test needed.
func smallFactor(n uint64) (isPrime, known bool) {
	if n < 2 {
		return false, true
	}
	for _, p := range smallPrimes {
		if n == p {
			return true, true
		}
		if n%p == 0 {
			return false, true
		}
	}
	return false, false
}

// millerRabin runs the witness rounds for an odd n not decided by the
// prefilter. It decomposes n-1 = d·2^s once and reuses the pair for every
// base.
func millerRabin(n uint64) bool {
	s := bits.TrailingZeros64(n - 1)
	d := (n - 1) >> uint(s)
	for _, a := range witnesses(n) {
		if a >= n {
			continue
		}
		if !strongProbablePrime(n, a, d, s) {
			return false
		}
	}
	return true
}

// strongProbablePrime reports whether n is a strong probable prime to base a,
// where n-1 = d·2^s with d odd. A false result proves n composite; a true
// result is inconclusive for a single base.
func strongProbablePrime(n, a, d uint64, s int) bool {
	x := powmod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < s; i++ {
		x = mulmod(x, x, n)
		if x == n-1 {
			return true
		}
		if x == 1 {
			// a nontrivial square root of 1 mod n
			return false
		}
	}
	return false
}
