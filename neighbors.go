// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64

// Searches for the nearest prime around a starting point. Candidates are
// enumerated over the odd numbers only, and obviously composite ones are
// skipped with a few cheap divisions before paying for the full test.

func hasFactor(n, p uint64) bool {
	return n != p && n%p == 0
}

func hasEasyFactors(n uint64) bool {
	return hasFactor(n, 3) || hasFactor(n, 5) || hasFactor(n, 7) || hasFactor(n, 11) || hasFactor(n, 13)
}

// NextPrime returns the smallest prime greater than or equal to n. It reports
// ok == false when there is none, that is when n > MaxPrime.
func NextPrime(n uint64) (p uint64, ok bool) {
	if n <= 2 {
		return 2, true
	}
	if n > MaxPrime {
		return 0, false
	}
	if n%2 == 0 {
		n++
	}
	// n is odd and n <= MaxPrime, which is itself an odd prime, so the
	// walk stops before it can overflow.
	for {
		if !hasEasyFactors(n) && IsPrime(n) {
			return n, true
		}
		n += 2
	}
}

// PrevPrime returns the largest prime less than or equal to n. It reports
// ok == false when there is none, that is when n < 2.
func PrevPrime(n uint64) (p uint64, ok bool) {
	if n < 2 {
		return 0, false
	}
	if n == 2 {
		return 2, true
	}
	if n%2 == 0 {
		n--
	}
	// n is odd and >= 3; the walk stops at 3 at the latest.
	for {
		if !hasEasyFactors(n) && IsPrime(n) {
			return n, true
		}
		n -= 2
	}
}
