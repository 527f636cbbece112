// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64

import "strconv"

// A Prime is a uint64 together with a primality certificate. The only way to
// obtain one is through NewPrime, which runs IsPrime on the candidate, so
// code receiving a Prime never needs to re-check it. The zero value carries
// no certificate and should not be used.
type Prime struct {
	n uint64
}

// NewPrime certifies n. It reports ok == false when n is composite, in which
// case the returned Prime is the zero value.
func NewPrime(n uint64) (p Prime, ok bool) {
	if !IsPrime(n) {
		return Prime{}, false
	}
	return Prime{n: n}, true
}

// Uint64 returns the certified value.
func (p Prime) Uint64() uint64 {
	return p.n
}

func (p Prime) String() string {
	return strconv.FormatUint(p.n, 10)
}
