// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64

import "math/bits"

// Modular arithmetic on full-width 64-bit operands. A naive a * b % m wraps
// silently as soon as the product reaches 2⁶⁴, so products go through a
// 128-bit intermediate instead. Both functions require m >= 1.

// mulmod returns (a * b) mod m.
func mulmod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	// a, b < m, so the high word of the product is < m and Div64 cannot
	// panic on quotient overflow.
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powmod returns (base ^ exp) mod m by binary exponentiation: square the base
// once per bit of the exponent, multiplying it into the accumulator when the
// bit is set.
func powmod(base, exp, m uint64) uint64 {
	res := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			res = mulmod(res, base, m)
		}
		base = mulmod(base, base, m)
		exp >>= 1
	}
	return res
}
