// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package prime64 provides a fast, deterministic primality test for unsigned
64-bit integers.

The Miller-Rabin primality test is usually described as probabilistic: a round
of the test either proves its input composite or declares it "probably prime",
and the error probability only shrinks as more random bases are tried. It has
been proved, however, that certain small, fixed sets of bases leave no
exception below known bounds. This package relies on such vetted sets, the
largest of which is valid far beyond 2⁶⁴, so IsPrime gives an exact answer for
every uint64 with at most twelve rounds of the test.

Basics

The main entry point is IsPrime. Values with a small prime factor are decided
by trial division against a short table; everything else goes through the
witness rounds, using cheaper witness sets for values below the published
thresholds.

	prime64.IsPrime(5)                // true
	prime64.IsPrime(6)                // false
	prime64.IsPrime(prime64.MaxPrime) // true, the largest 64-bit prime

NextPrime and PrevPrime search for the nearest prime at or above (respectively
at or below) a starting point. The Prime type wraps a value together with a
primality certificate: a Prime can only be obtained through NewPrime, so
functions taking a Prime argument need not re-check it.

Determinism and concurrency

All functions in this package are pure: they keep no state between calls,
perform no allocation on the IsPrime path, and are safe for concurrent use
without synchronization. Every call terminates in O(log³ n) time. The witness
tables are constants of the package; they must not be altered without checking
the corresponding bounds in the literature (see Jaeschke, "On strong
pseudoprimes to several bases", Math. Comp. 61, 1993, and the records
collected at https://miller-rabin.appspot.com).
*/
package prime64
