// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64_test

import (
	"fmt"

	"github.com/dalzilio/prime64"
)

// This example shows the basic usage of the package: an exact primality
// answer for any uint64, with no rounds to configure.
func Example_basic() {
	fmt.Println(prime64.IsPrime(5))
	fmt.Println(prime64.IsPrime(6))
	// 2⁶⁴ - 1 = 3 × 5 × 17 × 257 × 641 × 65537 × 6700417
	fmt.Println(prime64.IsPrime(1<<64 - 1))
	// Output:
	// true
	// false
	// false
}

func ExampleNextPrime() {
	// the first prime at or after 10⁶
	p, _ := prime64.NextPrime(1000000)
	fmt.Println(p)
	// there is no prime above MaxPrime
	_, ok := prime64.NextPrime(prime64.MaxPrime + 1)
	fmt.Println(ok)
	// Output:
	// 1000003
	// false
}

func ExampleNewPrime() {
	if p, ok := prime64.NewPrime(104729); ok {
		fmt.Printf("certified: %s\n", p)
	}
	if _, ok := prime64.NewPrime(104730); !ok {
		fmt.Println("composite")
	}
	// Output:
	// certified: 104729
	// composite
}
