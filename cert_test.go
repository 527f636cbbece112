// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prime64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrime(t *testing.T) {
	p, ok := NewPrime(13)
	assert.True(t, ok)
	assert.Equal(t, uint64(13), p.Uint64())
	assert.Equal(t, "13", p.String())

	_, ok = NewPrime(15)
	assert.False(t, ok)
	_, ok = NewPrime(0)
	assert.False(t, ok)

	p, ok = NewPrime(MaxPrime)
	assert.True(t, ok)
	assert.Equal(t, MaxPrime, p.Uint64())
	assert.Equal(t, "18446744073709551557", p.String())
}
