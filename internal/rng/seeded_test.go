package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		n := s1.Intn(52)
		a.Equal(n, s2.Intn(52))
		a.True(n >= 0 && n < 52)
	}
}

func TestNew(t *testing.T) {
	_, ok := New(0).(Crypto)
	assert.True(t, ok)

	s, ok := New(7).(*Seeded)
	assert.True(t, ok)
	assert.Equal(t, int64(7), s.Seed())
}
