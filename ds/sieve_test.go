package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimesSmall(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(30))
}

func TestPrimesBounds(t *testing.T) {
	assert.Nil(t, Primes(1))
	assert.Nil(t, Primes(-5))
	assert.Equal(t, []int{2}, Primes(2))
}

func TestPrimesCount(t *testing.T) {
	assert.Len(t, Primes(100), 25)
	assert.Len(t, Primes(1000), 168)
}
