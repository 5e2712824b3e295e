package ds

// Primes returns every prime <= n via the sieve of Eratosthenes, nil when
// n < 2.
func Primes(n int) []int {
	if n < 2 {
		return nil
	}

	composite := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for multiple := p * p; 0 < multiple && multiple <= n; multiple += p {
			composite[multiple] = true
		}
	}
	return primes
}
