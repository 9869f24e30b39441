package mathx

// IsPrime 는 소수 여부를 판별한다. 짝수는 2 를 제외하고 즉시 탈락한다.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// FilterPrimes 는 입력 순서를 유지한 채 소수만 남긴다.
func FilterPrimes(values []int64) []int64 {
	primes := make([]int64, 0, len(values))
	for _, value := range values {
		if IsPrime(value) {
			primes = append(primes, value)
		}
	}
	return primes
}
