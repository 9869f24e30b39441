package mathx

// Fibonacci 는 0,1,1,2,... 수열의 첫 n 개 항을 반환한다.
// n=0 은 빈 수열, n=1 은 [0] 이다. n 은 92 이하여야 한다.
func Fibonacci(n int) []int64 {
	terms := make([]int64, 0, n)
	prev, curr := int64(0), int64(1)
	for i := 0; i < n; i++ {
		terms = append(terms, prev)
		prev, curr = curr, prev+curr
	}
	return terms
}
