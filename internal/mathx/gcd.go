package mathx

// GCD 는 절댓값에 대한 유클리드 최대공약수다.
func GCD(a, b int64) int64 {
	a = abs(a)
	b = abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM 는 쌍 단위 최소공배수다. 0 이 끼면 0 으로 정의한다.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a) / GCD(a, b) * abs(b)
}

// ReduceGCD 는 왼쪽부터 쌍 단위로 GCD 를 접는다. 단일 원소는 |a| 다.
func ReduceGCD(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	result := abs(values[0])
	for _, value := range values[1:] {
		result = GCD(result, value)
	}
	return result
}

// ReduceLCM 는 왼쪽부터 쌍 단위로 LCM 를 접는다. 단일 원소는 |a| 다.
func ReduceLCM(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	result := abs(values[0])
	for _, value := range values[1:] {
		result = LCM(result, value)
	}
	return result
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
