package mines

func iif[T any](c bool, t T, f T) T {
	if c {
		return t
	} else {
		return f
	}
}

func repeat[T any](v T, n int) (vs []T) {
	for range n {
		vs = append(vs, v)
	}
	return
}

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}
