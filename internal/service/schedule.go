package service

// Triples enumerates every (i, j, k) with i <= j <= k < n in ascending order,
// including triples in which a slot meets copies of itself.
func Triples(n int) [][3]int {
	out := make([][3]int, 0, TripleCount(n))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := j; k < n; k++ {
				out = append(out, [3]int{i, j, k})
			}
		}
	}
	return out
}

// TripleCount is C(n+2, 3), the number of multisets of size three over n slots.
func TripleCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) * (n + 2) / 6
}
