package query

import (
	"math"
	"math/rand/v2"
	"sort"
)

// MultiArgmax 返回分数最高的 n 个实例下标，按分数降序；分数相同时下标小的在前。
// n <= 0 或 n > len(scores) 时返回全部下标。NaN 视为最低分。
func MultiArgmax(scores []float64, n int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	return topN(scores, idx, n)
}

// ShuffledArgmax 与 MultiArgmax 相同，但分数相同的实例按 rng 随机排列。
// rng 为 nil 时退化为 MultiArgmax。
func ShuffledArgmax(rng *rand.Rand, scores []float64, n int) []int {
	if rng == nil {
		return MultiArgmax(scores, n)
	}
	idx := rng.Perm(len(scores))
	return topN(scores, idx, n)
}

func topN(scores []float64, idx []int, n int) []int {
	sort.SliceStable(idx, func(i, j int) bool {
		return greater(scores[idx[i]], scores[idx[j]])
	})
	if n > 0 && n < len(idx) {
		idx = idx[:n]
	}
	return idx
}

func greater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}
