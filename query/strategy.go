package query

import (
	"context"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/utility"
)

// Strategy 是查询策略：用一个效用度量给 Pool 打分，再选出分数最高的 N 个实例请求标注。
//
// 使用示例：
//
//	lc, _ := utility.NewLinearCombination(
//	    []utility.Measure{utility.Uncertainty{}, utility.Margin{}},
//	    []float64{1.0, 1.0},
//	)
//	s := &query.Strategy{Name: "uncertainty+margin", Measure: lc, N: 5}
//	idx, instances, err := s.Query(ctx, estimator, pool)
//
// Rand 非 nil 时同分实例随机打散；*rand.Rand 不是并发安全的，此时 Strategy 不可并发调用。
type Strategy struct {
	Name    string
	Measure utility.Measure
	// N 每次查询的实例数，<= 0 时视为 1
	N       int
	Options core.Options
	Rand    *rand.Rand
}

// Scores 返回 Pool 中每个实例的效用分数。
func (s *Strategy) Scores(ctx context.Context, est core.Estimator, pool core.Pool) ([]float64, error) {
	if s.Measure == nil {
		return nil, core.ConfigurationError(core.ModuleQuery, "strategy %s has no measure", s.Name)
	}
	scores, err := s.Measure.Score(ctx, est, pool, s.Options)
	if err != nil {
		return nil, err
	}
	if len(scores) != core.PoolSize(pool) {
		return nil, core.ContractViolationError(core.ModuleQuery,
			"measure %s returned %d scores for a pool of %d instances", s.Measure.Name(), len(scores), core.PoolSize(pool))
	}
	return scores, nil
}

// Query 返回被选中实例的下标以及对应的实例行（新分配的矩阵）。
// Pool 为空时返回 (nil, nil, nil)。
func (s *Strategy) Query(ctx context.Context, est core.Estimator, pool core.Pool) ([]int, *mat.Dense, error) {
	scores, err := s.Scores(ctx, est, pool)
	if err != nil {
		return nil, nil, err
	}
	if len(scores) == 0 {
		return nil, nil, nil
	}

	n := s.N
	if n <= 0 {
		n = 1
	}
	var idx []int
	if s.Rand != nil {
		idx = ShuffledArgmax(s.Rand, scores, n)
	} else {
		idx = MultiArgmax(scores, n)
	}
	return idx, Rows(pool, idx), nil
}

// Rows 按下标取出 Pool 的若干行，返回新分配的矩阵；idx 为空时返回 nil。
func Rows(pool core.Pool, idx []int) *mat.Dense {
	if len(idx) == 0 {
		return nil
	}
	_, d := pool.Dims()
	out := mat.NewDense(len(idx), d, nil)
	row := make([]float64, d)
	for i, k := range idx {
		mat.Row(row, k, pool)
		out.SetRow(i, row)
	}
	return out
}
