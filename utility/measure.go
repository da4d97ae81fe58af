package utility

import (
	"context"

	"github.com/rushteam/alkit/core"
)

// Measure 是效用度量的统一接口：给定已训练的 Estimator 与 Pool，为每个实例打一个分数，
// 分数越高表示越值得下一步标注。
//
// 契约：
//   - 返回切片长度必须等于 core.PoolSize(pool)，顺序与 Pool 行顺序一致
//   - 不修改 est 与 pool；相同输入必须得到相同输出
//   - 可重入：组合器可能在多处复用同一个 Measure
//
// 内置实现：Uncertainty、Margin、Entropy、Expr，以及组合器 LinearCombination、Product。
type Measure interface {
	Name() string
	Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error)
}

// MeasureFunc 把普通函数适配为 Measure，名称固定为 "func"，需要自定义名称时配合 Named 使用。
type MeasureFunc func(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error)

func (f MeasureFunc) Name() string { return "func" }

func (f MeasureFunc) Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error) {
	return f(ctx, est, pool, opts)
}

type named struct {
	Measure
	name string
}

func (n *named) Name() string { return n.name }

// Named 为度量指定一个名称（用于错误信息与 CLI 输出）。
func Named(name string, m Measure) Measure {
	return &named{Measure: m, name: name}
}

// checkScores 校验度量输出长度与 Pool 大小一致；不一致属于契约违反，不做截断或补齐。
func checkScores(m Measure, scores []float64, n int) error {
	if len(scores) != n {
		return core.ContractViolationError(core.ModuleUtility,
			"measure %s returned %d scores for a pool of %d instances", m.Name(), len(scores), n)
	}
	return nil
}
