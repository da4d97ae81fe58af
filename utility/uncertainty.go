package utility

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
)

// Uncertainty 是分类不确定度：1 - max_c p(c|x)。
// 模型对实例越没把握，分数越高。
type Uncertainty struct{}

func (Uncertainty) Name() string { return "uncertainty" }

func (u Uncertainty) Score(ctx context.Context, est core.Estimator, pool core.Pool, _ core.Options) ([]float64, error) {
	return scoreRows(ctx, est, pool, rowUncertainty)
}

// Margin 是分类间隔：概率最高的两个类别之差。
// 只有一个类别时间隔为 0。注意间隔越小越不确定，与 Uncertainty 方向相反。
type Margin struct{}

func (Margin) Name() string { return "margin" }

func (m Margin) Score(ctx context.Context, est core.Estimator, pool core.Pool, _ core.Options) ([]float64, error) {
	return scoreRows(ctx, est, pool, rowMargin)
}

// Entropy 是预测分布的熵：-Σ p log p，对数底由 Options.EntropyBase 决定。
type Entropy struct{}

func (Entropy) Name() string { return "entropy" }

func (e Entropy) Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error) {
	if opts.EntropyBase == 1 {
		return nil, core.NewDomainError(core.ModuleUtility, core.ErrorCodeInvalidInput, "utility: entropy base must not be 1")
	}
	return scoreRows(ctx, est, pool, func(row []float64) float64 {
		return rowEntropy(row, opts)
	})
}

// scoreRows 调用一次 PredictProba，并对每一行概率分布应用 fn。
func scoreRows(ctx context.Context, est core.Estimator, pool core.Pool, fn func(row []float64) float64) ([]float64, error) {
	proba, err := core.PredictProba(ctx, est, pool)
	if err != nil {
		return nil, err
	}
	n, c := proba.Dims()
	out := make([]float64, n)
	row := make([]float64, c)
	for i := 0; i < n; i++ {
		mat.Row(row, i, proba)
		out[i] = fn(row)
	}
	return out, nil
}

func rowMax(row []float64) float64 {
	if len(row) == 0 {
		return 0
	}
	best := row[0]
	for _, p := range row[1:] {
		if p > best {
			best = p
		}
	}
	return best
}

func rowUncertainty(row []float64) float64 {
	return 1 - rowMax(row)
}

func rowMargin(row []float64) float64 {
	if len(row) < 2 {
		return 0
	}
	first, second := math.Inf(-1), math.Inf(-1)
	for _, p := range row {
		switch {
		case p > first:
			first, second = p, first
		case p > second:
			second = p
		}
	}
	return first - second
}

func rowEntropy(row []float64, opts core.Options) float64 {
	var h float64
	for _, p := range row {
		if p <= 0 && opts.ProbaFloor <= 0 {
			continue
		}
		h -= p * math.Log(math.Max(p, opts.ProbaFloor))
	}
	if opts.EntropyBase > 0 {
		h /= math.Log(opts.EntropyBase)
	}
	return h
}
