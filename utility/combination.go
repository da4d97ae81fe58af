package utility

import (
	"context"
	"fmt"
	"math"

	"github.com/rushteam/alkit/core"
)

// LinearCombination 把多个度量按权重线性组合：Σ wi * mi(est, pool)。
//
// 组合器本身无状态，构造后可被多次、并发调用（前提是各子度量可重入）。
// 每次调用都返回新分配的切片，不与子度量的输出共享内存。
//
// 示例：
//
//	// 1.0*uncertainty + 1.0*margin
//	lc, err := utility.NewLinearCombination(
//	    []utility.Measure{utility.Uncertainty{}, utility.Margin{}},
//	    []float64{1.0, 1.0},
//	)
type LinearCombination struct {
	measures []Measure
	weights  []float64
}

// NewLinearCombination 创建线性组合度量。measures 与 weights 长度必须一致且至少一个，
// 否则在构造时返回 INVALID_CONFIG 错误。权重可以为负或 0，但必须是有限值。
func NewLinearCombination(measures []Measure, weights []float64) (*LinearCombination, error) {
	if err := validateSpec("linear_combination", "weights", measures, weights); err != nil {
		return nil, err
	}
	return &LinearCombination{
		measures: append([]Measure(nil), measures...),
		weights:  append([]float64(nil), weights...),
	}, nil
}

func (c *LinearCombination) Name() string { return "linear_combination" }

// Measures 返回子度量（副本）。
func (c *LinearCombination) Measures() []Measure { return append([]Measure(nil), c.measures...) }

// Weights 返回权重（副本）。
func (c *LinearCombination) Weights() []float64 { return append([]float64(nil), c.weights...) }

func (c *LinearCombination) Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error) {
	n := core.PoolSize(pool)
	out := make([]float64, n)
	for i, m := range c.measures {
		scores, err := scoreChecked(ctx, c, m, est, pool, opts, n)
		if err != nil {
			return nil, err
		}
		w := c.weights[i]
		for j, s := range scores {
			out[j] += w * s
		}
	}
	return out, nil
}

// Product 把多个度量按指数相乘：Π mi(est, pool) ^ ei。
//
// 数值约定：
//   - 0^0 = 1（与 math.Pow 一致），指数全为 0 时结果恒为 1
//   - 负底数配非整数指数在实数域无定义，返回 NUMERIC_DOMAIN 错误而不是静默截断
//   - 负底数配整数指数按 math.Pow 计算（例如 (-2)^3 = -8）
//
// 指数为 0 的子度量仍然会被调用并校验长度。
type Product struct {
	measures  []Measure
	exponents []float64
}

// NewProduct 创建乘积度量，构造时校验规则同 NewLinearCombination。
func NewProduct(measures []Measure, exponents []float64) (*Product, error) {
	if err := validateSpec("product", "exponents", measures, exponents); err != nil {
		return nil, err
	}
	return &Product{
		measures:  append([]Measure(nil), measures...),
		exponents: append([]float64(nil), exponents...),
	}, nil
}

func (p *Product) Name() string { return "product" }

// Measures 返回子度量（副本）。
func (p *Product) Measures() []Measure { return append([]Measure(nil), p.measures...) }

// Exponents 返回指数（副本）。
func (p *Product) Exponents() []float64 { return append([]float64(nil), p.exponents...) }

func (p *Product) Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error) {
	n := core.PoolSize(pool)
	out := make([]float64, n)
	for j := range out {
		out[j] = 1
	}
	for i, m := range p.measures {
		scores, err := scoreChecked(ctx, p, m, est, pool, opts, n)
		if err != nil {
			return nil, err
		}
		e := p.exponents[i]
		integral := e == math.Trunc(e)
		for j, s := range scores {
			if s < 0 && !integral {
				return nil, core.NumericDomainError(core.ModuleUtility,
					"product: measure %s scored %g for instance %d, cannot raise a negative base to exponent %g", m.Name(), s, j, e)
			}
			out[j] *= math.Pow(s, e)
		}
	}
	return out, nil
}

func scoreChecked(ctx context.Context, parent, m Measure, est core.Estimator, pool core.Pool, opts core.Options, n int) ([]float64, error) {
	scores, err := m.Score(ctx, est, pool, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: measure %s: %w", parent.Name(), m.Name(), err)
	}
	if err := checkScores(m, scores, n); err != nil {
		return nil, err
	}
	return scores, nil
}

func validateSpec(kind, paramName string, measures []Measure, params []float64) error {
	if len(measures) == 0 {
		return core.ConfigurationError(core.ModuleUtility, "%s: at least one measure is required", kind)
	}
	if len(measures) != len(params) {
		return core.ConfigurationError(core.ModuleUtility, "%s: got %d measures but %d %s", kind, len(measures), len(params), paramName)
	}
	for i, m := range measures {
		if m == nil {
			return core.ConfigurationError(core.ModuleUtility, "%s: measure %d is nil", kind, i)
		}
		if math.IsNaN(params[i]) || math.IsInf(params[i], 0) {
			return core.ConfigurationError(core.ModuleUtility, "%s: %s[%d] is not finite: %g", kind, paramName, i, params[i])
		}
	}
	return nil
}
