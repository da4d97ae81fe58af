package utility

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/pkg/dsl"
)

// Expr 是由 CEL 表达式定义的自定义度量，对每个实例单独求值。
// 表达式在构造时编译，语法或类型错误在构造阶段就以 INVALID_CONFIG 返回。
// 可用变量见 dsl.Program。
type Expr struct {
	name string
	prg  *dsl.Program
}

// NewExpr 编译表达式并创建度量；name 为空时使用 "expr"。
func NewExpr(name, expr string) (*Expr, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, core.ConfigurationError(core.ModuleUtility, "expr %q: %v", expr, err)
	}
	if name == "" {
		name = "expr"
	}
	return &Expr{name: name, prg: prg}, nil
}

func (e *Expr) Name() string { return e.name }

// Expression 返回原始表达式
func (e *Expr) Expression() string { return e.prg.String() }

func (e *Expr) Score(ctx context.Context, est core.Estimator, pool core.Pool, opts core.Options) ([]float64, error) {
	if opts.EntropyBase == 1 {
		return nil, core.NewDomainError(core.ModuleUtility, core.ErrorCodeInvalidInput, "utility: entropy base must not be 1")
	}
	proba, err := core.PredictProba(ctx, est, pool)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return []float64{}, nil
	}
	n, c := proba.Dims()
	_, d := pool.Dims()

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		row := mat.Row(make([]float64, c), i, proba)
		in := dsl.Instance{
			Index:       i,
			Proba:       row,
			X:           mat.Row(make([]float64, d), i, pool),
			Uncertainty: rowUncertainty(row),
			Margin:      rowMargin(row),
			Entropy:     rowEntropy(row, opts),
			MaxProba:    rowMax(row),
		}
		if out[i], err = e.prg.Eval(in); err != nil {
			return nil, fmt.Errorf("%s: instance %d: %w", e.name, i, err)
		}
	}
	return out, nil
}
