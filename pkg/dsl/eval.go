package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义单个实例可访问的变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("proba", cel.ListType(cel.DoubleType)),
		cel.Variable("x", cel.ListType(cel.DoubleType)),
		cel.Variable("index", cel.IntType),
		cel.Variable("uncertainty", cel.DoubleType),
		cel.Variable("margin", cel.DoubleType),
		cel.Variable("entropy", cel.DoubleType),
		cel.Variable("max_proba", cel.DoubleType),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Instance 是表达式求值时单个 Pool 实例的输入。
type Instance struct {
	Index       int
	Proba       []float64 // 模型输出的类别概率
	X           []float64 // 特征行
	Uncertainty float64
	Margin      float64
	Entropy     float64
	MaxProba    float64
}

// Program 是编译后的打分表达式，使用 CEL (Common Expression Language) 实现。
// 编译只做一次，Eval 可并发调用。
//
// 可用变量：
//   - proba: list<double>，例如 proba[0]、size(proba)
//   - x: list<double>，实例特征
//   - index: int，实例在 Pool 中的下标
//   - uncertainty / margin / entropy / max_proba: double
//
// 示例：
//   - `uncertainty - 0.5 * margin`
//   - `proba[0] > 0.5 ? 1.0 - proba[0] : proba[0]`
//   - `entropy * (x[0] > 0.0 ? 2.0 : 1.0)`
//
// 注意：CEL 不做 int/double 隐式转换，`margin * 2` 会编译失败，应写作 `margin * 2.0`。
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译表达式，表达式必须返回 double 或 int。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	out := ast.OutputType()
	if !out.IsExactType(cel.DoubleType) && !out.IsExactType(cel.IntType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression must return double or int, got %s", out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	return &Program{expr: expr, prg: prg}, nil
}

// String 返回原始表达式
func (p *Program) String() string { return p.expr }

// Eval 对单个实例求值。
func (p *Program) Eval(in Instance) (float64, error) {
	out, _, err := p.prg.Eval(map[string]any{
		"proba":       in.Proba,
		"x":           in.X,
		"index":       int64(in.Index),
		"uncertainty": in.Uncertainty,
		"margin":      in.Margin,
		"entropy":     in.Entropy,
		"max_proba":   in.MaxProba,
	})
	if err != nil {
		return 0, fmt.Errorf("eval error: %v", err)
	}

	switch v := out.Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expression must return double or int, got %T", out.Value())
	}
}
