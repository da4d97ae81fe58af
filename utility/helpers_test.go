package utility

import (
	"context"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
)

// fixedMeasure 返回预先给定的分数，且直接返回内部切片，用于检查组合器不与输入共享内存。
type fixedMeasure struct {
	name   string
	scores []float64
	calls  int
}

func (m *fixedMeasure) Name() string { return m.name }

func (m *fixedMeasure) Score(_ context.Context, _ core.Estimator, _ core.Pool, _ core.Options) ([]float64, error) {
	m.calls++
	return m.scores, nil
}

func fixed(name string, scores ...float64) *fixedMeasure {
	return &fixedMeasure{name: name, scores: scores}
}

func testPool(n int) *mat.Dense {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return mat.NewDense(n, 1, data)
}

func probaEstimator(rows ...[]float64) core.Estimator {
	return core.EstimatorFunc(func(_ context.Context, _ core.Pool) (mat.Matrix, error) {
		p, err := core.NewPool(rows)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

func assertClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
