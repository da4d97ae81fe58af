package core

import (
	"context"
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewPool(t *testing.T) {
	pool, err := NewPool([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}
	if PoolSize(pool) != 3 {
		t.Errorf("PoolSize = %d, want 3", PoolSize(pool))
	}
	if pool.At(2, 1) != 6 {
		t.Errorf("At(2,1) = %v, want 6", pool.At(2, 1))
	}

	if _, err := NewPool([][]float64{{1, 2}, {3}}); !IsInvalidInput(err) {
		t.Errorf("ragged rows: err = %v, want INVALID_INPUT", err)
	}
	if _, err := NewPool(nil); !IsInvalidInput(err) {
		t.Errorf("empty pool: err = %v, want INVALID_INPUT", err)
	}
	if PoolSize(nil) != 0 {
		t.Errorf("PoolSize(nil) = %d, want 0", PoolSize(nil))
	}
}

func TestPredictProba(t *testing.T) {
	pool := mat.NewDense(3, 1, []float64{0, 1, 2})
	ctx := context.Background()

	ok := EstimatorFunc(func(_ context.Context, p Pool) (mat.Matrix, error) {
		return mat.NewDense(PoolSize(p), 2, nil), nil
	})
	if _, err := PredictProba(ctx, ok, pool); err != nil {
		t.Errorf("PredictProba() error = %v", err)
	}

	short := EstimatorFunc(func(_ context.Context, _ Pool) (mat.Matrix, error) {
		return mat.NewDense(2, 2, nil), nil
	})
	if _, err := PredictProba(ctx, short, pool); !IsContractViolation(err) {
		t.Errorf("short proba: err = %v, want CONTRACT_VIOLATION", err)
	}

	boom := errors.New("model offline")
	failing := EstimatorFunc(func(_ context.Context, _ Pool) (mat.Matrix, error) {
		return nil, boom
	})
	if _, err := PredictProba(ctx, failing, pool); !errors.Is(err, boom) {
		t.Errorf("failing estimator: err = %v, want wrapped %v", err, boom)
	}

	if _, err := PredictProba(ctx, nil, pool); !IsInvalidInput(err) {
		t.Errorf("nil estimator: err = %v, want INVALID_INPUT", err)
	}
}

func TestNewOptions(t *testing.T) {
	o := NewOptions(WithEntropyBase(2), WithProbaFloor(1e-12))
	if o.EntropyBase != 2 || o.ProbaFloor != 1e-12 {
		t.Errorf("NewOptions() = %+v", o)
	}
	if d := NewOptions(); d != (Options{}) {
		t.Errorf("default options = %+v, want zero value", d)
	}
}
