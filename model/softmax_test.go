package model

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
)

func TestSoftmaxModel_PredictProba(t *testing.T) {
	m, err := NewSoftmaxModel([][]float64{{1, 0}, {0, 1}, {0, 0}}, []float64{0, 0, 0})
	if err != nil {
		t.Fatalf("NewSoftmaxModel() error = %v", err)
	}
	if m.Classes() != 3 {
		t.Errorf("Classes() = %d, want 3", m.Classes())
	}
	pool := mat.NewDense(3, 2, []float64{
		0, 0,
		math.Log(2), 0,
		1000, 0,
	})
	proba, err := m.PredictProba(context.Background(), pool)
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}

	want := [][]float64{
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.5, 0.25, 0.25},
		{1, 0, 0},
	}
	for i, row := range want {
		var sum float64
		for j, w := range row {
			got := proba.At(i, j)
			sum += got
			if math.Abs(got-w) > 1e-12 {
				t.Errorf("proba[%d][%d] = %v, want %v", i, j, got, w)
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("row %d sums to %v", i, sum)
		}
	}
}

func TestSoftmaxModel_Errors(t *testing.T) {
	if _, err := NewSoftmaxModel(nil, nil); !core.IsInvalidInput(err) {
		t.Errorf("no classes: err = %v, want INVALID_INPUT", err)
	}
	if _, err := NewSoftmaxModel([][]float64{{1}, {2}}, []float64{0}); !core.IsInvalidInput(err) {
		t.Errorf("bias mismatch: err = %v, want INVALID_INPUT", err)
	}
	if _, err := NewSoftmaxModel([][]float64{{1, 2}, {2}}, []float64{0, 0}); !core.IsInvalidInput(err) {
		t.Errorf("ragged weights: err = %v, want INVALID_INPUT", err)
	}

	m, _ := NewSoftmaxModel([][]float64{{1, 0}, {0, 1}}, []float64{0, 0})
	if _, err := m.PredictProba(context.Background(), mat.NewDense(2, 3, nil)); !core.IsInvalidInput(err) {
		t.Errorf("feature mismatch: err = %v, want INVALID_INPUT", err)
	}
}

func TestLoadSoftmaxModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"bias": [0.5, -0.5], "weights": [[1, 2], [3, 4]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadSoftmaxModel(path)
	if err != nil {
		t.Fatalf("LoadSoftmaxModel() error = %v", err)
	}
	if m.Name() != "softmax" || m.Classes() != 2 || m.Weights.At(1, 0) != 3 || m.Bias[1] != -0.5 {
		t.Errorf("loaded model = %+v", m)
	}
}
