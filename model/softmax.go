package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
)

// SoftmaxModel 是多分类逻辑回归（Softmax Regression）的推理实现，权重来自离线训练。
//
// 预测原理：
// 1. 线性打分: z_k = Bias_k + sum(Weight_k,j * x_j)
// 2. Softmax 变换: P(k|x) = exp(z_k) / sum(exp(z_c))
//
// 输出每行之和为 1，可直接作为 Uncertainty/Margin/Entropy 的输入。
type SoftmaxModel struct {
	Bias    []float64  // 每个类别的偏置，长度 K
	Weights *mat.Dense // K x D 权重矩阵
}

// NewSoftmaxModel 由 K 行 D 列权重与 K 个偏置创建模型。
func NewSoftmaxModel(weights [][]float64, bias []float64) (*SoftmaxModel, error) {
	if len(weights) == 0 {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: softmax needs at least one class")
	}
	if len(bias) != len(weights) {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput,
			fmt.Sprintf("model: got %d bias terms for %d classes", len(bias), len(weights)))
	}
	w, err := core.NewPool(weights)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: weights: "+err.Error())
	}
	return &SoftmaxModel{Bias: append([]float64(nil), bias...), Weights: w}, nil
}

// LoadSoftmaxModel 从 JSON 文件加载模型：{"bias": [...], "weights": [[...], ...]}
func LoadSoftmaxModel(path string) (*SoftmaxModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Bias    []float64   `json:"bias"`
		Weights [][]float64 `json:"weights"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return NewSoftmaxModel(raw.Weights, raw.Bias)
}

func (m *SoftmaxModel) Name() string { return "softmax" }

// Classes 返回类别数
func (m *SoftmaxModel) Classes() int {
	k, _ := m.Weights.Dims()
	return k
}

func (m *SoftmaxModel) PredictProba(_ context.Context, pool core.Pool) (mat.Matrix, error) {
	if pool == nil {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: nil pool")
	}
	k, d := m.Weights.Dims()
	n, cols := pool.Dims()
	if cols != d {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput,
			fmt.Sprintf("model: pool has %d features, model expects %d", cols, d))
	}

	var z mat.Dense
	z.Mul(pool, m.Weights.T())
	row := make([]float64, k)
	for i := 0; i < n; i++ {
		mat.Row(row, i, &z)
		softmax(row, m.Bias)
		z.SetRow(i, row)
	}
	return &z, nil
}

// softmax 原地计算 softmax(row + bias)，先减去最大值避免溢出。
func softmax(row, bias []float64) {
	best := math.Inf(-1)
	for j := range row {
		row[j] += bias[j]
		if row[j] > best {
			best = row[j]
		}
	}
	var sum float64
	for j := range row {
		row[j] = math.Exp(row[j] - best)
		sum += row[j]
	}
	for j := range row {
		row[j] /= sum
	}
}
