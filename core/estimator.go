package core

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pool 是待查询的未标注实例集合：每行一个实例，每列一个特征。
// 打分期间 Pool 只读，任何度量/组合器都不得修改它。
type Pool = mat.Matrix

// Estimator 是打分链路依赖的模型能力抽象：给定 Pool，输出每个实例的类别概率分布。
//
// 设计原则：
//   - 定义在领域层（core），具体实现（model.SoftmaxModel、model.ProbaTable 或外部模型）由调用方提供
//   - 模型由调用方训练和持有，度量与组合器只读调用，从不修改
//
// 返回矩阵形状为 n_instances x n_classes，行顺序与 Pool 一致。
type Estimator interface {
	PredictProba(ctx context.Context, pool Pool) (mat.Matrix, error)
}

// EstimatorFunc 把普通函数适配为 Estimator。
type EstimatorFunc func(ctx context.Context, pool Pool) (mat.Matrix, error)

func (f EstimatorFunc) PredictProba(ctx context.Context, pool Pool) (mat.Matrix, error) {
	return f(ctx, pool)
}

// PoolSize 返回 Pool 中实例个数；nil Pool 视为空。
func PoolSize(pool Pool) int {
	if pool == nil {
		return 0
	}
	r, _ := pool.Dims()
	return r
}

// NewPool 由二维切片构建 Pool，要求每行特征维度一致。
func NewPool(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, NewDomainError(ModuleQuery, ErrorCodeInvalidInput, "pool: no instances")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, NewDomainError(ModuleQuery, ErrorCodeInvalidInput, "pool: instances have no features")
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, NewDomainError(ModuleQuery, ErrorCodeInvalidInput,
				fmt.Sprintf("pool: instance %d has %d features, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// PredictProba 调用 Estimator 并校验返回行数与 Pool 大小一致。
func PredictProba(ctx context.Context, est Estimator, pool Pool) (mat.Matrix, error) {
	if est == nil {
		return nil, NewDomainError(ModuleUtility, ErrorCodeInvalidInput, "utility: nil estimator")
	}
	proba, err := est.PredictProba(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("predict proba: %w", err)
	}
	if proba == nil {
		return nil, ContractViolationError(ModuleUtility, "estimator returned no probabilities")
	}
	if r, _ := proba.Dims(); r != PoolSize(pool) {
		return nil, ContractViolationError(ModuleUtility, "estimator returned %d rows for a pool of %d instances", r, PoolSize(pool))
	}
	return proba, nil
}
