package model

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/pkg/matio"
)

// ProbaTable 是固定概率表形式的 Estimator：第 i 行即 Pool 第 i 个实例的类别概率。
// 适用于模型在别处（例如 Python 服务离线批量）完成推理、这里只负责打分与选样的场景。
type ProbaTable struct {
	Proba *mat.Dense
}

// NewProbaTable 由二维切片创建概率表。
func NewProbaTable(rows [][]float64) (*ProbaTable, error) {
	p, err := core.NewPool(rows)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: proba table: "+err.Error())
	}
	return &ProbaTable{Proba: p}, nil
}

// LoadProbaTable 从 CSV 文件加载概率表。
func LoadProbaTable(path string) (*ProbaTable, error) {
	p, err := matio.ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("load proba table: %w", err)
	}
	return &ProbaTable{Proba: p}, nil
}

func (t *ProbaTable) Name() string { return "proba_table" }

// PredictProba 返回概率表的副本；表的行数必须与 Pool 大小一致。
func (t *ProbaTable) PredictProba(_ context.Context, pool core.Pool) (mat.Matrix, error) {
	if t.Proba == nil {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: empty proba table")
	}
	if r, _ := t.Proba.Dims(); r != core.PoolSize(pool) {
		return nil, core.ContractViolationError(core.ModuleModel, "proba table has %d rows for a pool of %d instances", r, core.PoolSize(pool))
	}
	return mat.DenseCopyOf(t.Proba), nil
}
