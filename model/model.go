package model

import "github.com/rushteam/alkit/core"

// Model 是带名称的 Estimator，便于在 CLI/日志中标识模型来源。
// 本包只提供推理适配（固定概率表、预训练线性模型），不包含训练逻辑。
type Model interface {
	core.Estimator
	Name() string
}

var (
	_ Model = (*SoftmaxModel)(nil)
	_ Model = (*ProbaTable)(nil)
)
