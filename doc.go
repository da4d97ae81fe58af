// Package alkit 是一个主动学习查询策略工具包（Active Learning Kit）。
//
// 设计要点：
// - Measure-first: 所有查询策略都由效用度量（Measure）给 Pool 中每个实例打分
// - 可组合: 线性组合（LinearCombination）与乘积（Product）把多个度量合成一个新度量
// - 配置驱动: 度量树可由 YAML/JSON 描述，通过 config.DefaultFactory 构建
package alkit

import (
	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/query"
	"github.com/rushteam/alkit/utility"
)

// 轻量 facade：便于用户直接 import "alkit" 使用核心抽象。
type (
	Pool      = core.Pool
	Estimator = core.Estimator
	Options   = core.Options
	Measure   = utility.Measure
	Strategy  = query.Strategy
)

var (
	NewLinearCombination = utility.NewLinearCombination
	NewProduct           = utility.NewProduct
)
