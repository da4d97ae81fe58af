package config

import (
	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/query"
	"github.com/rushteam/alkit/utility"
)

// DefaultFactory 返回基于当前注册表构建的 MeasureFactory，包含所有通过 Register 注册的度量类型。
func DefaultFactory() *utility.MeasureFactory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := utility.NewMeasureFactory()
	for typeName, builder := range defaultBuilders {
		f.Register(typeName, builder)
	}
	return f
}

// ValidateConfig 校验策略配置中（含嵌套组合器内）所有度量类型均已注册；
// 若有未支持类型则返回包含已支持列表的 INVALID_CONFIG 错误。只检查类型，不构建度量。
func ValidateConfig(cfg *query.Config) error {
	if cfg == nil {
		return nil
	}
	return validateMeasure(cfg.Strategy.Measure)
}

func validateMeasure(mc utility.MeasureConfig) error {
	if mc.Type == "" {
		return core.ConfigurationError(core.ModuleConfig, "measure has no type")
	}
	if !registered(mc.Type) {
		return core.ConfigurationError(core.ModuleConfig, "unsupported measure type %q (supported: %v)", mc.Type, SupportedTypes())
	}
	children, ok := mc.Config["measures"].([]any)
	if !ok {
		return nil
	}
	for _, raw := range children {
		child, err := utility.ParseMeasureConfig(raw)
		if err != nil {
			return core.ConfigurationError(core.ModuleConfig, "%s: %v", mc.Type, err)
		}
		if err := validateMeasure(child); err != nil {
			return err
		}
	}
	return nil
}
