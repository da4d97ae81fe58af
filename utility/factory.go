package utility

import (
	"fmt"
	"sort"

	"github.com/rushteam/alkit/core"
)

// MeasureConfig 是单个度量的配置（支持 YAML/JSON）。
type MeasureConfig struct {
	Type   string         `yaml:"type" json:"type"`     // uncertainty / margin / entropy / expr / linear / product 等
	Config map[string]any `yaml:"config" json:"config"` // 度量特定配置
}

// MeasureBuilder 根据 config 构建度量。组合类度量通过 factory 递归构建子度量。
type MeasureBuilder func(factory *MeasureFactory, config map[string]any) (Measure, error)

// MeasureFactory 用于根据配置构建 Measure 实例。
type MeasureFactory struct {
	builders map[string]MeasureBuilder
}

func NewMeasureFactory() *MeasureFactory {
	return &MeasureFactory{
		builders: make(map[string]MeasureBuilder),
	}
}

// Register 注册度量构建器。
func (f *MeasureFactory) Register(measureType string, builder MeasureBuilder) {
	f.builders[measureType] = builder
}

// Types 返回已注册的度量类型（排序）。
func (f *MeasureFactory) Types() []string {
	types := make([]string, 0, len(f.builders))
	for t := range f.builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Build 根据类型和配置构建度量。任何构建失败都归为 INVALID_CONFIG。
func (f *MeasureFactory) Build(measureType string, config map[string]any) (Measure, error) {
	builder, ok := f.builders[measureType]
	if !ok {
		return nil, core.ConfigurationError(core.ModuleConfig, "unknown measure type %q (supported: %v)", measureType, f.Types())
	}
	m, err := builder(f, config)
	if err != nil {
		if core.IsConfigurationError(err) {
			return nil, err
		}
		return nil, core.ConfigurationError(core.ModuleConfig, "build measure %s: %v", measureType, err)
	}
	if m == nil {
		return nil, core.ConfigurationError(core.ModuleConfig, "build measure %s: builder returned nil", measureType)
	}
	return m, nil
}

// BuildConfig 按 MeasureConfig 构建度量。
func (f *MeasureFactory) BuildConfig(mc MeasureConfig) (Measure, error) {
	return f.Build(mc.Type, mc.Config)
}

// ParseMeasureConfig 把 YAML/JSON 解析出的 any（如组合器的 measures 列表元素）转为 MeasureConfig。
// 同时支持 {type: margin, config: {...}} 与简写 {type: margin}。
func ParseMeasureConfig(v any) (MeasureConfig, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return MeasureConfig{}, fmt.Errorf("measure config must be a map, got %T", v)
	}
	t, _ := m["type"].(string)
	if t == "" {
		return MeasureConfig{}, fmt.Errorf("measure config has no type")
	}
	mc := MeasureConfig{Type: t}
	if raw, ok := m["config"]; ok && raw != nil {
		cfg, ok := raw.(map[string]any)
		if !ok {
			return MeasureConfig{}, fmt.Errorf("measure %s: config must be a map, got %T", t, raw)
		}
		mc.Config = cfg
	}
	return mc, nil
}
