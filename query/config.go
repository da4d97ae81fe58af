package query

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/utility"
)

// Config 是查询策略的配置结构（支持 YAML/JSON）。
//
//	strategy:
//	  name: uncertainty_margin
//	  measure:
//	    type: linear
//	    config:
//	      measures:
//	        - type: uncertainty
//	        - type: margin
//	      weights: [1.0, 1.0]
//	  n_instances: 5
//	  options:
//	    entropy_base: 2
type Config struct {
	Strategy StrategyConfig `yaml:"strategy" json:"strategy"`
}

// StrategyConfig 是单个查询策略的配置。
type StrategyConfig struct {
	Name        string                `yaml:"name" json:"name"`
	Measure     utility.MeasureConfig `yaml:"measure" json:"measure"`
	NInstances  int                   `yaml:"n_instances" json:"n_instances"`
	ShuffleTies bool                  `yaml:"shuffle_ties" json:"shuffle_ties"`
	Seed        uint64                `yaml:"seed" json:"seed"`
	Options     core.Options          `yaml:"options" json:"options"`
}

// LoadFromYAML 从 YAML 文件加载策略配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML 解析 YAML 格式的策略配置。
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载策略配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// BuildStrategy 根据配置构建 Strategy（需要 MeasureFactory 注册度量构建器）。
// 注意：内置构建器在 config/builders 中注册，避免循环依赖。
func (c *Config) BuildStrategy(factory *utility.MeasureFactory) (*Strategy, error) {
	if c.Strategy.Measure.Type == "" {
		return nil, core.ConfigurationError(core.ModuleConfig, "strategy %q has no measure", c.Strategy.Name)
	}
	if c.Strategy.NInstances < 0 {
		return nil, core.ConfigurationError(core.ModuleConfig, "strategy %q: n_instances must not be negative", c.Strategy.Name)
	}
	m, err := factory.BuildConfig(c.Strategy.Measure)
	if err != nil {
		return nil, fmt.Errorf("build strategy %s: %w", c.Strategy.Name, err)
	}

	s := &Strategy{
		Name:    c.Strategy.Name,
		Measure: m,
		N:       c.Strategy.NInstances,
		Options: c.Strategy.Options,
	}
	if c.Strategy.ShuffleTies {
		s.Rand = NewRand(c.Strategy.Seed)
	}
	return s, nil
}
