package config

import (
	"sort"
	"sync"

	"github.com/rushteam/alkit/utility"
)

// 使用配置驱动时，需在 main 或入口处 import _ "github.com/rushteam/alkit/config/builders"
// 以触发内置度量（uncertainty、margin、entropy、expr、linear、product）的 init 注册。

// MeasureBuilder 与 utility.MeasureBuilder 一致：根据 config 构建度量。
// 自定义度量在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type MeasureBuilder = utility.MeasureBuilder

var (
	defaultBuilders   = make(map[string]MeasureBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种度量的构建逻辑，供 DefaultFactory 与配置驱动使用。
func Register(typeName string, builder MeasureBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的度量类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func registered(typeName string) bool {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	_, ok := defaultBuilders[typeName]
	return ok
}
