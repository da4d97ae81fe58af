// Package conv 提供类型转换与配置读取的泛型工具，用于解析 YAML/JSON 得到的 map[string]any。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32、uint64；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ConvertSlice 将 []T 按 convert 转为 []U，任一元素转换失败时返回 (nil, false)。
func ConvertSlice[T, U any](s []T, convert func(T) (U, bool)) ([]U, bool) {
	if s == nil {
		return nil, true
	}
	out := make([]U, 0, len(s))
	for _, v := range s {
		u, ok := convert(v)
		if !ok {
			return nil, false
		}
		out = append(out, u)
	}
	return out, true
}

// SliceAnyToFloat64 将 []any 转为 []float64（YAML 中的 [1, 0.5] 会解析为 int 与 float64 混合）。
// v 不是切片或存在非数值元素时返回 (nil, false)。
func SliceAnyToFloat64(v any) ([]float64, bool) {
	switch raw := v.(type) {
	case []float64:
		return append([]float64(nil), raw...), true
	case []any:
		return ConvertSlice(raw, ToFloat64)
	default:
		return nil, false
	}
}

// ConfigGet 从 map[string]any（如 YAML/JSON 解析结果）按 key 取 T，取不到或类型不符时返回 defaultVal。
func ConfigGet[T any](m map[string]any, key string, defaultVal T) T {
	if m == nil {
		return defaultVal
	}
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	t, ok := v.(T)
	if !ok {
		return defaultVal
	}
	return t
}
