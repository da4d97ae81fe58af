package core

// Options 是度量打分时可识别的参数集合，每次调用显式传入。
//
// 零值即默认值：
//   - EntropyBase <= 0 时熵使用自然对数
//   - ProbaFloor 为 0 时不做下界截断，p == 0 的项按 0*log0 = 0 处理
type Options struct {
	// EntropyBase 熵的对数底（例如 2 表示以 bit 为单位）
	EntropyBase float64 `yaml:"entropy_base" json:"entropy_base"`

	// ProbaFloor 取对数前概率的下界，用于避免 log(0)
	ProbaFloor float64 `yaml:"proba_floor" json:"proba_floor"`
}

// Option 打分参数配置选项
type Option func(*Options)

// NewOptions 创建打分参数
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEntropyBase 设置熵的对数底
func WithEntropyBase(base float64) Option {
	return func(o *Options) {
		o.EntropyBase = base
	}
}

// WithProbaFloor 设置取对数前的概率下界
func WithProbaFloor(floor float64) Option {
	return func(o *Options) {
		o.ProbaFloor = floor
	}
}
