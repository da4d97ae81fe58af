package query

import (
	"fmt"
	"math/rand/v2"

	"github.com/rushteam/alkit/core"
)

// InitialIndices 从 [0, poolSize) 中有放回地抽取 size 个下标，用于挑选初始训练样本。
// 随机源由调用方显式传入，固定种子即可复现。
func InitialIndices(rng *rand.Rand, poolSize, size int) ([]int, error) {
	if rng == nil {
		return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeInvalidInput, "query: nil random source")
	}
	if poolSize <= 0 || size < 0 {
		return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeInvalidInput,
			fmt.Sprintf("query: cannot draw %d indices from a pool of %d", size, poolSize))
	}
	out := make([]int, size)
	for i := range out {
		out[i] = rng.IntN(poolSize)
	}
	return out, nil
}

// NewRand 用种子创建一个确定性的随机源。
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
