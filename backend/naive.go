package backend

import (
	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Wrap(size int, data []float32) Vector {
	return data
}

// Dot accumulates in float64, unlike the blas32 implementation which
// keeps everything in single precision.
func (impl naive) Dot(a, b Vector) float64 {
	va := a.([]float32)
	vb := b.([]float32)
	dot := 0.0
	for i := range va {
		dot += float64(va[i]) * float64(vb[i])
	}
	return dot
}
