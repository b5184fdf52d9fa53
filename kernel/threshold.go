package kernel

import (
	"github.com/chewxy/math32"
)

// dampingFactor scales values at or below the threshold.
const dampingFactor = 0.1

// ThresholdTransform applies a threshold based nonlinear transform to every
// element of the samples matrix: values strictly above the threshold map to
// tanh(v - t), the rest are damped to v * 0.1. Every element is independent,
// the flat buffer is split into one span per worker.
func ThresholdTransform(samples Matrix, threshold float32) (Matrix, error) {
	if err := samples.shape("samples"); err != nil {
		return Matrix{}, err
	}

	out := NewMatrix(samples.Rows, samples.Cols)
	parallel(len(samples.Data), func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			v := samples.Data[idx]
			if v > threshold {
				out.Data[idx] = math32.Tanh(v - threshold)
			} else {
				out.Data[idx] = v * dampingFactor
			}
		}
	})

	return out, nil
}
