package kernel

import (
	"github.com/chewxy/math32"
)

// epsilon keeps the standardization divisor away from zero for constant
// columns, mapping them to a near zero output instead of infinities.
const epsilon = 1e-8

// Standardize maps every column of the samples matrix to zero mean and unit
// variance independently of the other columns, using the population variance
// (divisor equal to the row count). Each column requires three sequential
// passes over its rows (mean, variance, write); the work is parallelized
// over columns.
func Standardize(samples Matrix) (Matrix, error) {
	if err := samples.shape("samples"); err != nil {
		return Matrix{}, err
	}

	out := NewMatrix(samples.Rows, samples.Cols)
	rows := float32(samples.Rows)

	parallel(samples.Cols, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			mean := float32(0.0)
			for i := 0; i < samples.Rows; i++ {
				mean += samples.Data[i*samples.Cols+j]
			}
			mean /= rows

			variance := float32(0.0)
			for i := 0; i < samples.Rows; i++ {
				d := samples.Data[i*samples.Cols+j] - mean
				variance += d * d
			}
			variance /= rows

			den := math32.Sqrt(variance + epsilon)
			for i := 0; i < samples.Rows; i++ {
				out.Data[i*samples.Cols+j] = (samples.Data[i*samples.Cols+j] - mean) / den
			}
		}
	})

	return out, nil
}
