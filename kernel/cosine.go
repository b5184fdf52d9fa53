package kernel

import (
	"github.com/chewxy/math32"

	"github.com/kernlab/vitals/backend"
)

// CosineMatch computes the cosine similarity between a profile vector and
// every row of a database matrix. The profile norm is computed once before
// the parallel phase; each row's dot product and norm are then accumulated
// together in a single pass over the features. If either norm is zero the
// similarity for that row is 0, never NaN.
func CosineMatch(profile []float32, database Matrix) ([]float32, error) {
	k := len(profile)
	if err := database.shapeCols("database", k); err != nil {
		return nil, err
	}

	pv := backend.Wrap(k, profile)
	pNorm := math32.Sqrt(float32(backend.Dot(pv, pv)))

	sims := make([]float32, database.Rows)
	parallel(database.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := database.Row(i)
			dot := float32(0.0)
			rowDot := float32(0.0)
			for j, p := range profile {
				v := row[j]
				dot += p * v
				rowDot += v * v
			}

			if den := pNorm * math32.Sqrt(rowDot); den != 0.0 {
				sims[i] = dot / den
			}
		}
	})

	return sims, nil
}
