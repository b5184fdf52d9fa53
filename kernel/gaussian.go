package kernel

import (
	"github.com/chewxy/math32"
)

// GaussianMatch computes the gaussian pattern similarity between a query
// vector and every row of a database matrix as the mean of
// exp(-(q[j] - row[j])²) over the features. Results are bounded in (0,1]
// with exactly 1 only when a row equals the query. Parallelized over rows.
func GaussianMatch(query []float32, database Matrix) ([]float32, error) {
	l := len(query)
	if err := database.shapeCols("database", l); err != nil {
		return nil, err
	}

	sims := make([]float32, database.Rows)
	if l == 0 {
		return sims, nil
	}

	parallel(database.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := database.Row(i)
			sum := float32(0.0)
			for j, q := range query {
				d := q - row[j]
				sum += math32.Exp(-d * d)
			}
			sims[i] = sum / float32(l)
		}
	})

	return sims, nil
}
