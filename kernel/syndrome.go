package kernel

import (
	"github.com/chewxy/math32"

	"github.com/kernlab/vitals/backend"
)

func sigmoid(x float32) float32 {
	return 1.0 / (1.0 + math32.Exp(-x))
}

// SyndromeScore scores every pattern row against a symptom vector, producing
// sigmoid(Σ symptoms[j] * weights[j] * patterns[i][j]) for each row. The
// weighted symptom vector is computed once, then every row is reduced to a
// single dot product, parallelized over pattern rows. All scores lie
// strictly in (0,1).
func SyndromeScore(symptoms []float32, weights []float32, patterns Matrix) ([]float32, error) {
	n := len(symptoms)
	if err := sameLength("weights", weights, n); err != nil {
		return nil, err
	} else if err := patterns.shapeCols("patterns", n); err != nil {
		return nil, err
	}

	weighted := make([]float32, n)
	for j, s := range symptoms {
		weighted[j] = s * weights[j]
	}
	wv := backend.Wrap(n, weighted)

	scores := make([]float32, patterns.Rows)
	parallel(patterns.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := backend.Wrap(n, patterns.Row(i))
			scores[i] = sigmoid(float32(backend.Dot(wv, row)))
		}
	})

	return scores, nil
}
