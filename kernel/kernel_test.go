package kernel

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomMatrix(rows, cols int, r *rand.Rand) Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.Data {
		m.Data[i] = r.Float32()*2.0 - 1.0
	}
	return m
}

func randomVector(size int, r *rand.Rand) []float32 {
	v := make([]float32, size)
	for i := range v {
		v[i] = r.Float32()*2.0 - 1.0
	}
	return v
}

func TestSyndromeScoreExample(t *testing.T) {
	symptoms := []float32{1, 1}
	weights := []float32{1, 1}
	patterns := Matrix{Rows: 1, Cols: 2, Data: []float32{1, 1}}

	scores, err := SyndromeScore(symptoms, weights, patterns)

	require.NoError(t, err)
	require.Len(t, scores, 1)
	// sigmoid(2)
	require.InDelta(t, 0.8808, scores[0], 1e-4)
}

func TestSyndromeScoreRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	symptoms := randomVector(32, r)
	weights := randomVector(32, r)
	patterns := randomMatrix(100, 32, r)

	scores, err := SyndromeScore(symptoms, weights, patterns)

	require.NoError(t, err)
	require.Len(t, scores, patterns.Rows)
	for i, s := range scores {
		if s <= 0.0 || s >= 1.0 {
			t.Fatalf("score %d out of the sigmoid range: %f", i, s)
		}
	}
}

func TestSyndromeScoreShapeMismatch(t *testing.T) {
	symptoms := []float32{1, 2, 3}

	_, err := SyndromeScore(symptoms, []float32{1}, Matrix{Rows: 1, Cols: 3, Data: []float32{1, 2, 3}})
	require.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = SyndromeScore(symptoms, []float32{1, 1, 1}, Matrix{Rows: 1, Cols: 2, Data: []float32{1, 2}})
	require.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = SyndromeScore(symptoms, []float32{1, 1, 1}, Matrix{Rows: 2, Cols: 3, Data: []float32{1}})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestSyndromeScoreEmptyPatterns(t *testing.T) {
	scores, err := SyndromeScore([]float32{1, 2}, []float32{1, 1}, Matrix{Rows: 0, Cols: 2, Data: []float32{}})

	require.NoError(t, err)
	require.Len(t, scores, 0)
}

func TestStandardizeExample(t *testing.T) {
	samples := Matrix{Rows: 3, Cols: 1, Data: []float32{1, 2, 3}}

	out, err := Standardize(samples)

	require.NoError(t, err)
	require.Equal(t, samples.Rows, out.Rows)
	require.Equal(t, samples.Cols, out.Cols)
	require.InDelta(t, -1.2247, out.Data[0], 1e-4)
	require.InDelta(t, 0.0, out.Data[1], 1e-4)
	require.InDelta(t, 1.2247, out.Data[2], 1e-4)
}

func TestStandardizeMomentsPerColumn(t *testing.T) {
	r := rand.New(rand.NewSource(666))
	samples := randomMatrix(200, 8, r)

	out, err := Standardize(samples)
	require.NoError(t, err)

	rows := float64(out.Rows)
	for j := 0; j < out.Cols; j++ {
		mean := 0.0
		for i := 0; i < out.Rows; i++ {
			mean += float64(out.Data[i*out.Cols+j])
		}
		mean /= rows

		variance := 0.0
		for i := 0; i < out.Rows; i++ {
			d := float64(out.Data[i*out.Cols+j]) - mean
			variance += d * d
		}
		variance /= rows

		require.InDelta(t, 0.0, mean, 1e-4)
		require.InDelta(t, 1.0, variance, 1e-3)
	}
}

func TestStandardizeConstantColumn(t *testing.T) {
	samples := Matrix{Rows: 4, Cols: 2, Data: []float32{
		5, 1,
		5, 2,
		5, 3,
		5, 4,
	}}

	out, err := Standardize(samples)
	require.NoError(t, err)

	for i := 0; i < out.Rows; i++ {
		require.InDelta(t, 0.0, out.Data[i*out.Cols], 1e-4)
	}
}

func TestStandardizeShapeMismatch(t *testing.T) {
	_, err := Standardize(Matrix{Rows: 2, Cols: 3, Data: []float32{1, 2, 3}})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestCosineMatchZeroProfile(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	database := randomMatrix(20, 5, r)

	sims, err := CosineMatch(make([]float32, 5), database)

	require.NoError(t, err)
	for i, s := range sims {
		if s != 0.0 {
			t.Fatalf("expected exactly 0 for row %d with a null profile, got %f", i, s)
		}
	}
}

func TestCosineMatchZeroRow(t *testing.T) {
	database := Matrix{Rows: 1, Cols: 3, Data: []float32{0, 0, 0}}

	sims, err := CosineMatch([]float32{1, 2, 3}, database)

	require.NoError(t, err)
	if sims[0] != 0.0 {
		t.Fatalf("expected exactly 0 for a null database row, got %f", sims[0])
	}
}

func TestCosineMatchScalarMultiple(t *testing.T) {
	profile := []float32{1, 2, 3, 4}
	database := Matrix{Rows: 2, Cols: 4, Data: []float32{
		2, 4, 6, 8,
		-1, -2, -3, -4,
	}}

	sims, err := CosineMatch(profile, database)

	require.NoError(t, err)
	require.InDelta(t, 1.0, sims[0], 1e-5)
	require.InDelta(t, -1.0, sims[1], 1e-5)
}

func TestCosineMatchShapeMismatch(t *testing.T) {
	_, err := CosineMatch([]float32{1, 2}, Matrix{Rows: 1, Cols: 3, Data: []float32{1, 2, 3}})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestThresholdTransformBranches(t *testing.T) {
	samples := Matrix{Rows: 1, Cols: 4, Data: []float32{2.0, 0.5, 0.5001, -1.0}}

	out, err := ThresholdTransform(samples, 0.5)

	require.NoError(t, err)
	// above the threshold: tanh(v - t)
	require.InDelta(t, 0.9051, out.Data[0], 1e-4)
	// at the threshold the > branch must NOT trigger, the value is damped
	require.InDelta(t, 0.05, out.Data[1], 1e-6)
	// continuous from above: just past the threshold the output is near tanh(0) = 0
	require.InDelta(t, 0.0001, out.Data[2], 1e-5)
	// below the threshold
	require.InDelta(t, -0.1, out.Data[3], 1e-6)
}

func TestThresholdTransformShapeMismatch(t *testing.T) {
	_, err := ThresholdTransform(Matrix{Rows: 3, Cols: 3, Data: []float32{1}}, 0.0)
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestGaussianMatchExact(t *testing.T) {
	query := []float32{0.1, 0.2, 0.3}
	database := Matrix{Rows: 2, Cols: 3, Data: []float32{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
	}}

	sims, err := GaussianMatch(query, database)

	require.NoError(t, err)
	if sims[0] != 1.0 {
		t.Fatalf("expected exactly 1 for an identical row, got %f", sims[0])
	}
	if sims[1] <= 0.0 || sims[1] >= 1.0 {
		t.Fatalf("expected a similarity in (0,1) for a different row, got %f", sims[1])
	}
}

func TestGaussianMatchBounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	query := randomVector(16, r)
	database := randomMatrix(50, 16, r)

	sims, err := GaussianMatch(query, database)

	require.NoError(t, err)
	for i, s := range sims {
		if s <= 0.0 || s > 1.0 {
			t.Fatalf("similarity %d out of (0,1]: %f", i, s)
		}
	}
}

func TestGaussianMatchShapeMismatch(t *testing.T) {
	_, err := GaussianMatch([]float32{1}, Matrix{Rows: 1, Cols: 2, Data: []float32{1, 2}})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestMatrixRow(t *testing.T) {
	m := Matrix{Rows: 2, Cols: 3, Data: []float32{1, 2, 3, 4, 5, 6}}

	require.Equal(t, []float32{1, 2, 3}, m.Row(0))
	require.Equal(t, []float32{4, 5, 6}, m.Row(1))
}
