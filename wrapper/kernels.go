package wrapper

import (
	"fmt"
	"sort"

	"github.com/kernlab/vitals/kernel"
	"github.com/kernlab/vitals/storage"

	pb "github.com/kernlab/vitals/proto"
)

// Scored associates a profile identifier to the score a matching
// kernel computed for it.
type Scored struct {
	ID    uint64
	Score float32
}

// Transformed associates a profile identifier to the row a transform
// kernel computed from its vector data.
type Transformed struct {
	ID     uint64
	Values []float32
}

// Kernels exposes the dense numeric kernels to scriptlets, evaluated
// against a snapshot of the profiles storage. Shape errors coming from
// the kernels are reported through the shared execution context.
type Kernels struct {
	ctx      *Context
	profiles *storage.Profiles
}

// WrapKernels creates a Kernels wrapper around the profiles storage
// using the given execution context for error reporting.
func WrapKernels(ctx *Context, profiles *storage.Profiles) Kernels {
	return Kernels{
		ctx:      ctx,
		profiles: profiles,
	}
}

// snapshot builds a row-major matrix from the profiles storage, one
// row per profile in ascending identifier order.
func (k Kernels) snapshot() ([]uint64, kernel.Matrix, bool) {
	objects := k.profiles.Objects()
	rows := len(objects)
	if rows == 0 {
		k.ctx.Error("no profiles in storage")
		return nil, kernel.Matrix{}, false
	}

	profiles := make([]*pb.Profile, rows)
	for i, m := range objects {
		profiles[i] = m.(*pb.Profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Id < profiles[j].Id
	})

	cols := len(profiles[0].Data)
	ids := make([]uint64, rows)
	matrix := kernel.NewMatrix(rows, cols)
	for i, profile := range profiles {
		if len(profile.Data) != cols {
			k.ctx.Error(fmt.Sprintf("profile %d has %d elements, expected %d", profile.Id, len(profile.Data), cols))
			return nil, kernel.Matrix{}, false
		}
		ids[i] = profile.Id
		copy(matrix.Row(i), profile.Data)
	}

	return ids, matrix, true
}

func scored(ids []uint64, scores []float32) []Scored {
	out := make([]Scored, len(ids))
	for i, id := range ids {
		out[i] = Scored{ID: id, Score: scores[i]}
	}
	return out
}

func transformed(ids []uint64, matrix kernel.Matrix) []Transformed {
	out := make([]Transformed, len(ids))
	for i, id := range ids {
		out[i] = Transformed{ID: id, Values: matrix.Row(i)}
	}
	return out
}

// SyndromeScore computes the weighted syndrome activation of every
// stored profile against the given symptoms and weights vectors.
func (k Kernels) SyndromeScore(symptoms []float32, weights []float32) []Scored {
	ids, matrix, ok := k.snapshot()
	if !ok {
		return nil
	}

	scores, err := kernel.SyndromeScore(symptoms, weights, matrix)
	if err != nil {
		k.ctx.Error(err.Error())
		return nil
	}
	return scored(ids, scores)
}

// Standardize returns a standardized copy of the stored profiles,
// feature by feature.
func (k Kernels) Standardize() []Transformed {
	ids, matrix, ok := k.snapshot()
	if !ok {
		return nil
	}

	out, err := kernel.Standardize(matrix)
	if err != nil {
		k.ctx.Error(err.Error())
		return nil
	}
	return transformed(ids, out)
}

// CosineMatch computes the cosine similarity of every stored profile
// against the given vector.
func (k Kernels) CosineMatch(profile []float32) []Scored {
	ids, matrix, ok := k.snapshot()
	if !ok {
		return nil
	}

	sims, err := kernel.CosineMatch(profile, matrix)
	if err != nil {
		k.ctx.Error(err.Error())
		return nil
	}
	return scored(ids, sims)
}

// ThresholdTransform returns a copy of the stored profiles with every
// element above the threshold squashed and the others dampened.
func (k Kernels) ThresholdTransform(threshold float32) []Transformed {
	ids, matrix, ok := k.snapshot()
	if !ok {
		return nil
	}

	out, err := kernel.ThresholdTransform(matrix, threshold)
	if err != nil {
		k.ctx.Error(err.Error())
		return nil
	}
	return transformed(ids, out)
}

// GaussianMatch computes the gaussian similarity of every stored
// profile against the given query vector.
func (k Kernels) GaussianMatch(query []float32) []Scored {
	ids, matrix, ok := k.snapshot()
	if !ok {
		return nil
	}

	sims, err := kernel.GaussianMatch(query, matrix)
	if err != nil {
		k.ctx.Error(err.Error())
		return nil
	}
	return scored(ids, sims)
}
