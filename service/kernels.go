package service

import (
	"fmt"

	"github.com/kernlab/vitals/kernel"

	pb "github.com/kernlab/vitals/proto"

	"golang.org/x/net/context"
)

func errTensorResponse(format string, args ...interface{}) *pb.TensorResponse {
	return &pb.TensorResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

// vectorOf validates a wire vector and returns its raw buffer.
func vectorOf(name string, v *pb.Vector) ([]float32, error) {
	if v == nil || v.Values == nil {
		return nil, fmt.Errorf("%s is not a numeric array", name)
	}
	return v.Values, nil
}

// matrixOf validates a wire matrix and adapts it to its kernel
// counterpart, the buffer is shared, not copied.
func matrixOf(name string, m *pb.Matrix) (kernel.Matrix, error) {
	if m == nil || m.Values == nil {
		return kernel.Matrix{}, fmt.Errorf("%s is not a numeric array", name)
	}
	return kernel.Matrix{
		Rows: int(m.Rows),
		Cols: int(m.Cols),
		Data: m.Values,
	}, nil
}

func vectorTensor(values []float32) *pb.TensorResponse {
	return &pb.TensorResponse{
		Success: true,
		Tensor: &pb.Matrix{
			Rows:   1,
			Cols:   uint32(len(values)),
			Values: values,
		},
	}
}

func matrixTensor(m kernel.Matrix) *pb.TensorResponse {
	return &pb.TensorResponse{
		Success: true,
		Tensor: &pb.Matrix{
			Rows:   uint32(m.Rows),
			Cols:   uint32(m.Cols),
			Values: m.Data,
		},
	}
}

// SyndromeScore computes the weighted syndrome activation of every
// pattern row against the symptoms and weights vectors.
func (s *Service) SyndromeScore(ctx context.Context, req *pb.SyndromeRequest) (*pb.TensorResponse, error) {
	symptoms, err := vectorOf("symptoms", req.Symptoms)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	weights, err := vectorOf("weights", req.Weights)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	patterns, err := matrixOf("patterns", req.Patterns)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	scores, err := kernel.SyndromeScore(symptoms, weights, patterns)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}
	return vectorTensor(scores), nil
}

// Standardize maps every feature column of the samples to zero mean
// and unit variance.
func (s *Service) Standardize(ctx context.Context, req *pb.StandardizeRequest) (*pb.TensorResponse, error) {
	samples, err := matrixOf("samples", req.Samples)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	out, err := kernel.Standardize(samples)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}
	return matrixTensor(out), nil
}

// CosineMatch computes the cosine similarity of every database row
// against the profile vector.
func (s *Service) CosineMatch(ctx context.Context, req *pb.CosineRequest) (*pb.TensorResponse, error) {
	profile, err := vectorOf("profile", req.Profile)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	database, err := matrixOf("database", req.Database)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	sims, err := kernel.CosineMatch(profile, database)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}
	return vectorTensor(sims), nil
}

// ThresholdTransform squashes every element of the samples above the
// threshold and dampens the others.
func (s *Service) ThresholdTransform(ctx context.Context, req *pb.ThresholdRequest) (*pb.TensorResponse, error) {
	samples, err := matrixOf("samples", req.Samples)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	out, err := kernel.ThresholdTransform(samples, req.Threshold)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}
	return matrixTensor(out), nil
}

// GaussianMatch computes the gaussian similarity of every database row
// against the query vector.
func (s *Service) GaussianMatch(ctx context.Context, req *pb.GaussianRequest) (*pb.TensorResponse, error) {
	query, err := vectorOf("query", req.Query)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	database, err := matrixOf("database", req.Database)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}

	sims, err := kernel.GaussianMatch(query, database)
	if err != nil {
		return errTensorResponse("%s", err), nil
	}
	return vectorTensor(sims), nil
}
