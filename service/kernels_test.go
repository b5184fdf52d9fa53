package service

import (
	"math"
	"strings"
	"testing"

	pb "github.com/kernlab/vitals/proto"

	"golang.org/x/net/context"
)

var (
	testSymptoms = &pb.Vector{Values: []float32{1, 0, 1}}
	testWeights  = &pb.Vector{Values: []float32{0.5, 0.25, 0.25}}
	testPatterns = &pb.Matrix{
		Rows:   2,
		Cols:   3,
		Values: []float32{1, 1, 1, 0, 0, 0},
	}
	testSamples = &pb.Matrix{
		Rows:   3,
		Cols:   1,
		Values: []float32{1, 2, 3},
	}
)

func kernelService(t testing.TB) *Service {
	setup(t, true, true)

	svc, err := New(testFolder)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestServiceErrTensorResponse(t *testing.T) {
	if r := errTensorResponse("test %d", 123); r.Success {
		t.Fatal("success should be false")
	} else if r.Msg != "test 123" {
		t.Fatalf("unexpected message: %s", r.Msg)
	} else if r.Tensor != nil {
		t.Fatalf("unexpected tensor pointer: %v", r.Tensor)
	}
}

func TestServiceSyndromeScore(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.SyndromeRequest{Symptoms: testSymptoms, Weights: testWeights, Patterns: testPatterns}
	resp, err := svc.SyndromeScore(context.TODO(), req)
	if err != nil {
		t.Fatal(err)
	} else if !resp.Success {
		t.Fatalf("expected success response: %s", resp.Msg)
	} else if resp.Tensor == nil {
		t.Fatal("expected tensor in response")
	} else if resp.Tensor.Rows != 1 || resp.Tensor.Cols != 2 {
		t.Fatalf("unexpected tensor shape %dx%d", resp.Tensor.Rows, resp.Tensor.Cols)
	}

	// first pattern activates 1*0.5 + 0*0.25 + 1*0.25 = 0.75, the
	// second one activates 0 and must score exactly sigmoid(0) = 0.5
	expected := 1.0 / (1.0 + math.Exp(-0.75))
	if got := float64(resp.Tensor.Values[0]); math.Abs(got-expected) > 1e-6 {
		t.Fatalf("expected score of %f, got %f", expected, got)
	} else if got := resp.Tensor.Values[1]; got != 0.5 {
		t.Fatalf("expected score of 0.5, got %f", got)
	}
}

func TestServiceSyndromeScoreWithInvalidInputs(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	// nil vectors are rejected before touching the kernel
	req := &pb.SyndromeRequest{Symptoms: nil, Weights: testWeights, Patterns: testPatterns}
	if resp, err := svc.SyndromeScore(context.TODO(), req); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	} else if !strings.Contains(resp.Msg, "not a numeric array") {
		t.Fatalf("unexpected message: %s", resp.Msg)
	}

	// shape mismatches are rejected by the kernel
	req = &pb.SyndromeRequest{Symptoms: &pb.Vector{Values: []float32{1}}, Weights: testWeights, Patterns: testPatterns}
	if resp, err := svc.SyndromeScore(context.TODO(), req); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	} else if !strings.Contains(resp.Msg, "shape mismatch") {
		t.Fatalf("unexpected message: %s", resp.Msg)
	}
}

func TestServiceStandardize(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.StandardizeRequest{Samples: testSamples}
	resp, err := svc.Standardize(context.TODO(), req)
	if err != nil {
		t.Fatal(err)
	} else if !resp.Success {
		t.Fatalf("expected success response: %s", resp.Msg)
	} else if resp.Tensor.Rows != testSamples.Rows || resp.Tensor.Cols != testSamples.Cols {
		t.Fatalf("unexpected tensor shape %dx%d", resp.Tensor.Rows, resp.Tensor.Cols)
	}

	// mean is 2, variance is 2/3
	expected := 1.0 / math.Sqrt(2.0/3.0+1e-8)
	if got := float64(resp.Tensor.Values[2]); math.Abs(got-expected) > 1e-4 {
		t.Fatalf("expected standardized value of %f, got %f", expected, got)
	} else if got := resp.Tensor.Values[1]; got != 0.0 {
		t.Fatalf("expected standardized value of 0, got %f", got)
	}
}

func TestServiceStandardizeWithInvalidInputs(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	if resp, err := svc.Standardize(context.TODO(), &pb.StandardizeRequest{Samples: nil}); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	}

	// declared shape disagrees with the buffer size
	ragged := &pb.Matrix{Rows: 2, Cols: 3, Values: []float32{1, 2, 3}}
	if resp, err := svc.Standardize(context.TODO(), &pb.StandardizeRequest{Samples: ragged}); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	}
}

func TestServiceCosineMatch(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.CosineRequest{
		Profile:  &pb.Vector{Values: []float32{1, 1, 1}},
		Database: testPatterns,
	}
	resp, err := svc.CosineMatch(context.TODO(), req)
	if err != nil {
		t.Fatal(err)
	} else if !resp.Success {
		t.Fatalf("expected success response: %s", resp.Msg)
	} else if len(resp.Tensor.Values) != 2 {
		t.Fatalf("expected 2 similarities, got %d", len(resp.Tensor.Values))
	}

	// identical direction scores 1, the zero row takes the
	// zero-denominator branch and scores 0
	if got := float64(resp.Tensor.Values[0]); math.Abs(got-1.0) > 1e-6 {
		t.Fatalf("expected similarity of 1.0, got %f", got)
	} else if got := resp.Tensor.Values[1]; got != 0.0 {
		t.Fatalf("expected similarity of 0.0, got %f", got)
	}
}

func TestServiceCosineMatchWithInvalidInputs(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.CosineRequest{Profile: nil, Database: testPatterns}
	if resp, err := svc.CosineMatch(context.TODO(), req); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	}
}

func TestServiceThresholdTransform(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.ThresholdRequest{Samples: testSamples, Threshold: 1.5}
	resp, err := svc.ThresholdTransform(context.TODO(), req)
	if err != nil {
		t.Fatal(err)
	} else if !resp.Success {
		t.Fatalf("expected success response: %s", resp.Msg)
	}

	// 1 is at most the threshold and gets dampened, 3 is above it
	// and gets squashed
	if got := resp.Tensor.Values[0]; math.Abs(float64(got)-0.1) > 1e-6 {
		t.Fatalf("expected dampened value of 0.1, got %f", got)
	} else if got := float64(resp.Tensor.Values[2]); math.Abs(got-math.Tanh(1.5)) > 1e-6 {
		t.Fatalf("expected squashed value of %f, got %f", math.Tanh(1.5), got)
	}
}

func TestServiceGaussianMatch(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.GaussianRequest{
		Query:    &pb.Vector{Values: []float32{1, 1, 1}},
		Database: testPatterns,
	}
	resp, err := svc.GaussianMatch(context.TODO(), req)
	if err != nil {
		t.Fatal(err)
	} else if !resp.Success {
		t.Fatalf("expected success response: %s", resp.Msg)
	}

	// the first database row is identical to the query
	if got := resp.Tensor.Values[0]; got != 1.0 {
		t.Fatalf("expected similarity of 1.0, got %f", got)
	} else if got := resp.Tensor.Values[1]; got <= 0.0 || got >= 1.0 {
		t.Fatalf("expected similarity in (0,1), got %f", got)
	}
}

func TestServiceGaussianMatchWithInvalidInputs(t *testing.T) {
	svc := kernelService(t)
	defer teardown(t)

	req := &pb.GaussianRequest{Query: &pb.Vector{Values: []float32{1}}, Database: testPatterns}
	if resp, err := svc.GaussianMatch(context.TODO(), req); err != nil {
		t.Fatal(err)
	} else if resp.Success {
		t.Fatal("expected error response")
	} else if !strings.Contains(resp.Msg, "shape mismatch") {
		t.Fatalf("unexpected message: %s", resp.Msg)
	}
}
