package wrapper

import (
	"math"
	"reflect"
	"testing"

	pb "github.com/kernlab/vitals/proto"
)

func assertPanic(t *testing.T, msg string, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal(msg)
		}
	}()
	f()
}

func TestWrapProfile(t *testing.T) {
	wrapped := WrapProfile(&testProfile)
	if wrapped.ID != testProfile.Id {
		t.Fatalf("expected profile with id %d, %d found", testProfile.Id, wrapped.ID)
	} else if wrapped.Size != len(testProfile.Data) {
		t.Fatalf("expected size of %d, got %d", len(testProfile.Data), wrapped.Size)
	} else if reflect.DeepEqual(*wrapped.profile, testProfile) == false {
		t.Fatal("unexpected wrapped profile")
	}
}

func TestWrapProfileWithNil(t *testing.T) {
	wrapped := WrapProfile(nil)
	if wrapped.IsNull() == false {
		t.Fatal("expected null wrapped")
	}
}

func TestProfileIs(t *testing.T) {
	a := WrapProfile(&testProfile)
	b := WrapProfile(&testProfile)
	c := WrapProfile(nil)

	if a.Is(b) == false {
		t.Fatal("profiles should match")
	} else if b.Is(a) == false {
		t.Fatal("profiles should match")
	} else if a.Is(c) == true {
		t.Fatal("profiles should not match")
	} else if c.Is(b) == true {
		t.Fatal("profiles should not match")
	}
}

func TestProfileGet(t *testing.T) {
	p := WrapProfile(&testProfile)
	for idx, v := range testProfile.Data {
		if p.Get(idx) != float64(v) {
			t.Fatalf("expected value %f at index %d, got %f", v, idx, p.Get(idx))
		}
	}
}

func TestProfileGetRoundsToShortestDecimal(t *testing.T) {
	// 0.6 has no exact float32 representation, a plain cast to float64
	// would expose the stored approximation instead of 0.6
	p := WrapProfile(&pb.Profile{Id: 1, Data: []float32{0.6}})
	if got := p.Get(0); got != 0.6 {
		t.Fatalf("expected 0.6, got %v", got)
	}
}

func TestProfileGetWithInvalidIndex(t *testing.T) {
	assertPanic(t, "access to an invalid index should panic", func() {
		WrapProfile(&testProfile).Get(666)
	})
}

func TestProfileMeta(t *testing.T) {
	p := WrapProfile(&testProfile)
	for name, expected := range testProfile.Meta {
		if got := p.Meta(name); got != expected {
			t.Fatalf("expected meta '%s', got '%s'", expected, got)
		}
	}

	if got := p.Meta("idontexist"); got != "" {
		t.Fatalf("expected empty meta, got '%s'", got)
	}
}

func TestProfileEqual(t *testing.T) {
	a := WrapProfile(&testProfile)
	b := WrapProfile(&testProfile)
	c := WrapProfile(&testShorterProfile)

	if a.Equal(b) == false {
		t.Fatal("profiles should be equal")
	} else if a.Equal(c) == true {
		t.Fatal("profiles should not be equal")
	}
}

func TestProfileDot(t *testing.T) {
	a := WrapProfile(&testProfile)
	b := WrapProfile(&testProfile)

	// 3*3 + 6*6 + 9*9
	if dot := a.Dot(b); dot != 126.0 {
		t.Fatalf("expected dot product of 126.0, got %f", dot)
	}
}

func TestProfileMagnitude(t *testing.T) {
	a := WrapProfile(&testProfile)
	expected := math.Sqrt(126.0)
	if mag := a.Magnitude(); mag != expected {
		t.Fatalf("expected magnitude of %f, got %f", expected, mag)
	}

	z := WrapProfile(&testZeroProfile)
	if mag := z.Magnitude(); mag != 0.0 {
		t.Fatalf("expected zero magnitude, got %f", mag)
	}
}

func TestProfileCosine(t *testing.T) {
	a := WrapProfile(&testProfile)
	b := WrapProfile(&testProfile)
	z := WrapProfile(&testZeroProfile)

	if cos := a.Cosine(b); math.Abs(cos-1.0) > 1e-6 {
		t.Fatalf("expected cosine similarity of 1.0, got %f", cos)
	} else if cos := a.Cosine(z); cos != 0.0 {
		t.Fatalf("expected cosine similarity of 0.0, got %f", cos)
	}
}

func TestProfileGaussian(t *testing.T) {
	a := WrapProfile(&testProfile)
	b := WrapProfile(&testProfile)
	z := WrapProfile(&testZeroProfile)

	if sim := a.Gaussian(b); sim != 1.0 {
		t.Fatalf("expected gaussian similarity of 1.0, got %f", sim)
	}

	if sim := a.Gaussian(z); sim <= 0.0 || sim >= 1.0 {
		t.Fatalf("expected gaussian similarity in (0,1), got %f", sim)
	}
}
