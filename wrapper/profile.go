package wrapper

import (
	"math"
	"reflect"
	"strconv"

	"github.com/kernlab/vitals/backend"

	pb "github.com/kernlab/vitals/proto"
)

// Profile is the wrapper for a single *pb.Profile object used to give
// scriptlets access to specific health profiles during execution.
// Every scriptlet gets this read-only view of the dataset while being
// evaluated.
type Profile struct {
	// ID can be used to read the profile identifier.
	ID uint64
	// Size is the number of elements in the vector data.
	Size int

	profile *pb.Profile
	vec     backend.Vector
}

// WrapProfile creates a Profile wrapper around a raw *pb.Profile object.
func WrapProfile(profile *pb.Profile) *Profile {
	w := &Profile{profile: profile}
	if profile != nil {
		w.ID = profile.Id
		w.Size = len(profile.Data)
		w.vec = backend.Wrap(w.Size, profile.Data)
	}
	return w
}

// IsNull returns true if the profile wrapped by this object is nil.
func (w *Profile) IsNull() bool {
	return w.profile == nil
}

// Is returns true if this wrapped profile and another wrapped profile
// have the same identifier, in other words if they are just two
// wrappers around the same *pb.Profile object.
func (w *Profile) Is(b *Profile) bool {
	if w.profile == nil || b.profile == nil {
		return false
	}
	return w.ID == b.ID
}

// Get returns the index-th element of the *pb.Profile contained by
// this wrapper. The value is returned as a float64 rounded to the
// shortest decimal representation of the stored float32, so that a
// scriptlet storing 0.6 reads back 0.6 and not the conversion noise
// ( 0.6000000238418579 ) of a plain float32 to float64 cast.
func (w *Profile) Get(index int) float64 {
	s := strconv.FormatFloat(float64(w.profile.Data[index]), 'g', -1, 32)
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Meta returns the value of a profile meta data given its name or an
// empty string if not found.
func (w *Profile) Meta(name string) string {
	return w.profile.Meta[name]
}

// Equal returns whether the vectors have the same size and are element-wise equal.
func (w *Profile) Equal(b *Profile) bool {
	return reflect.DeepEqual(w.profile.Data, b.profile.Data)
}

// Dot performs the dot product between a vector and another.
func (w *Profile) Dot(b *Profile) float64 {
	return backend.Dot(w.vec, b.vec)
}

// Magnitude returns the magnitude of the vector.
func (w *Profile) Magnitude() float64 {
	return math.Sqrt(w.Dot(w))
}

// Cosine returns the cosine similarity between a vector and another.
func (w *Profile) Cosine(b *Profile) float64 {
	cos := 0.0
	if den := w.Magnitude() * b.Magnitude(); den != 0.0 {
		cos = w.Dot(b) / den
	}
	return cos
}

// Gaussian returns the average gaussian similarity between the
// elements of a vector and another, 1.0 for identical vectors.
func (w *Profile) Gaussian(b *Profile) float64 {
	if w.Size == 0 {
		return 0
	}
	sum := 0.0
	for i, va := range w.profile.Data {
		d := float64(va - b.profile.Data[i])
		sum += math.Exp(-d * d)
	}
	return sum / float64(w.Size)
}
