package backend

// Vector is an opaque interface to whatever the specific backend implementation
// will return as an object wrapper/reference.
type Vector interface{}

// each backend must implement these methods.
type implementation interface {
	Name() string
	Space() uint64

	Wrap(size int, data []float32) Vector

	Dot(a, b Vector) float64
}

// TODO: pick at runtime the best backend available ( CUDA, OpenCL or BLAS32 ).
var impl = blas{}

// Name returns the name of the backend implementation in use.
func Name() string {
	return impl.Name()
}

// Space returns the total physical memory available to the backend.
func Space() uint64 {
	return impl.Space()
}

// Wrap wraps a raw float32 buffer into the backend specific vector object.
func Wrap(size int, data []float32) Vector {
	return impl.Wrap(size, data)
}

// Dot performs the dot product between two wrapped vectors.
func Dot(a, b Vector) float64 {
	return impl.Dot(a, b)
}
