package backend

import (
	"testing"
)

func wrapWithSize(impl implementation, b *testing.B, size int) {
	data := make([]float32, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = impl.Wrap(size, data)
	}
}

func dotWithSize(impl implementation, b *testing.B, size int) {
	adata := randomVector(size)
	bdata := randomVector(size)

	va := impl.Wrap(size, adata)
	vb := impl.Wrap(size, bdata)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = impl.Dot(va, vb)
	}
}

func BenchmarkBackendBLAS32Wrap128(b *testing.B) {
	wrapWithSize(blas{}, b, 128)
}

func BenchmarkBackendBLAS32Wrap1024(b *testing.B) {
	wrapWithSize(blas{}, b, 1024)
}

func BenchmarkBackendBLAS32Dot128(b *testing.B) {
	dotWithSize(blas{}, b, 128)
}

func BenchmarkBackendBLAS32Dot1024(b *testing.B) {
	dotWithSize(blas{}, b, 1024)
}

func BenchmarkBackendNaiveWrap128(b *testing.B) {
	wrapWithSize(naive{}, b, 128)
}

func BenchmarkBackendNaiveWrap1024(b *testing.B) {
	wrapWithSize(naive{}, b, 1024)
}

func BenchmarkBackendNaiveDot128(b *testing.B) {
	dotWithSize(naive{}, b, 128)
}

func BenchmarkBackendNaiveDot1024(b *testing.B) {
	dotWithSize(naive{}, b, 1024)
}
