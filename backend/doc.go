/*
Package backend abstracts the numeric backends available to the kernels,
currently implemented:

	- blas32 (gonum blas32 interface, the default)
	- naive (plain Go loops, no optimizations)

Future:

	- cuda
	- opencl
*/
package backend
