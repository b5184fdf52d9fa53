/*
Package kernel implements the dense float32 kernels used for health profile
analysis:

	- SyndromeScore (weighted pattern scoring)
	- Standardize (per-feature standardization)
	- CosineMatch (cosine similarity against a database matrix)
	- ThresholdTransform (threshold based nonlinear transform)
	- GaussianMatch (gaussian pattern similarity)

Each kernel is stateless, takes immutable input buffers plus their declared
shapes and returns a freshly allocated output buffer that the caller owns.
Declared dimensions of paired inputs are validated up front and a shape
mismatch is reported as an error; past that boundary the hot loops perform
no bounds checking.

Kernels split their outer loop across a worker per available CPU, each worker
writing to a disjoint region of the output buffer. Summation order inside a
parallel loop is not deterministic across runs, results are correct to
floating point tolerance but not bit exact.
*/
package kernel
