// File: matrix/matrix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dense matrix multiplication kernels over flat row-major float32
// slices. The serial kernel is the reference; the unrolled kernel
// restructures the loops for 8-wide accumulation, and the parallel
// variants in parallel.go distribute rows across workers.

package matrix

import (
	"github.com/momentics/hioload-sync/api"
)

// checkDims validates that a is m-by-n and b is n-by-p.
func checkDims(a, b []float32, m, n, p int) error {
	if m <= 0 || n <= 0 || p <= 0 || len(a) != m*n || len(b) != n*p {
		return api.ErrDimensionMismatch
	}
	return nil
}

// Multiply computes the product of an m-by-n matrix a and an n-by-p
// matrix b, both row-major, returning an m-by-p result.
func Multiply(a, b []float32, m, n, p int) ([]float32, error) {
	if err := checkDims(a, b, m, n, p); err != nil {
		return nil, err
	}
	result := make([]float32, m*p)
	for i := 0; i < m; i++ {
		multiplyRow(a, b, result[i*p:(i+1)*p], i, n, p)
	}
	return result, nil
}

// multiplyRow computes one output row as the dot products of row i of a
// with every column of b. Shared by the serial and parallel kernels.
func multiplyRow(a, b, out []float32, i, n, p int) {
	for j := 0; j < p; j++ {
		var sum float32
		for k := 0; k < n; k++ {
			sum += a[i*n+k] * b[k*p+j]
		}
		out[j] = sum
	}
}

// MultiplyUnrolled computes the same product with the k loop hoisted and
// the inner j loop unrolled 8 wide, trading the dot-product order for
// streaming access over b and the output row.
func MultiplyUnrolled(a, b []float32, m, n, p int) ([]float32, error) {
	if err := checkDims(a, b, m, n, p); err != nil {
		return nil, err
	}
	result := make([]float32, m*p)
	for i := 0; i < m; i++ {
		unrolledRow(a, b, result[i*p:(i+1)*p], i, n, p)
	}
	return result, nil
}

// unrolledRow accumulates a[i][k]*b[k][:] into out, 8 lanes at a time.
func unrolledRow(a, b, out []float32, i, n, p int) {
	for k := 0; k < n; k++ {
		s := a[i*n+k]
		bk := b[k*p : (k+1)*p]
		j := 0
		for ; j+8 <= p; j += 8 {
			out[j+0] += s * bk[j+0]
			out[j+1] += s * bk[j+1]
			out[j+2] += s * bk[j+2]
			out[j+3] += s * bk[j+3]
			out[j+4] += s * bk[j+4]
			out[j+5] += s * bk[j+5]
			out[j+6] += s * bk[j+6]
			out[j+7] += s * bk[j+7]
		}
		for ; j < p; j++ {
			out[j] += s * bk[j]
		}
	}
}
