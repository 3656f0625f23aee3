package fft

import "math"

// ExpI returns the complex exponential e^{i*theta} = (cos theta, sin theta).
func ExpI(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

// Transform computes the forward discrete Fourier transform of in.
//
// The input is zero-padded to the next power of two; the returned slice
// holds the frequency-domain coefficients for the padded length in
// standard bin order (bin 0 = DC). For real-valued input, bins k and N-k
// are conjugate-symmetric.
func Transform(in []complex128) ([]complex128, error) {
	buf, err := FromComplex(in)
	if err != nil {
		return nil, err
	}
	return transform(buf, false).data, nil
}

// TransformReal computes the forward transform of a real-valued sequence.
func TransformReal(in []float64) ([]complex128, error) {
	buf, err := FromReal(in)
	if err != nil {
		return nil, err
	}
	return transform(buf, false).data, nil
}

// Inverse computes the inverse discrete Fourier transform of in.
//
// The recursion is identical to the forward transform with the twiddle
// sign flipped; every output element is scaled by 1/N where N is the
// padded length. Inverse(Transform(x)) recovers the zero-padded
// extension of x up to floating-point rounding.
func Inverse(in []complex128) ([]complex128, error) {
	buf, err := FromComplex(in)
	if err != nil {
		return nil, err
	}
	out := transform(buf, true).data
	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// transform runs the recursive radix-2 decimation-in-time algorithm on
// an owned buffer. It consumes b and returns a newly owned result of the
// same length.
func transform(b *Buffer, inverse bool) *Buffer {
	n := b.Len()
	if n == 1 {
		return b
	}

	even, odd := b.Split()
	even = transform(even, inverse)
	odd = transform(odd, inverse)

	result := make([]complex128, n)
	copy(result, even.data)
	copy(result[n/2:], odd.data)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := 0; k < n/2; k++ {
		w := ExpI(sign * 2 * math.Pi * float64(k) / float64(n))
		// result[k+n/2] still holds the odd-half coefficient; read it
		// before overwriting result[k].
		x := result[k]
		y := result[k+n/2]
		result[k] = x + w*y
		result[k+n/2] = x - w*y
	}

	return &Buffer{data: result}
}
