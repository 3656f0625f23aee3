package fft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrEmptyInput is returned when a transform or buffer is requested
	// for a zero-length sequence. The bin-size computation downstream is
	// undefined for empty input, so it is rejected explicitly instead of
	// propagating NaN.
	ErrEmptyInput = errors.New("fft: empty input")
)

// Buffer owns an ordered sequence of complex samples whose length is
// always a power of two. It is the working storage of the recursive
// transform: construction pads, Split hands ownership of the two
// index-parity halves to the recursion.
type Buffer struct {
	data []complex128
}

// FromComplex copies v into a new Buffer, zero-padding to the next power
// of two. Input already a power of two in length (including length 1) is
// copied unchanged.
func FromComplex(v []complex128) (*Buffer, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]complex128, NextPowerOfTwo(len(v)))
	copy(data, v)
	return &Buffer{data: data}, nil
}

// FromReal lifts v to complex samples with zero imaginary parts and
// zero-pads like [FromComplex].
func FromReal(v []float64) (*Buffer, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]complex128, NextPowerOfTwo(len(v)))
	for i, x := range v {
		data[i] = complex(x, 0)
	}
	return &Buffer{data: data}, nil
}

// Len returns the padded sample count.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the underlying slice. The Buffer retains ownership;
// callers must not hold the slice across a Split.
func (b *Buffer) Data() []complex128 {
	return b.data
}

// Split consumes the buffer and partitions it into two new buffers
// holding the even- and odd-indexed samples in original order. The
// receiver is released and must not be used afterwards.
//
// Split is only defined for even lengths; the power-of-two invariant
// guarantees this for every length >= 2, and the recursion never splits
// a length-1 buffer.
func (b *Buffer) Split() (even, odd *Buffer) {
	half := len(b.data) / 2
	ev := make([]complex128, half)
	od := make([]complex128, half)
	for i := 0; i < half; i++ {
		ev[i] = b.data[2*i]
		od[i] = b.data[2*i+1]
	}
	b.data = nil
	return &Buffer{data: ev}, &Buffer{data: od}
}

// NextPowerOfTwo returns the smallest power of two >= n.
// n <= 1 yields 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
