package spectrum

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySpectrum is returned when a spectrum view is requested for a
// zero-length coefficient slice.
var ErrEmptySpectrum = errors.New("spectrum: empty spectrum")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The square roots run through SIMD-optimized kernels when available;
// scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// OneSided returns the first N/2 bins of the magnitude spectrum scaled
// by 1/N, where N = len(in).
//
// This is the normalized half-spectrum of a real-valued signal: the
// upper half of the full spectrum is conjugate-symmetric and carries no
// extra information. For N = 1 the result is empty (there is no
// non-redundant half).
func OneSided(in []complex128) ([]float64, error) {
	if len(in) == 0 {
		return nil, ErrEmptySpectrum
	}

	half := Magnitude(in[:len(in)/2])
	if len(half) > 0 {
		vecmath.ScaleBlockInPlace(half, 1/float64(len(in)))
	}
	return half, nil
}
