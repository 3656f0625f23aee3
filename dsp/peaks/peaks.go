package peaks

import (
	"errors"

	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

// Sentinel errors returned by peak detection.
var (
	// ErrEmptySignal is returned when no samples are supplied.
	ErrEmptySignal = errors.New("peaks: empty signal")

	// ErrInvalidSampleRate is returned for a zero or negative sample rate.
	ErrInvalidSampleRate = errors.New("peaks: sample rate must be > 0")
)

// epsilon is the double-precision machine epsilon. Magnitudes below it
// are indistinguishable from FFT rounding noise and are treated as zero
// when compared against the threshold.
const epsilon = 0x1p-52

// Component is a detected spectral peak: a physical frequency in Hz and
// the normalized magnitude of the spectrum at that frequency.
type Component struct {
	Freq  float64
	Coeff float64
}

// Real constrains the sample types accepted by [Find] to numeric types
// losslessly convertible to float64 for analysis purposes.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Find detects spectral peaks in a real-valued sample sequence.
//
// The samples are forward-transformed (zero-padded to the next power of
// two N), reduced to the one-sided magnitude spectrum |X[k]|/N for
// k in [0, N/2), and scanned for strict local maxima above threshold.
// The padded length N is used for both the bin width sampleRate/N and
// the scan bounds, keeping the frequency mapping consistent with the
// spectrum actually scanned.
//
// Components are returned in increasing-frequency order. The DC bin and
// the last bin of the half-spectrum are never reported: the 3-point
// local-maximum test needs a neighbor on each side.
func Find[T Real](samples []T, sampleRate int, threshold float64) ([]Component, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	signal := make([]float64, len(samples))
	for i, s := range samples {
		signal[i] = float64(s)
	}

	bins, err := fft.TransformReal(signal)
	if err != nil {
		return nil, err
	}

	mag, err := spectrum.OneSided(bins)
	if err != nil {
		return nil, err
	}

	binSize := float64(sampleRate) / float64(len(bins))
	return FindSpectrum(mag, binSize, threshold), nil
}

// FindSpectrum scans an already-computed one-sided magnitude spectrum
// for strict local maxima above threshold. binSize is the width of one
// bin in Hz.
func FindSpectrum(mag []float64, binSize, threshold float64) []Component {
	var found []Component
	for k := 1; k+1 < len(mag); k++ {
		v := flushTiny(mag[k])
		if v <= threshold {
			continue
		}
		if flushTiny(mag[k-1]) < v && v > flushTiny(mag[k+1]) {
			found = append(found, Component{
				Freq:  float64(k) * binSize,
				Coeff: mag[k],
			})
		}
	}
	return found
}

// flushTiny clamps sub-epsilon magnitudes to exact zero so rounding
// noise cannot clear a zero threshold.
func flushTiny(x float64) float64 {
	if x < epsilon {
		return 0
	}
	return x
}
