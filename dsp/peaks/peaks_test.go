package peaks

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

func TestFindPureSine(t *testing.T) {
	const (
		sampleRate = 4096
		n          = 4096
		freq       = 512.0
		amplitude  = 2.0
	)

	samples, err := signal.Sine(freq, sampleRate, amplitude, n)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}

	found, err := Find(samples, sampleRate, 0.5)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d peaks, want exactly 1: %v", len(found), found)
	}

	binSize := float64(sampleRate) / float64(n)
	if math.Abs(found[0].Freq-freq) > binSize {
		t.Fatalf("peak frequency %v not within one bin of %v", found[0].Freq, freq)
	}

	// One-sided normalization puts a full-scale sine at amplitude/2.
	if math.Abs(found[0].Coeff-amplitude/2) > 1e-6 {
		t.Fatalf("peak coefficient %v, want ~%v", found[0].Coeff, amplitude/2)
	}
}

func TestFindMultipleSines(t *testing.T) {
	const (
		sampleRate = 4096
		n          = 4096
	)

	samples, err := signal.Mix([]signal.SineComponent{
		{FreqHz: 256, Amplitude: 1.0},
		{FreqHz: 768, Amplitude: 0.5},
	}, sampleRate, n)
	if err != nil {
		t.Fatalf("Mix error: %v", err)
	}

	found, err := Find(samples, sampleRate, 0.1)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d peaks, want 2: %v", len(found), found)
	}

	if math.Abs(found[0].Freq-256) > 1 || math.Abs(found[1].Freq-768) > 1 {
		t.Fatalf("peaks not at expected frequencies: %v", found)
	}
	if found[0].Freq >= found[1].Freq {
		t.Fatalf("peaks not in increasing-frequency order: %v", found)
	}
	if math.Abs(found[0].Coeff-0.5) > 1e-6 || math.Abs(found[1].Coeff-0.25) > 1e-6 {
		t.Fatalf("unexpected peak coefficients: %v", found)
	}
}

func TestFindUsesPaddedLength(t *testing.T) {
	const sampleRate = 4096

	// 3000 samples pad to 4096; Find must agree with a manual pipeline
	// run at the padded length.
	samples, err := signal.Sine(440, sampleRate, 1.0, 3000)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}

	found, err := Find(samples, sampleRate, 0.05)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}

	bins, err := fft.TransformReal(samples)
	if err != nil {
		t.Fatalf("TransformReal error: %v", err)
	}
	if len(bins) != 4096 {
		t.Fatalf("padded length: got %d, want 4096", len(bins))
	}

	mag, err := spectrum.OneSided(bins)
	if err != nil {
		t.Fatalf("OneSided error: %v", err)
	}

	want := FindSpectrum(mag, float64(sampleRate)/float64(len(bins)), 0.05)
	if len(found) != len(want) {
		t.Fatalf("Find and manual pipeline disagree: %v vs %v", found, want)
	}
	for i := range found {
		if found[i] != want[i] {
			t.Fatalf("component %d differs: %v vs %v", i, found[i], want[i])
		}
	}
}

func TestFindGenericInput(t *testing.T) {
	const (
		sampleRate = 1024
		n          = 1024
		freq       = 128.0
	)

	reference, err := signal.Sine(freq, sampleRate, 1000, n)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}

	quantized := make([]int16, n)
	for i, v := range reference {
		quantized[i] = int16(math.Round(v))
	}

	found, err := Find(quantized, sampleRate, 100)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d peaks, want 1: %v", len(found), found)
	}
	if math.Abs(found[0].Freq-freq) > 1 {
		t.Fatalf("peak frequency %v, want ~%v", found[0].Freq, freq)
	}
}

func TestFindDCOnlySignal(t *testing.T) {
	found, err := Find(signal.DC(5, 64), 64, 0.1)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	// All energy sits in the DC bin, which is never a peak center.
	if len(found) != 0 {
		t.Fatalf("DC signal must yield no peaks, got %v", found)
	}
}

func TestFindSingleSample(t *testing.T) {
	found, err := Find([]float64{1}, 8, 0)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("single-sample signal has no scannable bins, got %v", found)
	}
}

func TestFindErrors(t *testing.T) {
	if _, err := Find([]float64{}, 8, 0); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("empty signal error = %v, want ErrEmptySignal", err)
	}
	if _, err := Find([]float64{1, 2}, 0, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("zero sample rate error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := Find([]float64{1, 2}, -44100, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("negative sample rate error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestFindSpectrum(t *testing.T) {
	mag := []float64{0, 1, 0, 2, 5, 2, 0.5}

	found := FindSpectrum(mag, 10, 0.9)
	if len(found) != 2 {
		t.Fatalf("got %d peaks, want 2: %v", len(found), found)
	}
	if found[0].Freq != 10 || found[0].Coeff != 1 {
		t.Fatalf("first peak = %v, want {10 1}", found[0])
	}
	if found[1].Freq != 40 || found[1].Coeff != 5 {
		t.Fatalf("second peak = %v, want {40 5}", found[1])
	}
}

func TestFindSpectrumThresholdIsExclusive(t *testing.T) {
	// A bin equal to the threshold is not a peak; it must exceed it.
	found := FindSpectrum([]float64{0, 1, 0}, 1, 1)
	if len(found) != 0 {
		t.Fatalf("bin equal to threshold reported as peak: %v", found)
	}

	found = FindSpectrum([]float64{0, 1, 0}, 1, 0.99)
	if len(found) != 1 {
		t.Fatalf("bin above threshold not reported: %v", found)
	}
}

func TestFindSpectrumEdgeBinsExcluded(t *testing.T) {
	// Maxima in the first and last bins have no complete neighborhood.
	found := FindSpectrum([]float64{9, 1, 0, 1, 9}, 1, 0.5)
	if len(found) != 0 {
		t.Fatalf("edge bins must never be peak centers, got %v", found)
	}
}

func TestFindSpectrumFlushesRoundingNoise(t *testing.T) {
	// Sub-epsilon values are rounding noise and must not clear a zero
	// threshold.
	found := FindSpectrum([]float64{0, 1e-17, 0, 1e-17, 0}, 1, 0)
	if len(found) != 0 {
		t.Fatalf("rounding noise reported as peaks: %v", found)
	}
}
