package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// SineComponent describes one sinusoid in a [Mix].
type SineComponent struct {
	FreqHz    float64
	Amplitude float64
	Phase     float64
}

// Sine generates a sine wave sampled at sampleRate Hz.
func Sine(freqHz, sampleRate, amplitude float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("signal: sine sample rate must be > 0: %f", sampleRate)
	}
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Mix generates the sum of the given sinusoids sampled at sampleRate Hz.
func Mix(components []SineComponent, sampleRate float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("signal: mix samples must be > 0: %d", n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("signal: mix sample rate must be > 0: %f", sampleRate)
	}
	out := make([]float64, n)
	for _, c := range components {
		step := 2 * math.Pi * c.FreqHz / sampleRate
		for i := range out {
			out[i] += c.Amplitude * math.Sin(step*float64(i)+c.Phase)
		}
	}
	return out, nil
}

// Impulse generates a unit impulse at position pos. An out-of-range pos
// yields an all-zero signal.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// WhiteNoise generates seeded white noise in [-amplitude, amplitude].
// The same seed always produces the same sequence.
func WhiteNoise(seed int64, amplitude float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}
