// Package spectrum converts complex frequency-domain coefficients into
// real-valued spectra.
//
// The package does not implement a transform itself; it consumes the
// bins produced by dsp/fft (or any other backend emitting standard bin
// order) and provides magnitude, power, and normalized one-sided views.
package spectrum
