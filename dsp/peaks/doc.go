// Package peaks detects dominant frequency components in a sampled
// signal.
//
// A signal is forward-transformed with dsp/fft, reduced to its
// normalized one-sided magnitude spectrum, and scanned for strict local
// maxima above a caller-supplied threshold. Each detected maximum maps
// back to a physical frequency through the bin width sampleRate/N, where
// N is the padded transform length.
package peaks
