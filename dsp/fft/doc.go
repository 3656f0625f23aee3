// Package fft implements a recursive radix-2 Cooley-Tukey discrete
// Fourier transform over an owned complex buffer.
//
// Inputs of arbitrary length are zero-padded to the next power of two
// before transforming, so the output length is always the smallest power
// of two >= the input length. The inverse transform flips the twiddle
// sign and normalizes by 1/N, so Inverse(Transform(x)) recovers the
// zero-padded extension of x up to floating-point rounding.
//
// The package favors algorithmic clarity over throughput: the transform
// is the canonical recursive decimation-in-time formulation, not an
// iterative in-place variant.
package fft
