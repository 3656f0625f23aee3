// Package signal generates deterministic test vectors: sine waves,
// sums of sines, impulses, DC offsets, and seeded white noise.
//
// The generators exist so that callers of the analysis packages (and
// their tests) can synthesize known signals without an audio decoder.
package signal
