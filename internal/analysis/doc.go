// Package analysis provides spectral tools for checking sampled animations.
//
//   - [FFT]: radix-2 Cooley-Tukey transform
//   - [PowerSpectrum]: magnitude of the positive-frequency bins
//   - [DominantFrequency]: strongest oscillation in a sampled signal
//
// # Example
//
// An underdamped spring should ring at its damped frequency wd / 2π:
//
//	tr := trajectory.SampleFPS(cfg, 0, 1, 60)
//	hz, _ := analysis.DominantFrequency(tr.Values, 60)
package analysis
