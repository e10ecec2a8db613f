package analysis

import (
	"errors"
	"math"
	"math/cmplx"
)

var ErrNotPowerOfTwo = errors.New("analysis: fft length must be a power of two")

func FFT(data []float64) ([]complex128, error) {
	n := len(data)
	if n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	return fft(data), nil
}

func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

func PowerSpectrum(data []float64) ([]float64, error) {
	spectrum, err := FFT(data)
	if err != nil {
		return nil, err
	}
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps, nil
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component. The signal's mean is removed and it is zero-padded to a power
// of two, so resolution is sampleRate / NextPow2(len(samples)).
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) < 2 {
		return 0, nil
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	padded := make([]float64, NextPow2(len(samples)))
	for i, v := range samples {
		padded[i] = v - mean
	}

	ps, err := PowerSpectrum(padded)
	if err != nil {
		return 0, err
	}

	maxIdx, maxPower := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxIdx, maxPower = i, ps[i]
		}
	}

	return float64(maxIdx) * sampleRate / float64(len(padded)), nil
}
