package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT computes the discrete Fourier transform of a real signal.
func FFT(data []float64) []complex128 {
	return fft.FFTReal(data)
}

// PowerSpectrum returns the magnitudes of the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	spec := FFT(data)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component of signal sampled every dt seconds. The signal is mean-centred
// and zero-padded to a power of two.
func DominantFrequency(signal []float64, dt float64) float64 {
	if len(signal) < 2 || dt <= 0 {
		return 0
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	n := 1
	for n < len(signal) {
		n <<= 1
	}
	padded := make([]float64, n)
	for i, v := range signal {
		padded[i] = v - mean
	}

	ps := PowerSpectrum(padded)
	if len(ps) < 2 {
		return 0
	}
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	return float64(peak) / (float64(n) * dt)
}
