// Package window generates cosine-sum window functions (rectangular, Hann,
// Hamming, Blackman) used to taper FIR kernels before application.
package window
