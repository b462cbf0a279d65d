// Package spectrum provides power and magnitude computation for complex
// spectra and a DC-centered frequency axis helper.
package spectrum
