// Package bits handles the binary layer of a symbol-level link simulation:
// random bit generation, MSB-first bit/symbol index conversion, fixed-width
// binary representation, and bit error rate computation.
package bits
