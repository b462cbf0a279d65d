// Package pulse synthesizes transmit pulse shapes: raised-cosine and
// root-raised-cosine FIR responses with unit energy, and the classic CPM
// frequency pulses (LREC, LRC, GMSK).
package pulse
