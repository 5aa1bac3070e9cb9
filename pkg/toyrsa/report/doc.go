// Package report renders the outcome of one demo session: the generated key
// pair, the encryption round trip, both attacks and the time each step took.
//
// Three encodings are supported. FormatText reproduces the classic console
// printout, FormatJSON and FormatCBOR emit the same Run as structured data for
// scripts that compare runs. None of them is meant to be read back as a key.
package report
