// Package codec encodes and decodes the structured values carried inside
// device properties: the packed group word, schedules, DND windows,
// shortcuts, cleaning history, auto-switch settings, AI detection toggles,
// stream status, off-peak charging and custom cleaning parameters.
//
// All parsers are strict. Anything Parse accepts, Format reproduces
// byte for byte.
package codec
