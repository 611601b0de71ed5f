// Package persistence provides runtime state persistence for vacuum sessions.
//
// Most device state is re-read from the device after a restart. The few
// fields the engine derives itself (cleanup tracking, the self-clean values
// replaced by CleanGenius, the last CleanGenius mode) are kept in a JSON
// state file so they survive restarts.
package persistence
