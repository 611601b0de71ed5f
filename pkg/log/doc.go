// Package log provides structured trace logging for device sessions.
//
// This package defines the Logger interface and Event types for capturing
// what a session does to its device mirror: property changes, optimistic
// write bookkeeping, transport calls and session state changes. It is
// separate from operational logging (slog) - the trace provides a complete
// machine-readable record for debugging sync problems after the fact.
//
// # Basic Usage
//
// A session takes its trace sink as an option:
//
//	file, _ := log.NewFileLogger("/var/log/vacsync/vacuum.vlog")
//	sess, _ := session.New(cfg, tr, session.WithTraceLogger(
//	    log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), file),
//	))
//
// Tests usually pass a *Recorder and inspect what it captured.
//
// # Event Types
//
// Each event carries exactly one payload:
//   - PropertyEvent: a store mutation from a push, poll or local write
//   - LedgerEvent: begin/confirm/discard/accept/restore/rollback steps
//   - CommandEvent: property writes, action calls and batch fetches
//   - StateChangeEvent: availability, go-to and cleanup transitions
//   - ErrorEventData: transport and decoding failures
//
// # File Format
//
// Trace files use CBOR encoding with .vlog extension. The vacsync-log CLI
// tool provides viewing, filtering and summary statistics.
package log
