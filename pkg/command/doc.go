// Package command turns user intents into device writes and actions.
//
// Every command follows the same steps: check the derived-status
// preconditions, coerce the input into a device value, apply the intended
// state to the property store before the device answers, dispatch the
// transport call, and roll back on failure. Successful calls ask the
// session for a confirmation refresh; failed ones ask for a quick re-sync.
//
// Settings are dispatched through a closed table keyed by Setting, so every
// writable setting has exactly one validation and encoding path.
//
// The package also owns the go-to state machine, which emulates navigation
// to a point on robots without native cruise support by running a small
// zone job with temporarily changed settings and restoring them afterwards.
package command
