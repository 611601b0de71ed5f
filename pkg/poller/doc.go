// Package poller keeps the property store in sync with the device.
//
// A Poller fetches every addressable property in chunks, reconciles the
// results against pending optimistic writes, sweeps expired writes and
// runs the command layer's confirmation checks. The interval between
// cycles is re-derived after every cycle from the device state, so a
// cleaning robot is polled faster than an idle one and a failing device
// is polled slower.
//
// Pushed values enter through the same Ingest path as polled ones. Any
// store change arms a short debounce window; the external change
// callback runs once when it closes.
//
// After FailureThreshold consecutive failed cycles the device is marked
// unavailable. The first successful cycle marks it available again.
package poller
