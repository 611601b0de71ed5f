// Package ledger tracks optimistic property writes until the device
// confirms, contradicts or ignores them.
//
// A local write is applied to the property store immediately so callers
// see the new value, and a DirtyEntry remembers both the pending and the
// previous value. Inbound values are then reconciled against the entry:
//
//   - matching the pending value confirms the write
//   - differing within the discard window is stale and dropped
//   - differing after the discard window is accepted
//
// Entries that never see a confirmation are swept after the restore
// window: the previous value is restored if the live value still equals
// the pending one. Failed writes are rolled back immediately.
//
// Device-driven properties flagged non_reconciled in the property table
// bypass the ledger entirely.
package ledger
