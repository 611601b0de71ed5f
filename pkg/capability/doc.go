// Package capability derives a model's feature profile from the catalog.
//
// The catalog is a compressed blob (base64 of zlib-compressed JSON) listing
// capability flags, each with a bit position and an optional minimum
// firmware, and a bitset per device model. A flag is enabled for a device
// when its model has the bit set and the device firmware is at least the
// flag's minimum.
//
// Load runs once, on the first successful property fetch. The resulting
// Profile also carries the option lists (suction levels, cleaning modes and
// so on) pruned for the model, so later lookups never recompute them.
package capability
