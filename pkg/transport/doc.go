// Package transport defines how the engine talks to a device.
//
// A Transport reads properties in batches, writes one property at a time
// and invokes actions, addressing everything by (siid, piid) or
// (siid, aiid). Devices also push property changes on their own; those
// arrive through a PushHandler as a method name plus parameters, the same
// shape as the MQTT push feed.
//
// Simulator is an in-memory device used by tests and by the vacsync
// command when no real device is configured.
package transport
