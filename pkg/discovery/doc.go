// Package discovery finds robot vacuums on the local network over mDNS/DNS-SD.
//
// miio devices announce the _miio._udp service. The instance name carries
// the model and the device id:
//
//	dreame-vacuum-r2228o_miio402136817
//
// decodes to model dreame.vacuum.r2228o and did 402136817. TXT records
// optionally include the hardware address (mac).
//
// Announcements of the same instance on several interfaces are merged into
// one Vacuum whose Addresses list grows and shrinks as interfaces come and
// go.
package discovery
