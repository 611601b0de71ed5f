package discovery

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeMiio is the service type announced by miio devices.
	ServiceTypeMiio = "_miio._udp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the miio protocol port.
	DefaultPort = 54321

	// VacuumModelPrefix selects robot vacuums among miio devices.
	VacuumModelPrefix = "dreame.vacuum."
)

// TXT record key constants.
const (
	TXTKeyMAC   = "mac"   // Hardware address
	TXTKeyEpoch = "epoch" // Announcement format epoch
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// Errors.
var (
	ErrNotFound        = errors.New("device not found")
	ErrInvalidInstance = errors.New("invalid miio instance name")
)

// TXTRecordMap holds decoded TXT key/value pairs.
type TXTRecordMap map[string]string

// Vacuum is a robot vacuum found on the local network.
type Vacuum struct {
	// InstanceName is the mDNS instance, e.g. dreame-vacuum-r2228o_miio402136817.
	InstanceName string

	// Host is the announced host name.
	Host string

	// Port is the miio port.
	Port uint16

	// Addresses holds every IPv4 and IPv6 address seen for the instance.
	Addresses []string

	// Model is the dotted model name, e.g. dreame.vacuum.r2228o.
	Model string

	// DeviceID is the numeric device id (did).
	DeviceID string

	// MAC is the hardware address, when announced.
	MAC string
}

// String returns a one-line summary.
func (v *Vacuum) String() string {
	addr := "-"
	if len(v.Addresses) > 0 {
		addr = v.Addresses[0]
	}
	return fmt.Sprintf("%s did=%s addr=%s", v.Model, v.DeviceID, addr)
}

// ParseInstance splits a miio instance name of the form
// <vendor>-<type>-<variant>_miio<did> into the dotted model and the
// device id.
func ParseInstance(name string) (model, did string, err error) {
	head, did, ok := strings.Cut(name, "_miio")
	if !ok || head == "" || did == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInstance, name)
	}
	for _, r := range did {
		if r < '0' || r > '9' {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidInstance, name)
		}
	}
	parts := strings.Split(head, "-")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInstance, name)
	}
	// The variant itself may contain dashes.
	model = parts[0] + "." + parts[1] + "." + strings.Join(parts[2:], "-")
	return model, did, nil
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}
