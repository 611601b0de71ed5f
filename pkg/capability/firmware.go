package capability

import (
	"fmt"
	"strconv"
	"strings"
)

// Firmware is a parsed firmware version such as "4.3.9_1172".
type Firmware struct {
	Major uint16
	Minor uint16
	Patch uint16
	Build uint32
}

// ParseFirmware parses "major.minor.patch_build". The build suffix and
// trailing version components are optional.
func ParseFirmware(s string) (Firmware, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Firmware{}, fmt.Errorf("invalid firmware %q: empty", s)
	}

	var fw Firmware
	version, build, hasBuild := strings.Cut(s, "_")
	if hasBuild {
		n, err := strconv.ParseUint(build, 10, 32)
		if err != nil {
			return Firmware{}, fmt.Errorf("invalid firmware %q: bad build", s)
		}
		fw.Build = uint32(n)
	}

	parts := strings.Split(version, ".")
	if len(parts) > 3 {
		return Firmware{}, fmt.Errorf("invalid firmware %q: too many components", s)
	}
	fields := []*uint16{&fw.Major, &fw.Minor, &fw.Patch}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Firmware{}, fmt.Errorf("invalid firmware %q: bad component %q", s, p)
		}
		*fields[i] = uint16(n)
	}
	return fw, nil
}

// Compare returns -1, 0 or 1.
func (f Firmware) Compare(o Firmware) int {
	a := [4]uint32{uint32(f.Major), uint32(f.Minor), uint32(f.Patch), f.Build}
	b := [4]uint32{uint32(o.Major), uint32(o.Minor), uint32(o.Patch), o.Build}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// AtLeast reports whether f >= o.
func (f Firmware) AtLeast(o Firmware) bool { return f.Compare(o) >= 0 }

func (f Firmware) String() string {
	return fmt.Sprintf("%d.%d.%d_%d", f.Major, f.Minor, f.Patch, f.Build)
}
