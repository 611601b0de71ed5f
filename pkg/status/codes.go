package status

import "github.com/vacsync/vacsync-go/pkg/property"

// CheckCode reports whether an inbound enum property carries a known
// device code. Properties that are not enums always pass.
func CheckCode(id property.ID, v property.Value) (string, bool) {
	n, ok := v.AsInt()
	if !ok {
		return "", true
	}
	switch id {
	case property.Status:
		s := ParseStatus(n)
		return s.String(), s != StatusUnknown
	case property.TaskStatus:
		s := ParseTaskStatus(n)
		return s.String(), s != TaskStatusUnknown
	case property.State:
		s := ParseState(n)
		return s.String(), s != StateUnknown
	case property.ChargingStatus:
		s := ParseChargingStatus(n)
		return s.String(), s != ChargingStatusUnknown
	case property.SelfWashBaseStatus:
		s := ParseSelfWashBaseStatus(n)
		return s.String(), s != SelfWashBaseStatusUnknown
	case property.Error:
		s := ParseErrorCode(n)
		return s.String(), s != ErrorCodeUnknown
	case property.SuctionLevel:
		s := ParseSuctionLevel(n)
		return s.String(), s != SuctionLevelUnknown
	case property.WaterTank:
		s := ParseWaterTank(n)
		return s.String(), s != WaterTankUnknown
	}
	return "", true
}
