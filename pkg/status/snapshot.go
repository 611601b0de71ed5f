package status

import "github.com/vacsync/vacsync-go/pkg/capability"

// MapSnapshot is the state the map renderer needs, taken in one pass.
type MapSnapshot struct {
	Docked          bool
	Charging        bool
	Running         bool
	Returning       bool
	Started         bool
	Paused          bool
	FastMapping     bool
	Cruising        bool
	ZoneCleaning    bool
	SegmentCleaning bool
	SpotCleaning    bool
	MopInstalled    bool
	CleaningMode    CleaningMode
	GoTo            *GoToTarget

	LidarNavigation bool
	SelfWashBase    bool
	MultiFloorMap   bool
	CameraStreaming bool
}

// MapSnapshot derives the renderer state.
func (v *View) MapSnapshot() MapSnapshot {
	s := MapSnapshot{
		Docked:          v.Docked(),
		Charging:        v.Charging(),
		Running:         v.Running(),
		Returning:       v.Returning(),
		Started:         v.Started(),
		Paused:          v.Paused(),
		FastMapping:     v.FastMapping(),
		Cruising:        v.Cruising(),
		ZoneCleaning:    v.ZoneCleaning(),
		SegmentCleaning: v.SegmentCleaning(),
		SpotCleaning:    v.SpotCleaning(),
		MopInstalled:    v.MopInstalled(),
		CleaningMode:    v.CleaningMode(),
		LidarNavigation: v.Has(capability.LidarNavigation),
		SelfWashBase:    v.Has(capability.SelfWashBase),
		MultiFloorMap:   v.Has(capability.MultiFloorMap),
		CameraStreaming: v.Has(capability.CameraStreaming),
	}
	if t, ok := v.GoTo(); ok {
		s.GoTo = &t
	}
	return s
}
