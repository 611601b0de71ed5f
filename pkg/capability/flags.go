package capability

import "fmt"

// Flag is a single model capability.
type Flag uint8

// Capability flags. The catalog refers to them by name.
const (
	LidarNavigation Flag = iota + 1
	AIDetection
	ObstacleImageUpload
	PetDetection
	HumanDetection
	FluidDetection
	FurnitureDetection
	SelfWashBase
	AutoEmptyBase
	MopPadLifting
	MopPadSwing
	MopPadUnmounting
	AutoAddDetergent
	AutoWaterRefilling
	WaterElectrolysis
	HotWashing
	DryingTime
	SmartMopWashing
	MopWashLevel
	MopCleanFrequency
	SelfCleanArea
	SelfCleanTime
	WetnessLevel
	CleanGenius
	CleaningRoute
	SegmentSlowCleanRoute
	MaxSuctionPower
	CustomizedCleaning
	CarpetRecognition
	CarpetCleaning
	CarpetBoost
	TightMopping
	ChildLock
	DND
	DNDTask
	OffPeakCharging
	MultiFloorMap
	MapBackup
	MapRecovery
	Shortcuts
	CruisePoint
	CruisePath
	CameraStreaming
	FillLight
	VoiceAssistant
	ObstacleAvoidance
	AutoSwitchSettings
	AIDetectionObject
	FastMapping
	SpotCleaning
	ZoneCleaning
	SegmentCleaning
	NewState
	SilverIon
	Detergent
	SecondaryFilter
	SensorCleaning
	CleaningHistory

	numFlags
)

var flagNames = [numFlags]string{
	LidarNavigation:       "lidar_navigation",
	AIDetection:           "ai_detection",
	ObstacleImageUpload:   "obstacle_image_upload",
	PetDetection:          "pet_detection",
	HumanDetection:        "human_detection",
	FluidDetection:        "fluid_detection",
	FurnitureDetection:    "furniture_detection",
	SelfWashBase:          "self_wash_base",
	AutoEmptyBase:         "auto_empty_base",
	MopPadLifting:         "mop_pad_lifting",
	MopPadSwing:           "mop_pad_swing",
	MopPadUnmounting:      "mop_pad_unmounting",
	AutoAddDetergent:      "auto_add_detergent",
	AutoWaterRefilling:    "auto_water_refilling",
	WaterElectrolysis:     "water_electrolysis",
	HotWashing:            "hot_washing",
	DryingTime:            "drying_time",
	SmartMopWashing:       "smart_mop_washing",
	MopWashLevel:          "mop_wash_level",
	MopCleanFrequency:     "mop_clean_frequency",
	SelfCleanArea:         "self_clean_area",
	SelfCleanTime:         "self_clean_time",
	WetnessLevel:          "wetness_level",
	CleanGenius:           "cleangenius",
	CleaningRoute:         "cleaning_route",
	SegmentSlowCleanRoute: "segment_slow_clean_route",
	MaxSuctionPower:       "max_suction_power",
	CustomizedCleaning:    "customized_cleaning",
	CarpetRecognition:     "carpet_recognition",
	CarpetCleaning:        "carpet_cleaning",
	CarpetBoost:           "carpet_boost",
	TightMopping:          "tight_mopping",
	ChildLock:             "child_lock",
	DND:                   "dnd",
	DNDTask:               "dnd_task",
	OffPeakCharging:       "off_peak_charging",
	MultiFloorMap:         "multi_floor_map",
	MapBackup:             "map_backup",
	MapRecovery:           "map_recovery",
	Shortcuts:             "shortcuts",
	CruisePoint:           "cruise_point",
	CruisePath:            "cruise_path",
	CameraStreaming:       "camera_streaming",
	FillLight:             "fill_light",
	VoiceAssistant:        "voice_assistant",
	ObstacleAvoidance:     "obstacle_avoidance",
	AutoSwitchSettings:    "auto_switch_settings",
	AIDetectionObject:     "ai_detection_object",
	FastMapping:           "fast_mapping",
	SpotCleaning:          "spot_cleaning",
	ZoneCleaning:          "zone_cleaning",
	SegmentCleaning:       "segment_cleaning",
	NewState:              "new_state",
	SilverIon:             "silver_ion",
	Detergent:             "detergent",
	SecondaryFilter:       "secondary_filter",
	SensorCleaning:        "sensor_cleaning",
	CleaningHistory:       "cleaning_history",
}

func (f Flag) String() string {
	if f > 0 && f < numFlags {
		return flagNames[f]
	}
	return fmt.Sprintf("flag(%d)", uint8(f))
}

// ParseFlag looks up a flag by its catalog name.
func ParseFlag(name string) (Flag, bool) {
	for f := Flag(1); f < numFlags; f++ {
		if flagNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// AllFlags returns every known flag.
func AllFlags() []Flag {
	out := make([]Flag, 0, numFlags-1)
	for f := Flag(1); f < numFlags; f++ {
		out = append(out, f)
	}
	return out
}
