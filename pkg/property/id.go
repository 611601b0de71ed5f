package property

import "fmt"

// ID identifies a device property. IDs are local and stable; the wire
// address comes from the embedded property table.
type ID uint16

// Known property IDs.
const (
	// Invalid is the zero ID and never addresses a property.
	Invalid ID = iota

	State
	Error
	BatteryLevel
	ChargingStatus
	OffPeakCharging
	Status
	CleaningTime
	CleanedArea
	SuctionLevel
	WaterVolume
	WaterTank
	TaskStatus
	CleaningStartTime
	CleanLogFileName
	CleaningProperties
	ResumeCleaning
	CarpetBoost
	CleanLogStatus
	SerialNumber
	RemoteControl
	MopCleaningRemainder
	CleaningPaused
	Faults
	NationMatched
	RelocationStatus
	ObstacleAvoidance
	AIDetection
	CleaningMode
	UploadMap
	SelfWashBaseStatus
	CustomizedCleaning
	ChildLock
	CarpetSensitivity
	TightMopping
	CleaningCancel
	YClean
	WaterElectrolysis
	CarpetRecognition
	SelfClean
	WarnStatus
	CarpetCleaning
	AutoAddDetergent
	Capability
	SaveWaterTips
	DryingTime
	NoWaterWarning
	AutoMountMop
	MopWashLevel
	ScheduledClean
	QuickCommand
	IntelligentRecognition
	AutoSwitchSettings
	AutoWaterRefilling
	MopInStation
	MopPadInstalled
	CleaningRoute
	CleanGenius
	MopPadSwing
	MaxSuctionPower
	AutoEmptyMode
	DND
	DNDStart
	DNDEnd
	DNDTask
	MapData
	FrameInfo
	ObjectName
	MapExtendData
	RobotTime
	ResultCode
	MultiFloorMap
	MapList
	RecoveryMapList
	MapRecovery
	MapRecoveryStatus
	OldMapData
	MapBackupStatus
	WiFiMap
	Volume
	VoicePacketID
	VoiceChangeStatus
	VoiceChange
	Timezone
	Schedule
	ScheduleID
	ScheduleCancelReason
	CruiseSchedule
	MainBrushTimeLeft
	MainBrushLeft
	SideBrushTimeLeft
	SideBrushLeft
	FilterLeft
	FilterTimeLeft
	FirstCleaningDate
	TotalCleaningTime
	CleaningCount
	TotalCleanedArea
	TotalRuntime
	TotalCruiseTime
	MapSaving
	AutoDustCollecting
	AutoEmptyFrequency
	DustCollection
	AutoEmptyStatus
	SensorDirtyLeft
	SensorDirtyTimeLeft
	SecondaryFilterLeft
	SecondaryFilterTimeLeft
	MopPadLeft
	MopPadTimeLeft
	SilverIonTimeLeft
	SilverIonLeft
	DetergentLeft
	DetergentTimeLeft
	StreamStatus
	StreamAudio
	StreamRecord
	TakePhoto
	StreamKeepAlive
	StreamFault
	CameraLightBrightness
	CameraLight
	CleaningHistory

	numIDs
)

var idNames = [numIDs]string{

	State:                   "state",
	Error:                   "error",
	BatteryLevel:            "battery_level",
	ChargingStatus:          "charging_status",
	OffPeakCharging:         "off_peak_charging",
	Status:                  "status",
	CleaningTime:            "cleaning_time",
	CleanedArea:             "cleaned_area",
	SuctionLevel:            "suction_level",
	WaterVolume:             "water_volume",
	WaterTank:               "water_tank",
	TaskStatus:              "task_status",
	CleaningStartTime:       "cleaning_start_time",
	CleanLogFileName:        "clean_log_file_name",
	CleaningProperties:      "cleaning_properties",
	ResumeCleaning:          "resume_cleaning",
	CarpetBoost:             "carpet_boost",
	CleanLogStatus:          "clean_log_status",
	SerialNumber:            "serial_number",
	RemoteControl:           "remote_control",
	MopCleaningRemainder:    "mop_cleaning_remainder",
	CleaningPaused:          "cleaning_paused",
	Faults:                  "faults",
	NationMatched:           "nation_matched",
	RelocationStatus:        "relocation_status",
	ObstacleAvoidance:       "obstacle_avoidance",
	AIDetection:             "ai_detection",
	CleaningMode:            "cleaning_mode",
	UploadMap:               "upload_map",
	SelfWashBaseStatus:      "self_wash_base_status",
	CustomizedCleaning:      "customized_cleaning",
	ChildLock:               "child_lock",
	CarpetSensitivity:       "carpet_sensitivity",
	TightMopping:            "tight_mopping",
	CleaningCancel:          "cleaning_cancel",
	YClean:                  "y_clean",
	WaterElectrolysis:       "water_electrolysis",
	CarpetRecognition:       "carpet_recognition",
	SelfClean:               "self_clean",
	WarnStatus:              "warn_status",
	CarpetCleaning:          "carpet_cleaning",
	AutoAddDetergent:        "auto_add_detergent",
	Capability:              "capability",
	SaveWaterTips:           "save_water_tips",
	DryingTime:              "drying_time",
	NoWaterWarning:          "no_water_warning",
	AutoMountMop:            "auto_mount_mop",
	MopWashLevel:            "mop_wash_level",
	ScheduledClean:          "scheduled_clean",
	QuickCommand:            "quick_command",
	IntelligentRecognition:  "intelligent_recognition",
	AutoSwitchSettings:      "auto_switch_settings",
	AutoWaterRefilling:      "auto_water_refilling",
	MopInStation:            "mop_in_station",
	MopPadInstalled:         "mop_pad_installed",
	CleaningRoute:           "cleaning_route",
	CleanGenius:             "cleangenius",
	MopPadSwing:             "mop_pad_swing",
	MaxSuctionPower:         "max_suction_power",
	AutoEmptyMode:           "auto_empty_mode",
	DND:                     "dnd",
	DNDStart:                "dnd_start",
	DNDEnd:                  "dnd_end",
	DNDTask:                 "dnd_task",
	MapData:                 "map_data",
	FrameInfo:               "frame_info",
	ObjectName:              "object_name",
	MapExtendData:           "map_extend_data",
	RobotTime:               "robot_time",
	ResultCode:              "result_code",
	MultiFloorMap:           "multi_floor_map",
	MapList:                 "map_list",
	RecoveryMapList:         "recovery_map_list",
	MapRecovery:             "map_recovery",
	MapRecoveryStatus:       "map_recovery_status",
	OldMapData:              "old_map_data",
	MapBackupStatus:         "map_backup_status",
	WiFiMap:                 "wifi_map",
	Volume:                  "volume",
	VoicePacketID:           "voice_packet_id",
	VoiceChangeStatus:       "voice_change_status",
	VoiceChange:             "voice_change",
	Timezone:                "timezone",
	Schedule:                "schedule",
	ScheduleID:              "schedule_id",
	ScheduleCancelReason:    "schedule_cancel_reason",
	CruiseSchedule:          "cruise_schedule",
	MainBrushTimeLeft:       "main_brush_time_left",
	MainBrushLeft:           "main_brush_left",
	SideBrushTimeLeft:       "side_brush_time_left",
	SideBrushLeft:           "side_brush_left",
	FilterLeft:              "filter_left",
	FilterTimeLeft:          "filter_time_left",
	FirstCleaningDate:       "first_cleaning_date",
	TotalCleaningTime:       "total_cleaning_time",
	CleaningCount:           "cleaning_count",
	TotalCleanedArea:        "total_cleaned_area",
	TotalRuntime:            "total_runtime",
	TotalCruiseTime:         "total_cruise_time",
	MapSaving:               "map_saving",
	AutoDustCollecting:      "auto_dust_collecting",
	AutoEmptyFrequency:      "auto_empty_frequency",
	DustCollection:          "dust_collection",
	AutoEmptyStatus:         "auto_empty_status",
	SensorDirtyLeft:         "sensor_dirty_left",
	SensorDirtyTimeLeft:     "sensor_dirty_time_left",
	SecondaryFilterLeft:     "secondary_filter_left",
	SecondaryFilterTimeLeft: "secondary_filter_time_left",
	MopPadLeft:              "mop_pad_left",
	MopPadTimeLeft:          "mop_pad_time_left",
	SilverIonTimeLeft:       "silver_ion_time_left",
	SilverIonLeft:           "silver_ion_left",
	DetergentLeft:           "detergent_left",
	DetergentTimeLeft:       "detergent_time_left",
	StreamStatus:            "stream_status",
	StreamAudio:             "stream_audio",
	StreamRecord:            "stream_record",
	TakePhoto:               "take_photo",
	StreamKeepAlive:         "stream_keep_alive",
	StreamFault:             "stream_fault",
	CameraLightBrightness:   "camera_light_brightness",
	CameraLight:             "camera_light",
	CleaningHistory:         "cleaning_history",
}

// String returns the table name of the property.
func (id ID) String() string {
	if id > Invalid && id < numIDs {
		return idNames[id]
	}
	return fmt.Sprintf("property(%d)", uint16(id))
}

// Valid reports whether id addresses a known property.
func (id ID) Valid() bool { return id > Invalid && id < numIDs }

// All returns every known property ID in table order.
func All() []ID {
	ids := make([]ID, 0, numIDs-1)
	for id := Invalid + 1; id < numIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseID looks up a property by its table name.
func ParseID(name string) (ID, bool) {
	for id := Invalid + 1; id < numIDs; id++ {
		if idNames[id] == name {
			return id, true
		}
	}
	return Invalid, false
}

// ActionID identifies a device action.
type ActionID uint8

// Known action IDs.
const (
	// NoAction is the zero action ID.
	NoAction ActionID = iota

	ActionStart
	ActionPause
	ActionCharge
	ActionStartCustom
	ActionStop
	ActionClearWarning
	ActionStartWashing
	ActionGetPhotoInfo
	ActionShortcuts
	ActionRequestMap
	ActionUpdateMapData
	ActionBackupMap
	ActionWiFiMap
	ActionLocate
	ActionTestSound
	ActionDeleteSchedule
	ActionDeleteCruiseSchedule
	ActionResetMainBrush
	ActionResetSideBrush
	ActionResetFilter
	ActionStartAutoEmpty
	ActionResetSensor
	ActionResetSecondaryFilter
	ActionResetMopPad
	ActionResetSilverIon
	ActionResetDetergent
	ActionStreamVideo
	ActionStreamProperty

	numActions
)

var actionNames = [numActions]string{

	ActionStart:                "start",
	ActionPause:                "pause",
	ActionCharge:               "charge",
	ActionStartCustom:          "start_custom",
	ActionStop:                 "stop",
	ActionClearWarning:         "clear_warning",
	ActionStartWashing:         "start_washing",
	ActionGetPhotoInfo:         "get_photo_info",
	ActionShortcuts:            "shortcuts",
	ActionRequestMap:           "request_map",
	ActionUpdateMapData:        "update_map_data",
	ActionBackupMap:            "backup_map",
	ActionWiFiMap:              "wifi_map",
	ActionLocate:               "locate",
	ActionTestSound:            "test_sound",
	ActionDeleteSchedule:       "delete_schedule",
	ActionDeleteCruiseSchedule: "delete_cruise_schedule",
	ActionResetMainBrush:       "reset_main_brush",
	ActionResetSideBrush:       "reset_side_brush",
	ActionResetFilter:          "reset_filter",
	ActionStartAutoEmpty:       "start_auto_empty",
	ActionResetSensor:          "reset_sensor",
	ActionResetSecondaryFilter: "reset_secondary_filter",
	ActionResetMopPad:          "reset_mop_pad",
	ActionResetSilverIon:       "reset_silver_ion",
	ActionResetDetergent:       "reset_detergent",
	ActionStreamVideo:          "stream_video",
	ActionStreamProperty:       "stream_property",
}

// String returns the table name of the action.
func (a ActionID) String() string {
	if a > NoAction && a < numActions {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}
