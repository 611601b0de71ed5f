package status

// Enum values mirror the device codes. Codes outside the known set decode
// to the Unknown member of each type.

// Status is the device status code reported by the status property.
type Status int

// Status values.
const (
	StatusUnknown         Status = -1
	StatusIdle            Status = 0
	StatusPaused          Status = 1
	StatusCleaning        Status = 2
	StatusBackHome        Status = 3
	StatusPartCleaning    Status = 4
	StatusFollowWall      Status = 5
	StatusCharging        Status = 6
	StatusOta             Status = 7
	StatusFct             Status = 8
	StatusWifiSet         Status = 9
	StatusPowerOff        Status = 10
	StatusFactory         Status = 11
	StatusError           Status = 12
	StatusRemoteControl   Status = 13
	StatusSleeping        Status = 14
	StatusSelfRepair      Status = 15
	StatusFactoryFuncTest Status = 16
	StatusStandby         Status = 17
	StatusSegmentCleaning Status = 18
	StatusZoneCleaning    Status = 19
	StatusSpotCleaning    Status = 20
	StatusFastMapping     Status = 21
	StatusCruisingPath    Status = 22
	StatusCruisingPoint   Status = 23
	StatusSummonClean     Status = 24
	StatusShortcut        Status = 25
	StatusPersonFollow    Status = 26
	StatusWaterCheck      Status = 1501
)

var statusNames = map[Status]string{
	StatusIdle:            "IDLE",
	StatusPaused:          "PAUSED",
	StatusCleaning:        "CLEANING",
	StatusBackHome:        "BACK_HOME",
	StatusPartCleaning:    "PART_CLEANING",
	StatusFollowWall:      "FOLLOW_WALL",
	StatusCharging:        "CHARGING",
	StatusOta:             "OTA",
	StatusFct:             "FCT",
	StatusWifiSet:         "WIFI_SET",
	StatusPowerOff:        "POWER_OFF",
	StatusFactory:         "FACTORY",
	StatusError:           "ERROR",
	StatusRemoteControl:   "REMOTE_CONTROL",
	StatusSleeping:        "SLEEPING",
	StatusSelfRepair:      "SELF_REPAIR",
	StatusFactoryFuncTest: "FACTORY_FUNC_TEST",
	StatusStandby:         "STANDBY",
	StatusSegmentCleaning: "SEGMENT_CLEANING",
	StatusZoneCleaning:    "ZONE_CLEANING",
	StatusSpotCleaning:    "SPOT_CLEANING",
	StatusFastMapping:     "FAST_MAPPING",
	StatusCruisingPath:    "CRUISING_PATH",
	StatusCruisingPoint:   "CRUISING_POINT",
	StatusSummonClean:     "SUMMON_CLEAN",
	StatusShortcut:        "SHORTCUT",
	StatusPersonFollow:    "PERSON_FOLLOW",
	StatusWaterCheck:      "WATER_CHECK",
}

func (e Status) String() string { return enumString(statusNames, e) }

// ParseStatus decodes a device code.
func ParseStatus(code int64) Status { return decode(statusNames, code, StatusUnknown) }

// LookupStatus resolves a name such as "idle".
func LookupStatus(name string) (Status, bool) { return lookup(statusNames, name) }

// Known reports whether the value is a known device code.
func (e Status) Known() bool {
	_, ok := statusNames[e]
	return ok
}

// TaskStatus is the task progress code.
type TaskStatus int

// TaskStatus values.
const (
	TaskStatusUnknown               TaskStatus = -1
	TaskStatusCompleted             TaskStatus = 0
	TaskStatusAutoCleaning          TaskStatus = 1
	TaskStatusZoneCleaning          TaskStatus = 2
	TaskStatusSegmentCleaning       TaskStatus = 3
	TaskStatusSpotCleaning          TaskStatus = 4
	TaskStatusFastMapping           TaskStatus = 5
	TaskStatusAutoCleaningPaused    TaskStatus = 6
	TaskStatusZoneCleaningPaused    TaskStatus = 7
	TaskStatusSegmentCleaningPaused TaskStatus = 8
	TaskStatusSpotCleaningPaused    TaskStatus = 9
	TaskStatusMapCleaningPaused     TaskStatus = 10
	TaskStatusDockingPaused         TaskStatus = 11
	TaskStatusMoppingPaused         TaskStatus = 12
	TaskStatusSegmentMoppingPaused  TaskStatus = 13
	TaskStatusZoneMoppingPaused     TaskStatus = 14
	TaskStatusAutoMoppingPaused     TaskStatus = 15
	TaskStatusAutoDockingPaused     TaskStatus = 16
	TaskStatusSegmentDockingPaused  TaskStatus = 17
	TaskStatusZoneDockingPaused     TaskStatus = 18
	TaskStatusCruisingPath          TaskStatus = 20
	TaskStatusCruisingPathPaused    TaskStatus = 21
	TaskStatusCruisingPoint         TaskStatus = 22
	TaskStatusCruisingPointPaused   TaskStatus = 23
	TaskStatusSummonCleanPaused     TaskStatus = 24
	TaskStatusReturningInstallMop   TaskStatus = 25
	TaskStatusReturningRemoveMop    TaskStatus = 26
)

var taskStatusNames = map[TaskStatus]string{
	TaskStatusCompleted:             "COMPLETED",
	TaskStatusAutoCleaning:          "AUTO_CLEANING",
	TaskStatusZoneCleaning:          "ZONE_CLEANING",
	TaskStatusSegmentCleaning:       "SEGMENT_CLEANING",
	TaskStatusSpotCleaning:          "SPOT_CLEANING",
	TaskStatusFastMapping:           "FAST_MAPPING",
	TaskStatusAutoCleaningPaused:    "AUTO_CLEANING_PAUSED",
	TaskStatusZoneCleaningPaused:    "ZONE_CLEANING_PAUSED",
	TaskStatusSegmentCleaningPaused: "SEGMENT_CLEANING_PAUSED",
	TaskStatusSpotCleaningPaused:    "SPOT_CLEANING_PAUSED",
	TaskStatusMapCleaningPaused:     "MAP_CLEANING_PAUSED",
	TaskStatusDockingPaused:         "DOCKING_PAUSED",
	TaskStatusMoppingPaused:         "MOPPING_PAUSED",
	TaskStatusSegmentMoppingPaused:  "SEGMENT_MOPPING_PAUSED",
	TaskStatusZoneMoppingPaused:     "ZONE_MOPPING_PAUSED",
	TaskStatusAutoMoppingPaused:     "AUTO_MOPPING_PAUSED",
	TaskStatusAutoDockingPaused:     "AUTO_DOCKING_PAUSED",
	TaskStatusSegmentDockingPaused:  "SEGMENT_DOCKING_PAUSED",
	TaskStatusZoneDockingPaused:     "ZONE_DOCKING_PAUSED",
	TaskStatusCruisingPath:          "CRUISING_PATH",
	TaskStatusCruisingPathPaused:    "CRUISING_PATH_PAUSED",
	TaskStatusCruisingPoint:         "CRUISING_POINT",
	TaskStatusCruisingPointPaused:   "CRUISING_POINT_PAUSED",
	TaskStatusSummonCleanPaused:     "SUMMON_CLEAN_PAUSED",
	TaskStatusReturningInstallMop:   "RETURNING_INSTALL_MOP",
	TaskStatusReturningRemoveMop:    "RETURNING_REMOVE_MOP",
}

func (e TaskStatus) String() string { return enumString(taskStatusNames, e) }

// ParseTaskStatus decodes a device code.
func ParseTaskStatus(code int64) TaskStatus { return decode(taskStatusNames, code, TaskStatusUnknown) }

// LookupTaskStatus resolves a name such as "completed".
func LookupTaskStatus(name string) (TaskStatus, bool) { return lookup(taskStatusNames, name) }

// Known reports whether the value is a known device code.
func (e TaskStatus) Known() bool {
	_, ok := taskStatusNames[e]
	return ok
}

// State is the robot state code reported by newer firmware.
type State int

// State values.
const (
	StateUnknown             State = -1
	StateSweeping            State = 1
	StateIdle                State = 2
	StatePaused              State = 3
	StateError               State = 4
	StateReturning           State = 5
	StateCharging            State = 6
	StateMopping             State = 7
	StateDrying              State = 8
	StateWashing             State = 9
	StateReturningWashing    State = 10
	StateBuilding            State = 11
	StateSweepingAndMopping  State = 12
	StateChargingCompleted   State = 13
	StateUpgrading           State = 14
	StateCleanSummon         State = 15
	StateStationReset        State = 16
	StateReturningInstallMop State = 17
	StateReturningRemoveMop  State = 18
	StateWaterCheck          State = 19
	StateCleanAddWater       State = 20
	StateWashingPaused       State = 21
	StateAutoEmptying        State = 22
	StateRemoteControl       State = 23
	StateSmartCharging       State = 24
	StateSecondCleaning      State = 25
	StateHumanFollowing      State = 26
	StateSpotCleaning        State = 27
	StateReturningAutoEmpty  State = 28
	StateShortcut            State = 97
	StateMonitoring          State = 98
	StateMonitoringPaused    State = 99
)

var stateNames = map[State]string{
	StateSweeping:            "SWEEPING",
	StateIdle:                "IDLE",
	StatePaused:              "PAUSED",
	StateError:               "ERROR",
	StateReturning:           "RETURNING",
	StateCharging:            "CHARGING",
	StateMopping:             "MOPPING",
	StateDrying:              "DRYING",
	StateWashing:             "WASHING",
	StateReturningWashing:    "RETURNING_WASHING",
	StateBuilding:            "BUILDING",
	StateSweepingAndMopping:  "SWEEPING_AND_MOPPING",
	StateChargingCompleted:   "CHARGING_COMPLETED",
	StateUpgrading:           "UPGRADING",
	StateCleanSummon:         "CLEAN_SUMMON",
	StateStationReset:        "STATION_RESET",
	StateReturningInstallMop: "RETURNING_INSTALL_MOP",
	StateReturningRemoveMop:  "RETURNING_REMOVE_MOP",
	StateWaterCheck:          "WATER_CHECK",
	StateCleanAddWater:       "CLEAN_ADD_WATER",
	StateWashingPaused:       "WASHING_PAUSED",
	StateAutoEmptying:        "AUTO_EMPTYING",
	StateRemoteControl:       "REMOTE_CONTROL",
	StateSmartCharging:       "SMART_CHARGING",
	StateSecondCleaning:      "SECOND_CLEANING",
	StateHumanFollowing:      "HUMAN_FOLLOWING",
	StateSpotCleaning:        "SPOT_CLEANING",
	StateReturningAutoEmpty:  "RETURNING_AUTO_EMPTY",
	StateShortcut:            "SHORTCUT",
	StateMonitoring:          "MONITORING",
	StateMonitoringPaused:    "MONITORING_PAUSED",
}

func (e State) String() string { return enumString(stateNames, e) }

// ParseState decodes a device code.
func ParseState(code int64) State { return decode(stateNames, code, StateUnknown) }

// LookupState resolves a name such as "sweeping".
func LookupState(name string) (State, bool) { return lookup(stateNames, name) }

// Known reports whether the value is a known device code.
func (e State) Known() bool {
	_, ok := stateNames[e]
	return ok
}

// ChargingStatus is the charging state.
type ChargingStatus int

// ChargingStatus values.
const (
	ChargingStatusUnknown           ChargingStatus = -1
	ChargingStatusCharging          ChargingStatus = 1
	ChargingStatusNotCharging       ChargingStatus = 2
	ChargingStatusChargingCompleted ChargingStatus = 3
	ChargingStatusReturnToCharge    ChargingStatus = 5
)

var chargingStatusNames = map[ChargingStatus]string{
	ChargingStatusCharging:          "CHARGING",
	ChargingStatusNotCharging:       "NOT_CHARGING",
	ChargingStatusChargingCompleted: "CHARGING_COMPLETED",
	ChargingStatusReturnToCharge:    "RETURN_TO_CHARGE",
}

func (e ChargingStatus) String() string { return enumString(chargingStatusNames, e) }

// ParseChargingStatus decodes a device code.
func ParseChargingStatus(code int64) ChargingStatus {
	return decode(chargingStatusNames, code, ChargingStatusUnknown)
}

// LookupChargingStatus resolves a name such as "charging".
func LookupChargingStatus(name string) (ChargingStatus, bool) {
	return lookup(chargingStatusNames, name)
}

// Known reports whether the value is a known device code.
func (e ChargingStatus) Known() bool {
	_, ok := chargingStatusNames[e]
	return ok
}

// SuctionLevel is the fan power level.
type SuctionLevel int

// SuctionLevel values.
const (
	SuctionLevelUnknown  SuctionLevel = -1
	SuctionLevelQuiet    SuctionLevel = 0
	SuctionLevelStandard SuctionLevel = 1
	SuctionLevelStrong   SuctionLevel = 2
	SuctionLevelTurbo    SuctionLevel = 3
)

var suctionLevelNames = map[SuctionLevel]string{
	SuctionLevelQuiet:    "QUIET",
	SuctionLevelStandard: "STANDARD",
	SuctionLevelStrong:   "STRONG",
	SuctionLevelTurbo:    "TURBO",
}

func (e SuctionLevel) String() string { return enumString(suctionLevelNames, e) }

// ParseSuctionLevel decodes a device code.
func ParseSuctionLevel(code int64) SuctionLevel {
	return decode(suctionLevelNames, code, SuctionLevelUnknown)
}

// LookupSuctionLevel resolves a name such as "quiet".
func LookupSuctionLevel(name string) (SuctionLevel, bool) { return lookup(suctionLevelNames, name) }

// Known reports whether the value is a known device code.
func (e SuctionLevel) Known() bool {
	_, ok := suctionLevelNames[e]
	return ok
}

// WaterVolume is the water flow level on robots without a self-wash base.
type WaterVolume int

// WaterVolume values.
const (
	WaterVolumeUnknown WaterVolume = -1
	WaterVolumeLow     WaterVolume = 1
	WaterVolumeMedium  WaterVolume = 2
	WaterVolumeHigh    WaterVolume = 3
)

var waterVolumeNames = map[WaterVolume]string{
	WaterVolumeLow:    "LOW",
	WaterVolumeMedium: "MEDIUM",
	WaterVolumeHigh:   "HIGH",
}

func (e WaterVolume) String() string { return enumString(waterVolumeNames, e) }

// ParseWaterVolume decodes a device code.
func ParseWaterVolume(code int64) WaterVolume {
	return decode(waterVolumeNames, code, WaterVolumeUnknown)
}

// LookupWaterVolume resolves a name such as "low".
func LookupWaterVolume(name string) (WaterVolume, bool) { return lookup(waterVolumeNames, name) }

// Known reports whether the value is a known device code.
func (e WaterVolume) Known() bool {
	_, ok := waterVolumeNames[e]
	return ok
}

// MopPadHumidity is the mop pad wetness tier on robots with a self-wash base.
type MopPadHumidity int

// MopPadHumidity values.
const (
	MopPadHumidityUnknown     MopPadHumidity = -1
	MopPadHumiditySlightlyDry MopPadHumidity = 1
	MopPadHumidityMoist       MopPadHumidity = 2
	MopPadHumidityWet         MopPadHumidity = 3
)

var mopPadHumidityNames = map[MopPadHumidity]string{
	MopPadHumiditySlightlyDry: "SLIGHTLY_DRY",
	MopPadHumidityMoist:       "MOIST",
	MopPadHumidityWet:         "WET",
}

func (e MopPadHumidity) String() string { return enumString(mopPadHumidityNames, e) }

// ParseMopPadHumidity decodes a device code.
func ParseMopPadHumidity(code int64) MopPadHumidity {
	return decode(mopPadHumidityNames, code, MopPadHumidityUnknown)
}

// LookupMopPadHumidity resolves a name such as "slightly_dry".
func LookupMopPadHumidity(name string) (MopPadHumidity, bool) {
	return lookup(mopPadHumidityNames, name)
}

// Known reports whether the value is a known device code.
func (e MopPadHumidity) Known() bool {
	_, ok := mopPadHumidityNames[e]
	return ok
}

// CleaningMode is the sweeping and mopping combination.
type CleaningMode int

// CleaningMode values.
const (
	CleaningModeUnknown              CleaningMode = -1
	CleaningModeSweeping             CleaningMode = 0
	CleaningModeMopping              CleaningMode = 1
	CleaningModeSweepingAndMopping   CleaningMode = 2
	CleaningModeMoppingAfterSweeping CleaningMode = 3
)

var cleaningModeNames = map[CleaningMode]string{
	CleaningModeSweeping:             "SWEEPING",
	CleaningModeMopping:              "MOPPING",
	CleaningModeSweepingAndMopping:   "SWEEPING_AND_MOPPING",
	CleaningModeMoppingAfterSweeping: "MOPPING_AFTER_SWEEPING",
}

func (e CleaningMode) String() string { return enumString(cleaningModeNames, e) }

// ParseCleaningMode decodes a device code.
func ParseCleaningMode(code int64) CleaningMode {
	return decode(cleaningModeNames, code, CleaningModeUnknown)
}

// LookupCleaningMode resolves a name such as "sweeping".
func LookupCleaningMode(name string) (CleaningMode, bool) { return lookup(cleaningModeNames, name) }

// Known reports whether the value is a known device code.
func (e CleaningMode) Known() bool {
	_, ok := cleaningModeNames[e]
	return ok
}

// SelfWashBaseStatus is the self-wash base activity.
type SelfWashBaseStatus int

// SelfWashBaseStatus values.
const (
	SelfWashBaseStatusUnknown       SelfWashBaseStatus = -1
	SelfWashBaseStatusIdle          SelfWashBaseStatus = 0
	SelfWashBaseStatusWashing       SelfWashBaseStatus = 1
	SelfWashBaseStatusDrying        SelfWashBaseStatus = 2
	SelfWashBaseStatusReturning     SelfWashBaseStatus = 3
	SelfWashBaseStatusPaused        SelfWashBaseStatus = 4
	SelfWashBaseStatusCleanAddWater SelfWashBaseStatus = 5
	SelfWashBaseStatusAddingWater   SelfWashBaseStatus = 6
)

var selfWashBaseStatusNames = map[SelfWashBaseStatus]string{
	SelfWashBaseStatusIdle:          "IDLE",
	SelfWashBaseStatusWashing:       "WASHING",
	SelfWashBaseStatusDrying:        "DRYING",
	SelfWashBaseStatusReturning:     "RETURNING",
	SelfWashBaseStatusPaused:        "PAUSED",
	SelfWashBaseStatusCleanAddWater: "CLEAN_ADD_WATER",
	SelfWashBaseStatusAddingWater:   "ADDING_WATER",
}

func (e SelfWashBaseStatus) String() string { return enumString(selfWashBaseStatusNames, e) }

// ParseSelfWashBaseStatus decodes a device code.
func ParseSelfWashBaseStatus(code int64) SelfWashBaseStatus {
	return decode(selfWashBaseStatusNames, code, SelfWashBaseStatusUnknown)
}

// LookupSelfWashBaseStatus resolves a name such as "idle".
func LookupSelfWashBaseStatus(name string) (SelfWashBaseStatus, bool) {
	return lookup(selfWashBaseStatusNames, name)
}

// Known reports whether the value is a known device code.
func (e SelfWashBaseStatus) Known() bool {
	_, ok := selfWashBaseStatusNames[e]
	return ok
}

// CleanGeniusMode is the automatic cleaning setting selection.
type CleanGeniusMode int

// CleanGeniusMode values.
const (
	CleanGeniusModeUnknown CleanGeniusMode = -1
	CleanGeniusModeOff     CleanGeniusMode = 0
	CleanGeniusModeRoutine CleanGeniusMode = 1
	CleanGeniusModeDeep    CleanGeniusMode = 2
)

var cleanGeniusModeNames = map[CleanGeniusMode]string{
	CleanGeniusModeOff:     "OFF",
	CleanGeniusModeRoutine: "ROUTINE",
	CleanGeniusModeDeep:    "DEEP",
}

func (e CleanGeniusMode) String() string { return enumString(cleanGeniusModeNames, e) }

// ParseCleanGeniusMode decodes a device code.
func ParseCleanGeniusMode(code int64) CleanGeniusMode {
	return decode(cleanGeniusModeNames, code, CleanGeniusModeUnknown)
}

// LookupCleanGeniusMode resolves a name such as "off".
func LookupCleanGeniusMode(name string) (CleanGeniusMode, bool) {
	return lookup(cleanGeniusModeNames, name)
}

// Known reports whether the value is a known device code.
func (e CleanGeniusMode) Known() bool {
	_, ok := cleanGeniusModeNames[e]
	return ok
}

// WaterTank is the water tank or mop attachment state.
type WaterTank int

// WaterTank values.
const (
	WaterTankUnknown      WaterTank = -1
	WaterTankNotInstalled WaterTank = 0
	WaterTankInstalled    WaterTank = 1
	WaterTankMopInstalled WaterTank = 10
	WaterTankMopInStation WaterTank = 99
)

var waterTankNames = map[WaterTank]string{
	WaterTankNotInstalled: "NOT_INSTALLED",
	WaterTankInstalled:    "INSTALLED",
	WaterTankMopInstalled: "MOP_INSTALLED",
	WaterTankMopInStation: "MOP_IN_STATION",
}

func (e WaterTank) String() string { return enumString(waterTankNames, e) }

// ParseWaterTank decodes a device code.
func ParseWaterTank(code int64) WaterTank { return decode(waterTankNames, code, WaterTankUnknown) }

// LookupWaterTank resolves a name such as "not_installed".
func LookupWaterTank(name string) (WaterTank, bool) { return lookup(waterTankNames, name) }

// Known reports whether the value is a known device code.
func (e WaterTank) Known() bool {
	_, ok := waterTankNames[e]
	return ok
}

// RelocationStatus is the localization state.
type RelocationStatus int

// RelocationStatus values.
const (
	RelocationStatusUnknown  RelocationStatus = -1
	RelocationStatusLocated  RelocationStatus = 0
	RelocationStatusLocating RelocationStatus = 1
	RelocationStatusFailed   RelocationStatus = 10
	RelocationStatusSuccess  RelocationStatus = 11
)

var relocationStatusNames = map[RelocationStatus]string{
	RelocationStatusLocated:  "LOCATED",
	RelocationStatusLocating: "LOCATING",
	RelocationStatusFailed:   "FAILED",
	RelocationStatusSuccess:  "SUCCESS",
}

func (e RelocationStatus) String() string { return enumString(relocationStatusNames, e) }

// ParseRelocationStatus decodes a device code.
func ParseRelocationStatus(code int64) RelocationStatus {
	return decode(relocationStatusNames, code, RelocationStatusUnknown)
}

// LookupRelocationStatus resolves a name such as "located".
func LookupRelocationStatus(name string) (RelocationStatus, bool) {
	return lookup(relocationStatusNames, name)
}

// Known reports whether the value is a known device code.
func (e RelocationStatus) Known() bool {
	_, ok := relocationStatusNames[e]
	return ok
}

// AutoEmptyStatus is the auto-empty station activity.
type AutoEmptyStatus int

// AutoEmptyStatus values.
const (
	AutoEmptyStatusUnknown      AutoEmptyStatus = -1
	AutoEmptyStatusIdle         AutoEmptyStatus = 0
	AutoEmptyStatusActive       AutoEmptyStatus = 1
	AutoEmptyStatusNotPerformed AutoEmptyStatus = 2
)

var autoEmptyStatusNames = map[AutoEmptyStatus]string{
	AutoEmptyStatusIdle:         "IDLE",
	AutoEmptyStatusActive:       "ACTIVE",
	AutoEmptyStatusNotPerformed: "NOT_PERFORMED",
}

func (e AutoEmptyStatus) String() string { return enumString(autoEmptyStatusNames, e) }

// ParseAutoEmptyStatus decodes a device code.
func ParseAutoEmptyStatus(code int64) AutoEmptyStatus {
	return decode(autoEmptyStatusNames, code, AutoEmptyStatusUnknown)
}

// LookupAutoEmptyStatus resolves a name such as "idle".
func LookupAutoEmptyStatus(name string) (AutoEmptyStatus, bool) {
	return lookup(autoEmptyStatusNames, name)
}

// Known reports whether the value is a known device code.
func (e AutoEmptyStatus) Known() bool {
	_, ok := autoEmptyStatusNames[e]
	return ok
}

// DustCollection is the whether the dust bag can be emptied.
type DustCollection int

// DustCollection values.
const (
	DustCollectionUnknown      DustCollection = -1
	DustCollectionNotAvailable DustCollection = 0
	DustCollectionAvailable    DustCollection = 1
)

var dustCollectionNames = map[DustCollection]string{
	DustCollectionNotAvailable: "NOT_AVAILABLE",
	DustCollectionAvailable:    "AVAILABLE",
}

func (e DustCollection) String() string { return enumString(dustCollectionNames, e) }

// ParseDustCollection decodes a device code.
func ParseDustCollection(code int64) DustCollection {
	return decode(dustCollectionNames, code, DustCollectionUnknown)
}

// LookupDustCollection resolves a name such as "not_available".
func LookupDustCollection(name string) (DustCollection, bool) {
	return lookup(dustCollectionNames, name)
}

// Known reports whether the value is a known device code.
func (e DustCollection) Known() bool {
	_, ok := dustCollectionNames[e]
	return ok
}

// MapTransferStatus is the map backup or recovery progress.
type MapTransferStatus int

// MapTransferStatus values.
const (
	MapTransferStatusUnknown MapTransferStatus = -1
	MapTransferStatusIdle    MapTransferStatus = 0
	MapTransferStatusRunning MapTransferStatus = 1
	MapTransferStatusSuccess MapTransferStatus = 2
	MapTransferStatusFailed  MapTransferStatus = 3
)

var mapTransferStatusNames = map[MapTransferStatus]string{
	MapTransferStatusIdle:    "IDLE",
	MapTransferStatusRunning: "RUNNING",
	MapTransferStatusSuccess: "SUCCESS",
	MapTransferStatusFailed:  "FAILED",
}

func (e MapTransferStatus) String() string { return enumString(mapTransferStatusNames, e) }

// ParseMapTransferStatus decodes a device code.
func ParseMapTransferStatus(code int64) MapTransferStatus {
	return decode(mapTransferStatusNames, code, MapTransferStatusUnknown)
}

// LookupMapTransferStatus resolves a name such as "idle".
func LookupMapTransferStatus(name string) (MapTransferStatus, bool) {
	return lookup(mapTransferStatusNames, name)
}

// Known reports whether the value is a known device code.
func (e MapTransferStatus) Known() bool {
	_, ok := mapTransferStatusNames[e]
	return ok
}

// CleaningRoute is the path pattern.
type CleaningRoute int

// CleaningRoute values.
const (
	CleaningRouteUnknown   CleaningRoute = -1
	CleaningRouteStandard  CleaningRoute = 1
	CleaningRouteIntensive CleaningRoute = 2
	CleaningRouteDeep      CleaningRoute = 3
	CleaningRouteQuick     CleaningRoute = 4
)

var cleaningRouteNames = map[CleaningRoute]string{
	CleaningRouteStandard:  "STANDARD",
	CleaningRouteIntensive: "INTENSIVE",
	CleaningRouteDeep:      "DEEP",
	CleaningRouteQuick:     "QUICK",
}

func (e CleaningRoute) String() string { return enumString(cleaningRouteNames, e) }

// ParseCleaningRoute decodes a device code.
func ParseCleaningRoute(code int64) CleaningRoute {
	return decode(cleaningRouteNames, code, CleaningRouteUnknown)
}

// LookupCleaningRoute resolves a name such as "standard".
func LookupCleaningRoute(name string) (CleaningRoute, bool) { return lookup(cleaningRouteNames, name) }

// Known reports whether the value is a known device code.
func (e CleaningRoute) Known() bool {
	_, ok := cleaningRouteNames[e]
	return ok
}

// MopWashLevel is the mop wash intensity.
type MopWashLevel int

// MopWashLevel values.
const (
	MopWashLevelUnknown     MopWashLevel = -1
	MopWashLevelWaterSaving MopWashLevel = 0
	MopWashLevelDaily       MopWashLevel = 1
	MopWashLevelDeep        MopWashLevel = 2
)

var mopWashLevelNames = map[MopWashLevel]string{
	MopWashLevelWaterSaving: "WATER_SAVING",
	MopWashLevelDaily:       "DAILY",
	MopWashLevelDeep:        "DEEP",
}

func (e MopWashLevel) String() string { return enumString(mopWashLevelNames, e) }

// ParseMopWashLevel decodes a device code.
func ParseMopWashLevel(code int64) MopWashLevel {
	return decode(mopWashLevelNames, code, MopWashLevelUnknown)
}

// LookupMopWashLevel resolves a name such as "water_saving".
func LookupMopWashLevel(name string) (MopWashLevel, bool) { return lookup(mopWashLevelNames, name) }

// Known reports whether the value is a known device code.
func (e MopWashLevel) Known() bool {
	_, ok := mopWashLevelNames[e]
	return ok
}

// MopCleanFrequency is the when the mop is washed during a job.
type MopCleanFrequency int

// MopCleanFrequency values.
const (
	MopCleanFrequencyUnknown MopCleanFrequency = -1
	MopCleanFrequencyByRoom  MopCleanFrequency = 0
	MopCleanFrequencyByArea  MopCleanFrequency = 1
	MopCleanFrequencyByTime  MopCleanFrequency = 2
)

var mopCleanFrequencyNames = map[MopCleanFrequency]string{
	MopCleanFrequencyByRoom: "BY_ROOM",
	MopCleanFrequencyByArea: "BY_AREA",
	MopCleanFrequencyByTime: "BY_TIME",
}

func (e MopCleanFrequency) String() string { return enumString(mopCleanFrequencyNames, e) }

// ParseMopCleanFrequency decodes a device code.
func ParseMopCleanFrequency(code int64) MopCleanFrequency {
	return decode(mopCleanFrequencyNames, code, MopCleanFrequencyUnknown)
}

// LookupMopCleanFrequency resolves a name such as "by_room".
func LookupMopCleanFrequency(name string) (MopCleanFrequency, bool) {
	return lookup(mopCleanFrequencyNames, name)
}

// Known reports whether the value is a known device code.
func (e MopCleanFrequency) Known() bool {
	_, ok := mopCleanFrequencyNames[e]
	return ok
}

// MopPadSwing is the mop pad swing mode.
type MopPadSwing int

// MopPadSwing values.
const (
	MopPadSwingUnknown MopPadSwing = -1
	MopPadSwingOff     MopPadSwing = 0
	MopPadSwingAuto    MopPadSwing = 1
	MopPadSwingDaily   MopPadSwing = 2
	MopPadSwingWeekly  MopPadSwing = 3
)

var mopPadSwingNames = map[MopPadSwing]string{
	MopPadSwingOff:    "OFF",
	MopPadSwingAuto:   "AUTO",
	MopPadSwingDaily:  "DAILY",
	MopPadSwingWeekly: "WEEKLY",
}

func (e MopPadSwing) String() string { return enumString(mopPadSwingNames, e) }

// ParseMopPadSwing decodes a device code.
func ParseMopPadSwing(code int64) MopPadSwing {
	return decode(mopPadSwingNames, code, MopPadSwingUnknown)
}

// LookupMopPadSwing resolves a name such as "off".
func LookupMopPadSwing(name string) (MopPadSwing, bool) { return lookup(mopPadSwingNames, name) }

// Known reports whether the value is a known device code.
func (e MopPadSwing) Known() bool {
	_, ok := mopPadSwingNames[e]
	return ok
}

// CarpetCleaning is the carpet behavior while mopping.
type CarpetCleaning int

// CarpetCleaning values.
const (
	CarpetCleaningUnknown      CarpetCleaning = -1
	CarpetCleaningAvoidance    CarpetCleaning = 0
	CarpetCleaningAdaptation   CarpetCleaning = 1
	CarpetCleaningRemoveMop    CarpetCleaning = 2
	CarpetCleaningVacuumAndMop CarpetCleaning = 3
	CarpetCleaningIgnore       CarpetCleaning = 4
)

var carpetCleaningNames = map[CarpetCleaning]string{
	CarpetCleaningAvoidance:    "AVOIDANCE",
	CarpetCleaningAdaptation:   "ADAPTATION",
	CarpetCleaningRemoveMop:    "REMOVE_MOP",
	CarpetCleaningVacuumAndMop: "VACUUM_AND_MOP",
	CarpetCleaningIgnore:       "IGNORE",
}

func (e CarpetCleaning) String() string { return enumString(carpetCleaningNames, e) }

// ParseCarpetCleaning decodes a device code.
func ParseCarpetCleaning(code int64) CarpetCleaning {
	return decode(carpetCleaningNames, code, CarpetCleaningUnknown)
}

// LookupCarpetCleaning resolves a name such as "avoidance".
func LookupCarpetCleaning(name string) (CarpetCleaning, bool) {
	return lookup(carpetCleaningNames, name)
}

// Known reports whether the value is a known device code.
func (e CarpetCleaning) Known() bool {
	_, ok := carpetCleaningNames[e]
	return ok
}

// CarpetSensitivity is the carpet detection sensitivity.
type CarpetSensitivity int

// CarpetSensitivity values.
const (
	CarpetSensitivityUnknown CarpetSensitivity = -1
	CarpetSensitivityLow     CarpetSensitivity = 1
	CarpetSensitivityMedium  CarpetSensitivity = 2
	CarpetSensitivityHigh    CarpetSensitivity = 3
)

var carpetSensitivityNames = map[CarpetSensitivity]string{
	CarpetSensitivityLow:    "LOW",
	CarpetSensitivityMedium: "MEDIUM",
	CarpetSensitivityHigh:   "HIGH",
}

func (e CarpetSensitivity) String() string { return enumString(carpetSensitivityNames, e) }

// ParseCarpetSensitivity decodes a device code.
func ParseCarpetSensitivity(code int64) CarpetSensitivity {
	return decode(carpetSensitivityNames, code, CarpetSensitivityUnknown)
}

// LookupCarpetSensitivity resolves a name such as "low".
func LookupCarpetSensitivity(name string) (CarpetSensitivity, bool) {
	return lookup(carpetSensitivityNames, name)
}

// Known reports whether the value is a known device code.
func (e CarpetSensitivity) Known() bool {
	_, ok := carpetSensitivityNames[e]
	return ok
}

// ErrorCode is the fault code.
type ErrorCode int

// ErrorCode values.
const (
	ErrorCodeUnknown               ErrorCode = -1
	ErrorCodeNoError               ErrorCode = 0
	ErrorCodeDrop                  ErrorCode = 1
	ErrorCodeCliff                 ErrorCode = 2
	ErrorCodeBumper                ErrorCode = 3
	ErrorCodeGesture               ErrorCode = 4
	ErrorCodeBumperRepeat          ErrorCode = 5
	ErrorCodeDropRepeat            ErrorCode = 6
	ErrorCodeOpticalFlow           ErrorCode = 7
	ErrorCodeNoBox                 ErrorCode = 8
	ErrorCodeNoTankBox             ErrorCode = 9
	ErrorCodeWaterBoxEmpty         ErrorCode = 10
	ErrorCodeBoxFull               ErrorCode = 11
	ErrorCodeBrush                 ErrorCode = 12
	ErrorCodeSideBrush             ErrorCode = 13
	ErrorCodeFan                   ErrorCode = 14
	ErrorCodeLeftWheelMotor        ErrorCode = 15
	ErrorCodeRightWheelMotor       ErrorCode = 16
	ErrorCodeTurnSuffocate         ErrorCode = 17
	ErrorCodeForwardSuffocate      ErrorCode = 18
	ErrorCodeChargerGet            ErrorCode = 19
	ErrorCodeBatteryLow            ErrorCode = 20
	ErrorCodeChargeFault           ErrorCode = 21
	ErrorCodeBatteryPercentage     ErrorCode = 22
	ErrorCodeHeart                 ErrorCode = 23
	ErrorCodeCameraOcclusion       ErrorCode = 24
	ErrorCodeMove                  ErrorCode = 25
	ErrorCodeFlowShielding         ErrorCode = 26
	ErrorCodeInfraredShielding     ErrorCode = 27
	ErrorCodeChargeNoElectric      ErrorCode = 28
	ErrorCodeBatteryFault          ErrorCode = 29
	ErrorCodeFanSpeedError         ErrorCode = 30
	ErrorCodeLeftWheelSpeed        ErrorCode = 31
	ErrorCodeRightWheelSpeed       ErrorCode = 32
	ErrorCodeLidarBlocked          ErrorCode = 47
	ErrorCodeLdsError              ErrorCode = 48
	ErrorCodeLdsBumper             ErrorCode = 49
	ErrorCodeFilterBlocked         ErrorCode = 51
	ErrorCodeEdge                  ErrorCode = 54
	ErrorCodeCarpet                ErrorCode = 55
	ErrorCodeLaser                 ErrorCode = 56
	ErrorCodeUltrasonic            ErrorCode = 58
	ErrorCodeNoGoZone              ErrorCode = 59
	ErrorCodeRoute                 ErrorCode = 61
	ErrorCodeRestricted            ErrorCode = 65
	ErrorCodeRemoveMop             ErrorCode = 68
	ErrorCodeMopRemoved            ErrorCode = 69
	ErrorCodeMopPadStopRotate      ErrorCode = 71
	ErrorCodeMopInstallFailed      ErrorCode = 75
	ErrorCodeBinFull               ErrorCode = 101
	ErrorCodeBinOpen               ErrorCode = 102
	ErrorCodeWaterTank             ErrorCode = 105
	ErrorCodeDirtyWaterTank        ErrorCode = 106
	ErrorCodeWaterTankDry          ErrorCode = 107
	ErrorCodeDirtyWaterTankBlocked ErrorCode = 109
	ErrorCodeMopPad                ErrorCode = 111
	ErrorCodeWetMopPad             ErrorCode = 112
	ErrorCodeCleanMopPad           ErrorCode = 114
	ErrorCodeCleanTankLevel        ErrorCode = 116
	ErrorCodeStationDisconnected   ErrorCode = 117
	ErrorCodeDirtyTankLevel        ErrorCode = 118
	ErrorCodeWashboardLevel        ErrorCode = 119
	ErrorCodeNoMopInStation        ErrorCode = 120
	ErrorCodeDustBagFull           ErrorCode = 121
	ErrorCodeSelfTestFailed        ErrorCode = 122
	ErrorCodeReturnToChargeFailed  ErrorCode = 1000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeNoError:               "NO_ERROR",
	ErrorCodeDrop:                  "DROP",
	ErrorCodeCliff:                 "CLIFF",
	ErrorCodeBumper:                "BUMPER",
	ErrorCodeGesture:               "GESTURE",
	ErrorCodeBumperRepeat:          "BUMPER_REPEAT",
	ErrorCodeDropRepeat:            "DROP_REPEAT",
	ErrorCodeOpticalFlow:           "OPTICAL_FLOW",
	ErrorCodeNoBox:                 "NO_BOX",
	ErrorCodeNoTankBox:             "NO_TANK_BOX",
	ErrorCodeWaterBoxEmpty:         "WATER_BOX_EMPTY",
	ErrorCodeBoxFull:               "BOX_FULL",
	ErrorCodeBrush:                 "BRUSH",
	ErrorCodeSideBrush:             "SIDE_BRUSH",
	ErrorCodeFan:                   "FAN",
	ErrorCodeLeftWheelMotor:        "LEFT_WHEEL_MOTOR",
	ErrorCodeRightWheelMotor:       "RIGHT_WHEEL_MOTOR",
	ErrorCodeTurnSuffocate:         "TURN_SUFFOCATE",
	ErrorCodeForwardSuffocate:      "FORWARD_SUFFOCATE",
	ErrorCodeChargerGet:            "CHARGER_GET",
	ErrorCodeBatteryLow:            "BATTERY_LOW",
	ErrorCodeChargeFault:           "CHARGE_FAULT",
	ErrorCodeBatteryPercentage:     "BATTERY_PERCENTAGE",
	ErrorCodeHeart:                 "HEART",
	ErrorCodeCameraOcclusion:       "CAMERA_OCCLUSION",
	ErrorCodeMove:                  "MOVE",
	ErrorCodeFlowShielding:         "FLOW_SHIELDING",
	ErrorCodeInfraredShielding:     "INFRARED_SHIELDING",
	ErrorCodeChargeNoElectric:      "CHARGE_NO_ELECTRIC",
	ErrorCodeBatteryFault:          "BATTERY_FAULT",
	ErrorCodeFanSpeedError:         "FAN_SPEED_ERROR",
	ErrorCodeLeftWheelSpeed:        "LEFT_WHEEL_SPEED",
	ErrorCodeRightWheelSpeed:       "RIGHT_WHEEL_SPEED",
	ErrorCodeLidarBlocked:          "LIDAR_BLOCKED",
	ErrorCodeLdsError:              "LDS_ERROR",
	ErrorCodeLdsBumper:             "LDS_BUMPER",
	ErrorCodeFilterBlocked:         "FILTER_BLOCKED",
	ErrorCodeEdge:                  "EDGE",
	ErrorCodeCarpet:                "CARPET",
	ErrorCodeLaser:                 "LASER",
	ErrorCodeUltrasonic:            "ULTRASONIC",
	ErrorCodeNoGoZone:              "NO_GO_ZONE",
	ErrorCodeRoute:                 "ROUTE",
	ErrorCodeRestricted:            "RESTRICTED",
	ErrorCodeRemoveMop:             "REMOVE_MOP",
	ErrorCodeMopRemoved:            "MOP_REMOVED",
	ErrorCodeMopPadStopRotate:      "MOP_PAD_STOP_ROTATE",
	ErrorCodeMopInstallFailed:      "MOP_INSTALL_FAILED",
	ErrorCodeBinFull:               "BIN_FULL",
	ErrorCodeBinOpen:               "BIN_OPEN",
	ErrorCodeWaterTank:             "WATER_TANK",
	ErrorCodeDirtyWaterTank:        "DIRTY_WATER_TANK",
	ErrorCodeWaterTankDry:          "WATER_TANK_DRY",
	ErrorCodeDirtyWaterTankBlocked: "DIRTY_WATER_TANK_BLOCKED",
	ErrorCodeMopPad:                "MOP_PAD",
	ErrorCodeWetMopPad:             "WET_MOP_PAD",
	ErrorCodeCleanMopPad:           "CLEAN_MOP_PAD",
	ErrorCodeCleanTankLevel:        "CLEAN_TANK_LEVEL",
	ErrorCodeStationDisconnected:   "STATION_DISCONNECTED",
	ErrorCodeDirtyTankLevel:        "DIRTY_TANK_LEVEL",
	ErrorCodeWashboardLevel:        "WASHBOARD_LEVEL",
	ErrorCodeNoMopInStation:        "NO_MOP_IN_STATION",
	ErrorCodeDustBagFull:           "DUST_BAG_FULL",
	ErrorCodeSelfTestFailed:        "SELF_TEST_FAILED",
	ErrorCodeReturnToChargeFailed:  "RETURN_TO_CHARGE_FAILED",
}

func (e ErrorCode) String() string { return enumString(errorCodeNames, e) }

// ParseErrorCode decodes a device code.
func ParseErrorCode(code int64) ErrorCode { return decode(errorCodeNames, code, ErrorCodeUnknown) }

// LookupErrorCode resolves a name such as "no_error".
func LookupErrorCode(name string) (ErrorCode, bool) { return lookup(errorCodeNames, name) }

// Known reports whether the value is a known device code.
func (e ErrorCode) Known() bool {
	_, ok := errorCodeNames[e]
	return ok
}
