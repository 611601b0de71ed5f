package status

import (
	"slices"
	"sync/atomic"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/property"
)

// Wetness level thresholds for mapping onto humidity tiers.
const (
	wetnessWetAbove   = 26
	wetnessMoistAbove = 16
)

var (
	// activeStatuses mark a started job even when the task status lags.
	activeStatuses = []Status{
		StatusCleaning, StatusPartCleaning, StatusFollowWall, StatusSegmentCleaning,
		StatusZoneCleaning, StatusSpotCleaning, StatusFastMapping, StatusShortcut,
	}

	// motionStatuses mean the robot is moving under its own control.
	motionStatuses = []Status{
		StatusCleaning, StatusBackHome, StatusPartCleaning, StatusFollowWall,
		StatusRemoteControl, StatusSegmentCleaning, StatusZoneCleaning,
		StatusSpotCleaning, StatusFastMapping, StatusCruisingPath,
		StatusCruisingPoint, StatusSummonClean, StatusShortcut, StatusPersonFollow,
	}

	pausedTasks = []TaskStatus{
		TaskStatusAutoCleaningPaused, TaskStatusZoneCleaningPaused,
		TaskStatusSegmentCleaningPaused, TaskStatusSpotCleaningPaused,
		TaskStatusMapCleaningPaused, TaskStatusMoppingPaused,
		TaskStatusSegmentMoppingPaused, TaskStatusZoneMoppingPaused,
		TaskStatusAutoMoppingPaused, TaskStatusCruisingPathPaused,
		TaskStatusCruisingPointPaused, TaskStatusSummonCleanPaused,
	}

	dockingPausedTasks = []TaskStatus{
		TaskStatusDockingPaused, TaskStatusAutoDockingPaused,
		TaskStatusSegmentDockingPaused, TaskStatusZoneDockingPaused,
	}

	zoneTasks = []TaskStatus{
		TaskStatusZoneCleaning, TaskStatusZoneCleaningPaused,
		TaskStatusZoneMoppingPaused, TaskStatusZoneDockingPaused,
	}

	segmentTasks = []TaskStatus{
		TaskStatusSegmentCleaning, TaskStatusSegmentCleaningPaused,
		TaskStatusSegmentMoppingPaused, TaskStatusSegmentDockingPaused,
	}

	autoTasks = []TaskStatus{
		TaskStatusAutoCleaning, TaskStatusAutoCleaningPaused,
		TaskStatusAutoMoppingPaused, TaskStatusAutoDockingPaused,
		TaskStatusMoppingPaused, TaskStatusDockingPaused,
	}

	cruiseTasks = []TaskStatus{
		TaskStatusCruisingPath, TaskStatusCruisingPathPaused,
		TaskStatusCruisingPoint, TaskStatusCruisingPointPaused,
	}

	// Error codes that are notifications rather than faults.
	warningCodes = []ErrorCode{
		ErrorCodeRemoveMop, ErrorCodeMopRemoved, ErrorCodeCleanMopPad,
		ErrorCodeSelfTestFailed,
	}
)

// View derives the robot state from the property store.
type View struct {
	store   *property.Store
	session *SessionState
	profile atomic.Pointer[capability.Profile]
}

// NewView creates a view. The profile may be set later.
func NewView(store *property.Store, session *SessionState) *View {
	return &View{store: store, session: session}
}

// SetProfile installs the capability profile.
func (v *View) SetProfile(p *capability.Profile) { v.profile.Store(p) }

// Profile returns the capability profile, or nil before the first fetch.
func (v *View) Profile() *capability.Profile { return v.profile.Load() }

// Session returns the session state the view reads.
func (v *View) Session() *SessionState { return v.session }

// Has reports whether a capability flag is enabled.
func (v *View) Has(f capability.Flag) bool { return v.Profile().Has(f) }

func (v *View) code(id property.ID) (int64, bool) { return v.store.Int(id) }

func (v *View) flag(id property.ID) bool {
	b, _ := v.store.Bool(id)
	return b
}

// ---------------------------------------------------------------------------
// Raw enums
// ---------------------------------------------------------------------------

// Status returns the device status.
func (v *View) Status() Status {
	if c, ok := v.code(property.Status); ok {
		return ParseStatus(c)
	}
	return StatusUnknown
}

// TaskStatus returns the task status. An absent value reads as completed.
func (v *View) TaskStatus() TaskStatus {
	if c, ok := v.code(property.TaskStatus); ok {
		return ParseTaskStatus(c)
	}
	return TaskStatusCompleted
}

// State returns the robot state reported by newer firmware.
func (v *View) State() State {
	if c, ok := v.code(property.State); ok {
		return ParseState(c)
	}
	return StateUnknown
}

// ChargingStatus returns the charging status.
func (v *View) ChargingStatus() ChargingStatus {
	if c, ok := v.code(property.ChargingStatus); ok {
		return ParseChargingStatus(c)
	}
	return ChargingStatusUnknown
}

// SelfWashBaseStatus returns the self-wash base activity.
func (v *View) SelfWashBaseStatus() SelfWashBaseStatus {
	if c, ok := v.code(property.SelfWashBaseStatus); ok {
		return ParseSelfWashBaseStatus(c)
	}
	return SelfWashBaseStatusUnknown
}

// ErrorCode returns the current fault code.
func (v *View) ErrorCode() ErrorCode {
	if c, ok := v.code(property.Error); ok {
		return ParseErrorCode(c)
	}
	return ErrorCodeNoError
}

// WaterTank returns the water tank state.
func (v *View) WaterTank() WaterTank {
	if c, ok := v.code(property.WaterTank); ok {
		return ParseWaterTank(c)
	}
	return WaterTankUnknown
}

// RelocationStatus returns the localization state.
func (v *View) RelocationStatus() RelocationStatus {
	if c, ok := v.code(property.RelocationStatus); ok {
		return ParseRelocationStatus(c)
	}
	return RelocationStatusUnknown
}

// AutoEmptyStatus returns the auto-empty station activity.
func (v *View) AutoEmptyStatus() AutoEmptyStatus {
	if c, ok := v.code(property.AutoEmptyStatus); ok {
		return ParseAutoEmptyStatus(c)
	}
	return AutoEmptyStatusUnknown
}

// DustCollection reports whether the dust bag can be emptied now.
func (v *View) DustCollection() DustCollection {
	if c, ok := v.code(property.DustCollection); ok {
		return ParseDustCollection(c)
	}
	return DustCollectionUnknown
}

// MapBackupStatus returns the map backup progress.
func (v *View) MapBackupStatus() MapTransferStatus {
	if c, ok := v.code(property.MapBackupStatus); ok {
		return ParseMapTransferStatus(c)
	}
	return MapTransferStatusIdle
}

// MapRecoveryStatus returns the map recovery progress.
func (v *View) MapRecoveryStatus() MapTransferStatus {
	if c, ok := v.code(property.MapRecoveryStatus); ok {
		return ParseMapTransferStatus(c)
	}
	return MapTransferStatusIdle
}

// Battery returns the battery level in percent, or -1.
func (v *View) Battery() int { return int(v.store.IntOr(property.BatteryLevel, -1)) }

// CleaningTime returns the current job duration in minutes.
func (v *View) CleaningTime() int { return int(v.store.IntOr(property.CleaningTime, 0)) }

// CleanedArea returns the current job area in square meters.
func (v *View) CleanedArea() int { return int(v.store.IntOr(property.CleanedArea, 0)) }

// Volume returns the speaker volume.
func (v *View) Volume() int { return int(v.store.IntOr(property.Volume, 0)) }

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// SuctionLevel returns the fan power level.
func (v *View) SuctionLevel() SuctionLevel {
	if c, ok := v.code(property.SuctionLevel); ok {
		return ParseSuctionLevel(c)
	}
	return SuctionLevelUnknown
}

// UsesGroup reports whether the cleaning mode property carries the packed
// mode, self-clean and humidity word.
func (v *View) UsesGroup() bool { return v.Has(capability.SelfWashBase) }

// Group returns the unpacked cleaning mode word.
func (v *View) Group() (codec.Group, bool) {
	if !v.UsesGroup() {
		return codec.Group{}, false
	}
	raw, ok := v.code(property.CleaningMode)
	if !ok {
		return codec.Group{}, false
	}
	return codec.SplitGroup(raw, v.Has(capability.MopPadLifting)), true
}

// CleaningMode returns the sweeping and mopping combination.
func (v *View) CleaningMode() CleaningMode {
	if g, ok := v.Group(); ok {
		return ParseCleaningMode(g.Mode)
	}
	if v.UsesGroup() {
		return CleaningModeUnknown
	}
	if c, ok := v.code(property.CleaningMode); ok {
		return ParseCleaningMode(c)
	}
	return CleaningModeUnknown
}

// WaterVolume returns the water flow on robots without a self-wash base.
func (v *View) WaterVolume() WaterVolume {
	if v.UsesGroup() {
		return WaterVolumeUnknown
	}
	if c, ok := v.code(property.WaterVolume); ok {
		return ParseWaterVolume(c)
	}
	return WaterVolumeUnknown
}

// WetnessLevel returns the fine-grained mop wetness, or 0 when the robot
// only has humidity tiers.
func (v *View) WetnessLevel() int {
	if !v.Has(capability.WetnessLevel) {
		return 0
	}
	if g, ok := v.Group(); ok {
		return int(g.Humidity)
	}
	return 0
}

// MopPadHumidity returns the humidity tier on robots with a self-wash base.
func (v *View) MopPadHumidity() MopPadHumidity {
	g, ok := v.Group()
	if !ok {
		return MopPadHumidityUnknown
	}
	if v.Has(capability.WetnessLevel) {
		switch w := g.Humidity; {
		case w > wetnessWetAbove:
			return MopPadHumidityWet
		case w > wetnessMoistAbove:
			return MopPadHumidityMoist
		default:
			return MopPadHumiditySlightlyDry
		}
	}
	return ParseMopPadHumidity(g.Humidity)
}

// SelfCleanValue returns the self-clean area or time, 0 meaning by room.
func (v *View) SelfCleanValue() int {
	if g, ok := v.Group(); ok {
		return int(g.SelfCleanValue())
	}
	return 0
}

// MopCleanFrequency derives the self-clean frequency from the group word.
func (v *View) MopCleanFrequency() MopCleanFrequency {
	if _, ok := v.Group(); !ok {
		return MopCleanFrequencyUnknown
	}
	switch {
	case v.SelfCleanValue() == 0:
		return MopCleanFrequencyByRoom
	case v.Has(capability.SelfCleanTime):
		return MopCleanFrequencyByTime
	default:
		return MopCleanFrequencyByArea
	}
}

// CleanGeniusMode returns the CleanGenius selection.
func (v *View) CleanGeniusMode() CleanGeniusMode {
	if !v.Has(capability.CleanGenius) {
		return CleanGeniusModeOff
	}
	if c, ok := v.code(property.CleanGenius); ok {
		return ParseCleanGeniusMode(c)
	}
	return CleanGeniusModeOff
}

// CleanGeniusActive reports whether CleanGenius overrides manual settings.
func (v *View) CleanGeniusActive() bool {
	m := v.CleanGeniusMode()
	return m != CleanGeniusModeOff && m != CleanGeniusModeUnknown
}

// CleaningRoute returns the path pattern.
func (v *View) CleaningRoute() CleaningRoute {
	if c, ok := v.code(property.CleaningRoute); ok {
		return ParseCleaningRoute(c)
	}
	return CleaningRouteUnknown
}

// MopWashLevel returns the mop wash intensity.
func (v *View) MopWashLevel() MopWashLevel {
	if c, ok := v.code(property.MopWashLevel); ok {
		return ParseMopWashLevel(c)
	}
	return MopWashLevelUnknown
}

// CustomizedCleaning reports whether per-room settings are enabled.
func (v *View) CustomizedCleaning() bool {
	return v.Has(capability.CustomizedCleaning) && v.flag(property.CustomizedCleaning)
}

// ---------------------------------------------------------------------------
// Derived state
// ---------------------------------------------------------------------------

// HasError reports a fault that needs attention.
func (v *View) HasError() bool {
	e := v.ErrorCode()
	return e != ErrorCodeNoError && !slices.Contains(warningCodes, e)
}

// HasWarning reports a notification-level error code.
func (v *View) HasWarning() bool { return slices.Contains(warningCodes, v.ErrorCode()) }

// Charging reports whether the robot is charging.
func (v *View) Charging() bool { return v.ChargingStatus() == ChargingStatusCharging }

// ChargingCompleted reports a full battery on the dock.
func (v *View) ChargingCompleted() bool {
	return v.ChargingStatus() == ChargingStatusChargingCompleted
}

// Washing reports the self-wash base washing the mop.
func (v *View) Washing() bool {
	switch v.SelfWashBaseStatus() {
	case SelfWashBaseStatusWashing, SelfWashBaseStatusCleanAddWater, SelfWashBaseStatusAddingWater:
		return true
	}
	return false
}

// WashingPaused reports a paused mop wash.
func (v *View) WashingPaused() bool { return v.SelfWashBaseStatus() == SelfWashBaseStatusPaused }

// Drying reports the self-wash base drying the mop.
func (v *View) Drying() bool { return v.SelfWashBaseStatus() == SelfWashBaseStatusDrying }

// CleaningPaused reports the paused flag set when a job is interrupted to
// return to the dock.
func (v *View) CleaningPaused() bool { return v.flag(property.CleaningPaused) }

// Paused reports a paused job.
func (v *View) Paused() bool {
	return v.Status() == StatusPaused || slices.Contains(pausedTasks, v.TaskStatus())
}

// ReturningPaused reports a paused return to the dock.
func (v *View) ReturningPaused() bool { return slices.Contains(dockingPausedTasks, v.TaskStatus()) }

// Returning reports the robot heading back to the dock.
func (v *View) Returning() bool {
	if v.ReturningPaused() {
		return false
	}
	return v.Status() == StatusBackHome || v.ChargingStatus() == ChargingStatusReturnToCharge
}

// Started reports an unfinished job, even if paused or interrupted.
func (v *View) Started() bool {
	ts := v.TaskStatus()
	if ts != TaskStatusCompleted && ts != TaskStatusDockingPaused {
		return true
	}
	return v.CleaningPaused() || slices.Contains(activeStatuses, v.Status())
}

// Running reports the robot moving on its own, away from a state that
// pins it to the dock.
func (v *View) Running() bool {
	if v.ChargingCompleted() || v.Washing() || v.Drying() {
		return false
	}
	return slices.Contains(motionStatuses, v.Status())
}

// FastMapping reports a mapping run.
func (v *View) FastMapping() bool {
	return v.Status() == StatusFastMapping || v.TaskStatus() == TaskStatusFastMapping ||
		v.TaskStatus() == TaskStatusMapCleaningPaused
}

// Cruising reports a cruise along a path or to a point.
func (v *View) Cruising() bool {
	s := v.Status()
	return s == StatusCruisingPath || s == StatusCruisingPoint || slices.Contains(cruiseTasks, v.TaskStatus())
}

// CruisingPaused reports a paused cruise.
func (v *View) CruisingPaused() bool {
	ts := v.TaskStatus()
	return ts == TaskStatusCruisingPathPaused || ts == TaskStatusCruisingPointPaused
}

// Docked reports the robot sitting on its dock. Charging status lags when
// the robot leaves, so a robot that is running away from the dock is not
// docked even while charging is still reported.
func (v *View) Docked() bool {
	onDock := v.Charging() || v.ChargingCompleted() || v.Washing() || v.Drying() || v.WashingPaused()
	if !onDock {
		return false
	}
	return !(v.Running() && !v.Returning() && !v.FastMapping() && !v.Cruising())
}

// Idle reports a robot with nothing to do.
func (v *View) Idle() bool {
	return !v.Started() && !v.Running() && !v.Returning()
}

// Sleeping reports the low-power sleep state.
func (v *View) Sleeping() bool { return v.Status() == StatusSleeping }

// Upgrading reports a firmware update in progress.
func (v *View) Upgrading() bool { return v.Status() == StatusOta || v.State() == StateUpgrading }

// AutoCleaning reports a whole-home job.
func (v *View) AutoCleaning() bool {
	return v.Status() == StatusCleaning || slices.Contains(autoTasks, v.TaskStatus())
}

// ZoneCleaning reports a zone job.
func (v *View) ZoneCleaning() bool {
	return v.Status() == StatusZoneCleaning || slices.Contains(zoneTasks, v.TaskStatus())
}

// SegmentCleaning reports a room job.
func (v *View) SegmentCleaning() bool {
	return v.Status() == StatusSegmentCleaning || slices.Contains(segmentTasks, v.TaskStatus())
}

// SpotCleaning reports a spot job.
func (v *View) SpotCleaning() bool {
	ts := v.TaskStatus()
	return v.Status() == StatusSpotCleaning || ts == TaskStatusSpotCleaning || ts == TaskStatusSpotCleaningPaused
}

// ShortcutRunning reports a shortcut job.
func (v *View) ShortcutRunning() bool { return v.Status() == StatusShortcut }

// WaterTankInstalled reports an installed tank or mop.
func (v *View) WaterTankInstalled() bool {
	wt := v.WaterTank()
	return wt == WaterTankInstalled || wt == WaterTankMopInstalled
}

// MopInstalled reports an attached mop pad.
func (v *View) MopInstalled() bool {
	if v.Has(capability.SelfWashBase) {
		if v.store.Has(property.MopPadInstalled) {
			return v.flag(property.MopPadInstalled)
		}
		return true
	}
	return v.WaterTank() == WaterTankMopInstalled
}

// AutoEmptying reports the station emptying the dust bin.
func (v *View) AutoEmptying() bool { return v.AutoEmptyStatus() == AutoEmptyStatusActive }

// MapBackupInProgress reports a running map backup or recovery.
func (v *View) MapBackupInProgress() bool {
	return v.MapBackupStatus() == MapTransferStatusRunning || v.MapRecoveryStatus() == MapTransferStatusRunning
}

// Located reports a successful localization.
func (v *View) Located() bool {
	r := v.RelocationStatus()
	return r == RelocationStatusLocated || r == RelocationStatusSuccess
}

// GoTo returns the active go-to target.
func (v *View) GoTo() (GoToTarget, bool) {
	if v.session == nil {
		return GoToTarget{}, false
	}
	return v.session.GoTo()
}

// GoToActive reports a go-to navigation in any phase.
func (v *View) GoToActive() bool {
	_, ok := v.GoTo()
	return ok
}

// Active reports a robot that warrants faster polling.
func (v *View) Active() bool {
	return v.Started() || v.Running() || v.Returning() || v.Washing() || v.Drying() || v.AutoEmptying()
}
