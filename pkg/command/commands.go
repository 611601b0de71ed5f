package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Custom cleaning limits.
const (
	MaxZones       = 10
	MaxSpots       = 10
	MaxRepeats     = 3
	goToZoneRadius = 50
)

// Parameter slots of the start_custom action.
const (
	paramStatus     = 1
	paramProperties = 10
)

// Consumable names a resettable wear part.
type Consumable uint8

const (
	ConsumableMainBrush Consumable = iota + 1
	ConsumableSideBrush
	ConsumableFilter
	ConsumableSecondaryFilter
	ConsumableSensor
	ConsumableMopPad
	ConsumableSilverIon
	ConsumableDetergent
)

type consumableDef struct {
	name   string
	action property.ActionID
	left   property.ID
	flag   capability.Flag
}

var consumables = map[Consumable]consumableDef{
	ConsumableMainBrush:       {"main_brush", property.ActionResetMainBrush, property.MainBrushLeft, 0},
	ConsumableSideBrush:       {"side_brush", property.ActionResetSideBrush, property.SideBrushLeft, 0},
	ConsumableFilter:          {"filter", property.ActionResetFilter, property.FilterLeft, 0},
	ConsumableSecondaryFilter: {"secondary_filter", property.ActionResetSecondaryFilter, property.SecondaryFilterLeft, capability.SecondaryFilter},
	ConsumableSensor:          {"sensor", property.ActionResetSensor, property.SensorDirtyLeft, capability.SensorCleaning},
	ConsumableMopPad:          {"mop_pad", property.ActionResetMopPad, property.MopPadLeft, capability.SelfWashBase},
	ConsumableSilverIon:       {"silver_ion", property.ActionResetSilverIon, property.SilverIonLeft, capability.SilverIon},
	ConsumableDetergent:       {"detergent", property.ActionResetDetergent, property.DetergentLeft, capability.Detergent},
}

func (c Consumable) String() string {
	if d, ok := consumables[c]; ok {
		return d.name
	}
	return fmt.Sprintf("consumable(%d)", uint8(c))
}

// ParseConsumable looks up a consumable by name.
func ParseConsumable(name string) (Consumable, bool) {
	for c, d := range consumables {
		if d.name == name {
			return c, true
		}
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Motion
// ---------------------------------------------------------------------------

// Start starts a full cleaning job or resumes a paused one.
func (o *Orchestrator) Start(ctx context.Context) error {
	const op = "start"
	if reason := o.view.CanStart(); reason != "" {
		return invalidAction(op, reason)
	}
	var updates []property.Update
	if !o.view.Started() {
		updates = append(updates,
			update(property.Status, int64(status.StatusCleaning)),
			update(property.TaskStatus, int64(status.TaskStatusAutoCleaning)))
	} else if o.store.Has(property.CleaningPaused) {
		updates = append(updates, update(property.CleaningPaused, 0))
	}
	return o.action(ctx, op, classMotion, property.ActionStart, nil, updates...)
}

// Pause pauses the current job or return.
func (o *Orchestrator) Pause(ctx context.Context) error {
	const op = "pause"
	if reason := o.view.CanPause(); reason != "" {
		return invalidAction(op, reason)
	}
	return o.action(ctx, op, classMotion, property.ActionPause, nil,
		update(property.Status, int64(status.StatusPaused)))
}

// StartPause toggles between running and paused.
func (o *Orchestrator) StartPause(ctx context.Context) error {
	if (o.view.Running() || o.view.Returning()) && !o.view.Paused() {
		return o.Pause(ctx)
	}
	return o.Start(ctx)
}

// Stop ends the current job. A go-to in progress is ended and its
// settings written back.
func (o *Orchestrator) Stop(ctx context.Context) error {
	const op = "stop"
	if reason := o.view.CanStop(); reason != "" {
		return invalidAction(op, reason)
	}
	err := o.action(ctx, op, classMotion, property.ActionStop, nil,
		update(property.Status, int64(status.StatusIdle)),
		update(property.TaskStatus, int64(status.TaskStatusCompleted)))
	if err != nil {
		return err
	}
	if o.activeGoTo() != nil {
		return o.restoreGoTo(ctx, log.SourceLocal, "stopped", false)
	}
	return nil
}

// ReturnToBase sends the robot to its dock.
func (o *Orchestrator) ReturnToBase(ctx context.Context) error {
	const op = "return to base"
	if reason := o.view.CanReturn(); reason != "" {
		return invalidAction(op, reason)
	}
	return o.action(ctx, op, classMotion, property.ActionCharge, nil,
		update(property.Status, int64(status.StatusBackHome)))
}

// Locate makes the robot announce itself.
func (o *Orchestrator) Locate(ctx context.Context) error {
	return o.action(ctx, "locate", classSetting, property.ActionLocate, nil)
}

// ---------------------------------------------------------------------------
// Custom cleaning
// ---------------------------------------------------------------------------

// CleanZone cleans up to MaxZones rectangles.
func (o *Orchestrator) CleanZone(ctx context.Context, zones []codec.Zone, repeats int) error {
	const op = "clean zone"
	if err := o.checkCustom(op, capability.ZoneCleaning); err != nil {
		return err
	}
	if len(zones) == 0 || len(zones) > MaxZones {
		return invalidValue("zones", len(zones), "expected 1 to %d zones", MaxZones)
	}
	for _, z := range zones {
		if z.X1 == z.X2 || z.Y1 == z.Y2 {
			return invalidValue("zones", z, "zone has no area")
		}
	}
	if err := checkRange("repeats", int64(repeats), 1, MaxRepeats); err != nil {
		return err
	}
	suction, water := o.customLevels()
	return o.startCustom(ctx, op, status.StatusZoneCleaning, status.TaskStatusZoneCleaning,
		codec.ZoneCleaning(zones, repeats, suction, water))
}

// CleanSegments cleans rooms in the given order.
func (o *Orchestrator) CleanSegments(ctx context.Context, segments []int, repeats int) error {
	const op = "clean segments"
	if err := o.checkCustom(op, capability.SegmentCleaning); err != nil {
		return err
	}
	if len(segments) == 0 {
		return invalidValue("segments", segments, "no segments given")
	}
	seen := make(map[int]bool, len(segments))
	for _, s := range segments {
		if s <= 0 {
			return invalidValue("segments", s, "segment ids are positive")
		}
		if seen[s] {
			return invalidValue("segments", s, "duplicate segment")
		}
		seen[s] = true
	}
	if err := checkRange("repeats", int64(repeats), 1, MaxRepeats); err != nil {
		return err
	}
	suction, water := o.customLevels()
	return o.startCustom(ctx, op, status.StatusSegmentCleaning, status.TaskStatusSegmentCleaning,
		codec.SegmentCleaning(segments, repeats, suction, water))
}

// CleanSpot cleans around each point.
func (o *Orchestrator) CleanSpot(ctx context.Context, points []codec.Point, repeats int) error {
	const op = "clean spot"
	if err := o.checkCustom(op, capability.SpotCleaning); err != nil {
		return err
	}
	if len(points) == 0 || len(points) > MaxSpots {
		return invalidValue("points", len(points), "expected 1 to %d points", MaxSpots)
	}
	if err := checkRange("repeats", int64(repeats), 1, MaxRepeats); err != nil {
		return err
	}
	suction, water := o.customLevels()
	return o.startCustom(ctx, op, status.StatusSpotCleaning, status.TaskStatusSpotCleaning,
		codec.SpotCleaning(points, repeats, suction, water))
}

// FastMapping starts a mapping run without cleaning.
func (o *Orchestrator) FastMapping(ctx context.Context) error {
	const op = "fast mapping"
	if reason := o.view.CanFastMap(); reason != "" {
		return invalidAction(op, reason)
	}
	params := []transport.ActionParam{{Piid: paramStatus, Value: int(status.StatusFastMapping)}}
	return o.action(ctx, op, classTask, property.ActionStartCustom, params,
		update(property.Status, int64(status.StatusFastMapping)),
		update(property.TaskStatus, int64(status.TaskStatusFastMapping)))
}

func (o *Orchestrator) checkCustom(op string, flag capability.Flag) error {
	if !o.view.Has(flag) {
		return invalidAction(op, "not supported on this model")
	}
	if reason := o.view.CanStartCustom(); reason != "" {
		return invalidAction(op, reason)
	}
	return nil
}

func (o *Orchestrator) startCustom(ctx context.Context, op string, st status.Status, ts status.TaskStatus, props string) error {
	params := []transport.ActionParam{
		{Piid: paramStatus, Value: int(st)},
		{Piid: paramProperties, Value: props},
	}
	return o.action(ctx, op, classTask, property.ActionStartCustom, params,
		update(property.Status, int64(st)),
		update(property.TaskStatus, int64(ts)))
}

// customLevels returns the suction and water codes embedded in custom
// cleaning parameters. Unknown values fall back to the device defaults.
func (o *Orchestrator) customLevels() (suction, water int) {
	suction = int(o.view.SuctionLevel())
	if suction < 0 {
		suction = int(status.SuctionLevelStandard)
	}
	if o.view.UsesGroup() {
		water = int(o.view.MopPadHumidity())
	} else {
		water = int(o.view.WaterVolume())
	}
	if water < 0 {
		water = int(status.WaterVolumeMedium)
	}
	return suction, water
}

// ---------------------------------------------------------------------------
// Station
// ---------------------------------------------------------------------------

// Washing arguments of the start_washing action.
const (
	washStart = "2,1"
	washPause = "2,0"
	dryStart  = "3,1"
	dryStop   = "3,0"
)

// StartWashing starts or resumes a mop wash.
func (o *Orchestrator) StartWashing(ctx context.Context) error {
	const op = "start washing"
	if reason := o.view.CanWash(); reason != "" {
		return invalidAction(op, reason)
	}
	return o.washing(ctx, op, washStart, status.SelfWashBaseStatusWashing)
}

// PauseWashing pauses a running mop wash.
func (o *Orchestrator) PauseWashing(ctx context.Context) error {
	const op = "pause washing"
	if !o.view.Washing() {
		return invalidAction(op, "mop is not being washed")
	}
	return o.washing(ctx, op, washPause, status.SelfWashBaseStatusPaused)
}

// StartDrying starts drying the mop.
func (o *Orchestrator) StartDrying(ctx context.Context) error {
	const op = "start drying"
	if reason := o.view.CanDry(); reason != "" {
		return invalidAction(op, reason)
	}
	return o.washing(ctx, op, dryStart, status.SelfWashBaseStatusDrying)
}

// StopDrying stops drying the mop.
func (o *Orchestrator) StopDrying(ctx context.Context) error {
	const op = "stop drying"
	if !o.view.Drying() {
		return invalidAction(op, "mop is not drying")
	}
	return o.washing(ctx, op, dryStop, status.SelfWashBaseStatusIdle)
}

func (o *Orchestrator) washing(ctx context.Context, op, arg string, next status.SelfWashBaseStatus) error {
	params := []transport.ActionParam{{Piid: 1, Value: arg}}
	return o.action(ctx, op, classTask, property.ActionStartWashing, params,
		update(property.SelfWashBaseStatus, int64(next)))
}

// StartAutoEmpty empties the dust bin into the station.
func (o *Orchestrator) StartAutoEmpty(ctx context.Context) error {
	const op = "start auto empty"
	if reason := o.view.CanAutoEmpty(); reason != "" {
		return invalidAction(op, reason)
	}
	return o.action(ctx, op, classTask, property.ActionStartAutoEmpty, nil,
		update(property.AutoEmptyStatus, int64(status.AutoEmptyStatusActive)))
}

// ClearWarning dismisses a warning-level error code.
func (o *Orchestrator) ClearWarning(ctx context.Context) error {
	const op = "clear warning"
	if !o.view.HasWarning() {
		return invalidAction(op, "no warning to clear")
	}
	return o.action(ctx, op, classSetting, property.ActionClearWarning, nil,
		update(property.Error, int64(status.ErrorCodeNoError)))
}

// ResetConsumable marks a wear part as new.
func (o *Orchestrator) ResetConsumable(ctx context.Context, c Consumable) error {
	d, ok := consumables[c]
	if !ok {
		return invalidAction("reset consumable", fmt.Sprintf("unknown consumable %d", c))
	}
	op := "reset " + d.name
	if d.flag != 0 && !o.view.Has(d.flag) {
		return invalidAction(op, "not supported on this model")
	}
	return o.action(ctx, op, classSetting, d.action, nil, update(d.left, 100))
}

// Consumables returns the consumables the model has.
func (o *Orchestrator) Consumables() []Consumable {
	var out []Consumable
	for c, d := range consumables {
		if d.flag == 0 || o.view.Has(d.flag) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
