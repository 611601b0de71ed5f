package command

import (
	"context"
	"errors"
	"time"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
)

// goToRecord is the orchestrator side of a go-to navigation. The phase
// lives in the session state so that the status view can report it.
type goToRecord struct {
	target   codec.Point
	native   bool
	saved    []property.Update
	deadline time.Time

	// stopRequired means the emulating zone job keeps cleaning after the
	// robot arrives and must be stopped if it is still running when the
	// settings are written back.
	stopRequired bool
}

// GoTo sends the robot to a map point. Robots without native point
// navigation get a small zone job at the target; suction and mopping are
// turned down for the trip and written back afterwards.
func (o *Orchestrator) GoTo(ctx context.Context, x, y int) error {
	const op = "go to"
	if reason := o.view.CanGoTo(); reason != "" {
		return invalidAction(op, reason)
	}
	if err := o.checkConnected(op); err != nil {
		return err
	}

	p := codec.Point{X: x, Y: y}
	rec := &goToRecord{
		target:   p,
		native:   o.view.Has(capability.CruisePoint),
		deadline: o.now().Add(o.cfg.GoToTimeout),
	}
	o.mu.Lock()
	if o.goTo != nil {
		o.mu.Unlock()
		return invalidAction(op, "go to already in progress")
	}
	o.goTo = rec
	o.mu.Unlock()
	o.view.Session().SetGoTo(&status.GoToTarget{X: x, Y: y, Phase: status.GoToPending})
	o.emitGoTo(log.SourceLocal, status.GoToInactive, status.GoToPending, "requested")

	var err error
	if rec.native {
		err = o.startCustom(ctx, op, status.StatusCruisingPoint, status.TaskStatusCruisingPoint, codec.CruisePoint(p))
	} else {
		err = o.emulateGoTo(ctx, op, rec)
	}
	if err != nil {
		o.debugLog("go to failed", "x", x, "y", y, "error", err)
		return errors.Join(err, o.restoreGoTo(ctx, log.SourceLocal, "failed", false))
	}
	return nil
}

func (o *Orchestrator) emulateGoTo(ctx context.Context, op string, rec *goToRecord) error {
	rec.stopRequired = true

	if o.view.SuctionLevel() != status.SuctionLevelQuiet {
		rec.saved = append(rec.saved, property.Update{ID: property.SuctionLevel, Value: o.store.Value(property.SuctionLevel)})
		if err := o.writeValue(ctx, op, classSetting, property.SuctionLevel, property.Int(int64(status.SuctionLevelQuiet))); err != nil {
			return err
		}
	}

	if mode := o.view.CleaningMode(); mode != status.CleaningModeSweeping && mode != status.CleaningModeUnknown {
		rec.saved = append(rec.saved, property.Update{ID: property.CleaningMode, Value: o.store.Value(property.CleaningMode)})
		var err error
		if o.view.UsesGroup() {
			err = o.writeGroup(ctx, op, func(g codec.Group) codec.Group { return g.WithMode(int64(status.CleaningModeSweeping)) })
		} else {
			err = o.writeValue(ctx, op, classSetting, property.CleaningMode, property.Int(int64(status.CleaningModeSweeping)))
		}
		if err != nil {
			return err
		}
	}

	_, water := o.customLevels()
	zone := codec.ZoneAround(rec.target, goToZoneRadius)
	return o.startCustom(ctx, op, status.StatusZoneCleaning, status.TaskStatusZoneCleaning,
		codec.ZoneCleaning([]codec.Zone{zone}, 1, int(status.SuctionLevelQuiet), water))
}

func (o *Orchestrator) activeGoTo() *goToRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.goTo
}

// goToRunning reports whether the job carrying the go-to is observed.
func (o *Orchestrator) goToRunning(rec *goToRecord) bool {
	if rec.native {
		return o.view.Cruising()
	}
	return o.view.ZoneCleaning()
}

// restoreGoTo ends the go-to and writes back the saved settings. With
// stop set, an emulating zone job that is still running is stopped once the
// settings are back.
// Only one caller wins when Tick and Stop race.
func (o *Orchestrator) restoreGoTo(ctx context.Context, src log.Source, reason string, stop bool) error {
	o.mu.Lock()
	rec := o.goTo
	o.goTo = nil
	o.mu.Unlock()
	if rec == nil {
		return nil
	}

	session := o.view.Session()
	from := status.GoToInactive
	if t, ok := session.GoTo(); ok {
		from = t.Phase
	}
	session.SetGoToPhase(status.GoToRestoring)
	o.emitGoTo(src, from, status.GoToRestoring, reason)

	stopJob := stop && rec.stopRequired && o.view.Started()
	var errs []error
	for _, u := range rec.saved {
		if u.Value.IsNone() {
			continue
		}
		errs = append(errs, o.writeValue(ctx, "restore go to", classSetting, u.ID, u.Value))
	}
	if stopJob {
		errs = append(errs, o.action(ctx, "stop go to", classMotion, property.ActionStop, nil,
			update(property.Status, int64(status.StatusIdle)),
			update(property.TaskStatus, int64(status.TaskStatusCompleted))))
	}

	session.SetGoTo(nil)
	o.emitGoTo(src, status.GoToRestoring, status.GoToInactive, reason)
	return errors.Join(errs...)
}

func (o *Orchestrator) emitGoTo(src log.Source, from, to status.GoToPhase, reason string) {
	o.debugLog("go to phase", "from", from, "to", to, "reason", reason)
	o.emit(log.Event{
		Source:   src,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityGoTo,
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

// Tick runs the confirmation checks after each refresh: go-to progress
// and cleanup tracking.
func (o *Orchestrator) Tick(ctx context.Context) error {
	o.trackCleanup()
	return o.tickGoTo(ctx)
}

func (o *Orchestrator) tickGoTo(ctx context.Context) error {
	rec := o.activeGoTo()
	if rec == nil {
		return nil
	}
	target, ok := o.view.GoTo()
	if !ok {
		return nil
	}

	running := o.goToRunning(rec)
	switch target.Phase {
	case status.GoToPending:
		switch {
		case running:
			o.view.Session().SetGoToPhase(status.GoToActive)
			o.emitGoTo(log.SourceTimer, status.GoToPending, status.GoToActive, "started")
		case o.view.HasError():
			return o.restoreGoTo(ctx, log.SourceTimer, "error", true)
		case !o.now().Before(rec.deadline):
			return o.restoreGoTo(ctx, log.SourceTimer, "timeout", true)
		}
	case status.GoToActive:
		switch {
		case o.view.HasError():
			return o.restoreGoTo(ctx, log.SourceTimer, "error", true)
		case !running:
			return o.restoreGoTo(ctx, log.SourceTimer, "finished", false)
		}
	}
	return nil
}

// trackCleanup follows task status transitions: a task finishing marks the
// cleanup completed, a new task marks it started.
func (o *Orchestrator) trackCleanup() {
	ts := o.view.TaskStatus()
	if ts == status.TaskStatusUnknown {
		return
	}
	session := o.view.Session()
	prev := session.SwapTaskStatus(ts)
	if prev == ts {
		return
	}

	oldStarted, oldCompleted := session.Cleanup()
	switch {
	case ts == status.TaskStatusCompleted:
		if prev == status.TaskStatusUnknown {
			return
		}
		session.SetCleanup(false, true)
	case prev == status.TaskStatusCompleted || prev == status.TaskStatusUnknown:
		session.SetCleanup(true, false)
	default:
		return
	}

	newStarted, newCompleted := session.Cleanup()
	if oldStarted == newStarted && oldCompleted == newCompleted {
		return
	}
	o.emit(log.Event{
		Source:   log.SourceTimer,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityCleanup,
			OldState: cleanupState(oldStarted, oldCompleted),
			NewState: cleanupState(newStarted, newCompleted),
			Reason:   "task " + ts.String(),
		},
	})
}

func cleanupState(started, completed bool) string {
	switch {
	case completed:
		return "COMPLETED"
	case started:
		return "STARTED"
	default:
		return "IDLE"
	}
}
