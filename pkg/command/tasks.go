package command

import (
	"context"
	"slices"
	"strconv"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Window used when DND is first enabled on a robot without tasks.
const (
	defaultDNDStart = "22:00"
	defaultDNDEnd   = "08:00"
)

// raw returns the wire form of a stored property as text.
func (o *Orchestrator) raw(id property.ID) string {
	if s, ok := o.store.Str(id); ok {
		return s
	}
	if n, ok := o.store.Int(id); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

// ---------------------------------------------------------------------------
// Do not disturb
// ---------------------------------------------------------------------------

// SetDND sets the do-not-disturb window. Robots with DND tasks get the
// first task rewritten; others get the three plain properties.
func (o *Orchestrator) SetDND(ctx context.Context, enabled bool, start, end string) error {
	const op = "set dnd"
	if !o.view.Has(capability.DND) {
		return invalidAction(op, "not supported on this model")
	}
	if err := codec.ValidateWindow(start, end); err != nil {
		return invalidValue("dnd", start+"-"+end, "%v", err)
	}
	if o.view.Has(capability.DNDTask) {
		return o.updateDNDTasks(ctx, op, func(t *codec.DNDTask) {
			t.Enabled = int(boolInt(enabled))
			t.Start = start
			t.End = end
		})
	}
	if err := o.writeValue(ctx, op, classSetting, property.DNDStart, property.String(start)); err != nil {
		return err
	}
	if err := o.writeValue(ctx, op, classSetting, property.DNDEnd, property.String(end)); err != nil {
		return err
	}
	return o.writeValue(ctx, op, classSetting, property.DND, property.Int(boolInt(enabled)))
}

// SetDNDTask adds or replaces one DND task, matched by ID.
func (o *Orchestrator) SetDNDTask(ctx context.Context, task codec.DNDTask) error {
	const op = "set dnd task"
	if !o.view.Has(capability.DNDTask) {
		return invalidAction(op, "not supported on this model")
	}
	if task.ID <= 0 {
		return invalidValue("dnd_task", task.ID, "task ids are positive")
	}
	if err := task.Validate(); err != nil {
		return invalidValue("dnd_task", task.ID, "%v", err)
	}
	tasks, err := o.dndTasks(op)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(tasks, func(t codec.DNDTask) bool { return t.ID == task.ID })
	if i < 0 {
		tasks = append(tasks, task)
	} else {
		tasks[i] = task
	}
	return o.writeDNDTasks(ctx, op, tasks)
}

func (o *Orchestrator) setDNDEnabled(ctx context.Context, op, name string, v any) error {
	b, err := toBool(name, v)
	if err != nil {
		return err
	}
	if o.view.Has(capability.DNDTask) {
		return o.updateDNDTasks(ctx, op, func(t *codec.DNDTask) { t.Enabled = int(boolInt(b)) })
	}
	return o.writeValue(ctx, op, classSetting, property.DND, property.Int(boolInt(b)))
}

func (o *Orchestrator) setDNDStart(ctx context.Context, op, name string, v any) error {
	return o.setDNDBound(ctx, op, name, v, true)
}

func (o *Orchestrator) setDNDEnd(ctx context.Context, op, name string, v any) error {
	return o.setDNDBound(ctx, op, name, v, false)
}

func (o *Orchestrator) setDNDBound(ctx context.Context, op, name string, v any, isStart bool) error {
	s, ok := v.(string)
	if !ok {
		return invalidValue(name, v, "expected HH:MM")
	}
	if _, err := codec.ParseTimeOfDay(s); err != nil {
		return invalidValue(name, v, "%v", err)
	}

	if o.view.Has(capability.DNDTask) {
		return o.updateDNDTasks(ctx, op, func(t *codec.DNDTask) {
			if isStart {
				t.Start = s
			} else {
				t.End = s
			}
		})
	}

	id, other := property.DNDStart, o.raw(property.DNDEnd)
	start, end := s, other
	if !isStart {
		id, other = property.DNDEnd, o.raw(property.DNDStart)
		start, end = other, s
	}
	if other != "" {
		if err := codec.ValidateWindow(start, end); err != nil {
			return invalidValue(name, v, "%v", err)
		}
	}
	return o.writeValue(ctx, op, classSetting, id, property.String(s))
}

// updateDNDTasks edits the first DND task, creating one when the robot
// has none.
func (o *Orchestrator) updateDNDTasks(ctx context.Context, op string, edit func(*codec.DNDTask)) error {
	tasks, err := o.dndTasks(op)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		tasks = []codec.DNDTask{{ID: 1, Start: defaultDNDStart, End: defaultDNDEnd, Weekdays: codec.AllWeekdays}}
	}
	edit(&tasks[0])
	if err := tasks[0].Validate(); err != nil {
		return invalidValue("dnd_task", tasks[0].ID, "%v", err)
	}
	return o.writeDNDTasks(ctx, op, tasks)
}

func (o *Orchestrator) dndTasks(op string) ([]codec.DNDTask, error) {
	tasks, err := codec.ParseDNDTasks(o.raw(property.DNDTask))
	if err != nil {
		return nil, invalidAction(op, err.Error())
	}
	return tasks, nil
}

func (o *Orchestrator) writeDNDTasks(ctx context.Context, op string, tasks []codec.DNDTask) error {
	s, err := codec.FormatDNDTasks(tasks)
	if err != nil {
		return invalidValue("dnd_task", len(tasks), "%v", err)
	}
	return o.writeValue(ctx, op, classSetting, property.DNDTask, property.String(s))
}

// ---------------------------------------------------------------------------
// Off-peak charging
// ---------------------------------------------------------------------------

// SetOffPeakCharging sets the off-peak charging window.
func (o *Orchestrator) SetOffPeakCharging(ctx context.Context, w codec.OffPeakCharging) error {
	const op = "set off-peak charging"
	if !o.view.Has(capability.OffPeakCharging) {
		return invalidAction(op, "not supported on this model")
	}
	if err := w.Validate(); err != nil {
		return invalidValue("off_peak_charging", w.Start+"-"+w.End, "%v", err)
	}
	s, err := w.Format()
	if err != nil {
		return invalidValue("off_peak_charging", w, "%v", err)
	}
	return o.writeValue(ctx, op, classSetting, property.OffPeakCharging, property.String(s))
}

// ---------------------------------------------------------------------------
// Schedule
// ---------------------------------------------------------------------------

// Schedule returns the parsed schedule.
func (o *Orchestrator) Schedule() ([]codec.ScheduleTask, error) {
	return codec.ParseSchedule(o.raw(property.Schedule))
}

// SetSchedule adds or replaces one schedule task, matched by ID.
func (o *Orchestrator) SetSchedule(ctx context.Context, task codec.ScheduleTask) error {
	const op = "set schedule"
	if err := task.Validate(); err != nil {
		return invalidValue("schedule", task.ID, "%v", err)
	}
	if task.Suction < int(status.SuctionLevelQuiet) || task.Suction > int(status.SuctionLevelTurbo) {
		return invalidValue("schedule", task.Suction, "suction level out of range")
	}
	tasks, err := o.Schedule()
	if err != nil {
		return invalidAction(op, err.Error())
	}
	i := slices.IndexFunc(tasks, func(t codec.ScheduleTask) bool { return t.ID == task.ID })
	if i < 0 {
		tasks = append(tasks, task)
	} else {
		tasks[i] = task
	}
	return o.writeValue(ctx, op, classSetting, property.Schedule, property.String(codec.FormatSchedule(tasks)))
}

// DeleteSchedule removes one schedule task. The device deletes it through
// an action; the local schedule drops it right away.
func (o *Orchestrator) DeleteSchedule(ctx context.Context, id int) error {
	const op = "delete schedule"
	tasks, err := o.Schedule()
	if err != nil {
		return invalidAction(op, err.Error())
	}
	i := slices.IndexFunc(tasks, func(t codec.ScheduleTask) bool { return t.ID == id })
	if i < 0 {
		return invalidValue("schedule", id, "no such schedule")
	}
	tasks = slices.Delete(tasks, i, i+1)

	idAddr, ok := o.table.Address(property.ScheduleID)
	if !ok {
		return invalidAction(op, "schedule id is not addressable")
	}
	params := []transport.ActionParam{{Piid: idAddr.Piid, Value: id}}
	return o.action(ctx, op, classSetting, property.ActionDeleteSchedule, params,
		property.Update{ID: property.Schedule, Value: property.String(codec.FormatSchedule(tasks))})
}

// ---------------------------------------------------------------------------
// Shortcuts
// ---------------------------------------------------------------------------

// Shortcuts returns the saved shortcuts.
func (o *Orchestrator) Shortcuts() ([]codec.Shortcut, error) {
	return codec.ParseShortcuts(o.raw(property.QuickCommand))
}

// RunShortcut starts a saved shortcut.
func (o *Orchestrator) RunShortcut(ctx context.Context, id int) error {
	const op = "run shortcut"
	if reason := o.view.CanRunShortcut(); reason != "" {
		return invalidAction(op, reason)
	}
	list, err := o.Shortcuts()
	if err != nil {
		return invalidAction(op, err.Error())
	}
	if len(list) > 0 && !slices.ContainsFunc(list, func(s codec.Shortcut) bool { return s.ID == id }) {
		return invalidValue("shortcut", id, "no such shortcut")
	}
	params := []transport.ActionParam{
		{Piid: paramStatus, Value: int(status.StatusShortcut)},
		{Piid: paramProperties, Value: strconv.Itoa(id)},
	}
	return o.action(ctx, op, classTask, property.ActionStartCustom, params,
		update(property.Status, int64(status.StatusShortcut)),
		update(property.TaskStatus, int64(status.TaskStatusAutoCleaning)))
}

// ---------------------------------------------------------------------------
// Auto-switch and AI detection
// ---------------------------------------------------------------------------

// SetAutoSwitch sets one key of the auto-switch settings. The device takes
// the single pair; the store keeps the merged list.
func (o *Orchestrator) SetAutoSwitch(ctx context.Context, key string, value int) error {
	const op = "set auto switch"
	if !o.view.Has(capability.AutoSwitchSettings) {
		return invalidAction(op, "not supported on this model")
	}
	if key == "" {
		return invalidValue("auto_switch", key, "empty key")
	}
	list, err := codec.ParseAutoSwitch(o.raw(property.AutoSwitchSettings))
	if err != nil {
		return invalidAction(op, err.Error())
	}
	merged, err := codec.FormatAutoSwitch(codec.MergeAutoSwitch(list, key, value))
	if err != nil {
		return invalidValue("auto_switch", key, "%v", err)
	}
	return o.write(ctx, op, classSetting, property.AutoSwitchSettings, property.String(merged),
		codec.FormatAutoSwitchWrite(key, value))
}

// AutoSwitch returns one key of the auto-switch settings.
func (o *Orchestrator) AutoSwitch(key string) (int, bool) {
	list, err := codec.ParseAutoSwitch(o.raw(property.AutoSwitchSettings))
	if err != nil {
		return 0, false
	}
	return codec.AutoSwitchValue(list, key)
}

// SetAIDetection toggles one AI detection key, keeping the form the
// device reported.
func (o *Orchestrator) SetAIDetection(ctx context.Context, key string, on bool) error {
	const op = "set ai detection"
	if !o.view.Has(capability.AIDetection) {
		return invalidAction(op, "not supported on this model")
	}
	current := o.raw(property.AIDetection)
	if current == "" {
		current = "0"
		if o.view.Has(capability.AIDetectionObject) {
			current = "{}"
		}
	}
	ai, err := codec.ParseAIDetection(current)
	if err != nil {
		return invalidAction(op, err.Error())
	}
	next, err := ai.Set(key, on)
	if err != nil {
		return invalidValue("ai_detection", key, "%v", err)
	}
	if next.IsObject() {
		return o.writeValue(ctx, op, classSetting, property.AIDetection, property.String(next.ObjectJSON()))
	}
	return o.writeValue(ctx, op, classSetting, property.AIDetection, property.Int(next.Mask))
}
