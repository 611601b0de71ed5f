package status

import "github.com/vacsync/vacsync-go/pkg/capability"

// Permission predicates. Each returns "" when the operation is allowed and
// a short reason otherwise, so that callers can surface why.

// CanStart checks starting or resuming a job.
func (v *View) CanStart() string {
	switch {
	case v.Upgrading():
		return "firmware update in progress"
	case v.FastMapping() && !v.Paused():
		return "fast mapping in progress"
	case v.Running() && !v.Paused() && !v.Returning():
		return "already running"
	}
	return ""
}

// CanPause checks pausing a job or a return.
func (v *View) CanPause() string {
	if !(v.Running() || v.Returning()) || v.Paused() {
		return "nothing to pause"
	}
	return ""
}

// CanStop checks stopping the current job.
func (v *View) CanStop() string {
	if v.Started() || v.Running() || v.Returning() || v.Cruising() || v.GoToActive() || v.ReturningPaused() {
		return ""
	}
	return "nothing to stop"
}

// CanReturn checks sending the robot to the dock.
func (v *View) CanReturn() string {
	switch {
	case v.Docked():
		return "already docked"
	case v.Returning():
		return "already returning"
	case v.Upgrading():
		return "firmware update in progress"
	}
	return ""
}

// CanStartCustom checks starting a zone, segment or spot job.
func (v *View) CanStartCustom() string {
	switch {
	case v.Upgrading():
		return "firmware update in progress"
	case v.FastMapping():
		return "fast mapping in progress"
	case v.Cruising() && !v.GoToActive():
		return "cruising in progress"
	}
	return ""
}

// CanFastMap checks starting a mapping run.
func (v *View) CanFastMap() string {
	switch {
	case !v.Has(capability.FastMapping):
		return "fast mapping not supported"
	case v.Started():
		return "a job is in progress"
	case v.HasError():
		return "robot has an error"
	}
	return ""
}

// CanGoTo checks navigating to a point.
func (v *View) CanGoTo() string {
	switch {
	case !v.Has(capability.CruisePoint) && !v.Has(capability.ZoneCleaning):
		return "go to not supported"
	case v.GoToActive():
		return "go to already in progress"
	case v.FastMapping():
		return "fast mapping in progress"
	case v.Cruising():
		return "cruising in progress"
	case v.Started() && !v.Paused():
		return "a job is in progress"
	case v.Upgrading():
		return "firmware update in progress"
	}
	return ""
}

// CanChangeSuction checks changing the suction level.
func (v *View) CanChangeSuction() string {
	switch {
	case v.Cruising():
		return "cannot change suction while cruising"
	case v.CustomizedCleaning() && !v.ZoneCleaning() && !v.SpotCleaning():
		return "customized cleaning is active"
	}
	return ""
}

// CanChangeWater checks changing water volume or mop pad humidity.
func (v *View) CanChangeWater() string {
	switch {
	case v.Cruising():
		return "cannot change water while cruising"
	case v.CustomizedCleaning() && !v.ZoneCleaning() && !v.SpotCleaning():
		return "customized cleaning is active"
	case v.CleaningMode() == CleaningModeSweeping && v.UsesGroup():
		return "mopping is off"
	}
	return ""
}

// CanChangeCleaningMode checks changing the cleaning mode.
func (v *View) CanChangeCleaningMode() string {
	switch {
	case v.Cruising():
		return "cannot change cleaning mode while cruising"
	case v.FastMapping():
		return "fast mapping in progress"
	case v.Started() && !v.Paused() && !v.Has(capability.MopPadLifting):
		return "cannot change cleaning mode while cleaning"
	case v.Washing():
		return "mop is being washed"
	}
	return ""
}

// CanChangeCleaningRoute checks changing the cleaning route.
func (v *View) CanChangeCleaningRoute() string {
	if !v.Has(capability.CleaningRoute) {
		return "cleaning route not supported"
	}
	if v.Started() && !v.Paused() {
		return "cannot change route while cleaning"
	}
	return ""
}

// CanChangeSelfClean checks changing self-clean frequency or value.
func (v *View) CanChangeSelfClean() string {
	switch {
	case !v.Has(capability.SelfWashBase):
		return "no self-wash base"
	case v.Washing():
		return "mop is being washed"
	}
	return ""
}

// CanWash checks starting or resuming a mop wash.
func (v *View) CanWash() string {
	switch {
	case !v.Has(capability.SelfWashBase):
		return "no self-wash base"
	case !v.Docked():
		return "robot is not docked"
	case v.Washing():
		return "already washing"
	case v.Drying():
		return "mop is drying"
	}
	return ""
}

// CanDry checks starting mop drying.
func (v *View) CanDry() string {
	switch {
	case !v.Has(capability.SelfWashBase):
		return "no self-wash base"
	case !v.Docked():
		return "robot is not docked"
	case v.Washing():
		return "mop is being washed"
	case v.Drying():
		return "already drying"
	}
	return ""
}

// CanAutoEmpty checks starting a dust bin empty.
func (v *View) CanAutoEmpty() string {
	switch {
	case !v.Has(capability.AutoEmptyBase):
		return "no auto-empty base"
	case !v.Docked():
		return "robot is not docked"
	case v.AutoEmptying():
		return "already emptying"
	case v.Running():
		return "robot is running"
	}
	return ""
}

// CanRunShortcut checks starting a shortcut.
func (v *View) CanRunShortcut() string {
	switch {
	case !v.Has(capability.Shortcuts):
		return "shortcuts not supported"
	case v.Started() && !v.Paused():
		return "a job is in progress"
	case v.FastMapping():
		return "fast mapping in progress"
	}
	return ""
}
