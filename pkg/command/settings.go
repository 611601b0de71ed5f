package command

import (
	"context"
	"fmt"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
)

// Setting identifies a writable device setting.
type Setting uint8

const (
	SettingInvalid Setting = iota
	SettingSuctionLevel
	SettingCleaningMode
	SettingWaterVolume
	SettingMopPadHumidity
	SettingWetnessLevel
	SettingMopCleanFrequency
	SettingSelfCleanArea
	SettingSelfCleanTime
	SettingCleanGenius
	SettingCleaningRoute
	SettingMopWashLevel
	SettingMopPadSwing
	SettingCarpetCleaning
	SettingCarpetSensitivity
	SettingCarpetBoost
	SettingCarpetRecognition
	SettingTightMopping
	SettingObstacleAvoidance
	SettingCustomizedCleaning
	SettingChildLock
	SettingVolume
	SettingDryingTime
	SettingAutoDustCollecting
	SettingAutoEmptyFrequency
	SettingAutoAddDetergent
	SettingAutoMountMop
	SettingAutoWaterRefilling
	SettingWaterElectrolysis
	SettingMaxSuctionPower
	SettingResumeCleaning
	SettingMultiFloorMap
	SettingDND
	SettingDNDStart
	SettingDNDEnd
	SettingCameraLightBrightness
	numSettings
)

// Wetness levels written when a humidity tier is selected on robots with
// fine-grained wetness. They sit inside the tier bands the status view
// uses to map wetness back onto tiers.
var wetnessForHumidity = map[int64]int64{
	int64(status.MopPadHumiditySlightlyDry): 10,
	int64(status.MopPadHumidityMoist):       20,
	int64(status.MopPadHumidityWet):         28,
}

type setFunc func(o *Orchestrator, ctx context.Context, op, name string, v any) error

type settingDef struct {
	name string
	flag capability.Flag
	set  setFunc
}

var settingTable = [numSettings]settingDef{
	SettingSuctionLevel:          {"suction_level", 0, (*Orchestrator).setSuctionLevel},
	SettingCleaningMode:          {"cleaning_mode", 0, (*Orchestrator).setCleaningMode},
	SettingWaterVolume:           {"water_volume", 0, (*Orchestrator).setWaterVolume},
	SettingMopPadHumidity:        {"mop_pad_humidity", capability.SelfWashBase, (*Orchestrator).setMopPadHumidity},
	SettingWetnessLevel:          {"wetness_level", capability.WetnessLevel, (*Orchestrator).setWetnessLevel},
	SettingMopCleanFrequency:     {"mop_clean_frequency", capability.SelfWashBase, (*Orchestrator).setMopCleanFrequency},
	SettingSelfCleanArea:         {"self_clean_area", capability.SelfCleanArea, (*Orchestrator).setSelfCleanArea},
	SettingSelfCleanTime:         {"self_clean_time", capability.SelfCleanTime, (*Orchestrator).setSelfCleanTime},
	SettingCleanGenius:           {"cleangenius", capability.CleanGenius, (*Orchestrator).setCleanGenius},
	SettingCleaningRoute:         {"cleaning_route", capability.CleaningRoute, (*Orchestrator).setCleaningRoute},
	SettingMopWashLevel:          {"mop_wash_level", capability.MopWashLevel, enumSetting(property.MopWashLevel, asEnum(status.LookupMopWashLevel), optMopWashLevels, canChangeSelfClean)},
	SettingMopPadSwing:           {"mop_pad_swing", capability.MopPadSwing, enumSetting(property.MopPadSwing, asEnum(status.LookupMopPadSwing), optMopPadSwings, nil)},
	SettingCarpetCleaning:        {"carpet_cleaning", capability.CarpetCleaning, enumSetting(property.CarpetCleaning, asEnum(status.LookupCarpetCleaning), optCarpetCleanings, nil)},
	SettingCarpetSensitivity:     {"carpet_sensitivity", capability.CarpetRecognition, rangeSetting(property.CarpetSensitivity, 1, 3, asEnum(status.LookupCarpetSensitivity))},
	SettingCarpetBoost:           {"carpet_boost", capability.CarpetBoost, boolSetting(property.CarpetBoost)},
	SettingCarpetRecognition:     {"carpet_recognition", capability.CarpetRecognition, boolSetting(property.CarpetRecognition)},
	SettingTightMopping:          {"tight_mopping", capability.TightMopping, boolSetting(property.TightMopping)},
	SettingObstacleAvoidance:     {"obstacle_avoidance", capability.ObstacleAvoidance, boolSetting(property.ObstacleAvoidance)},
	SettingCustomizedCleaning:    {"customized_cleaning", capability.CustomizedCleaning, (*Orchestrator).setCustomizedCleaning},
	SettingChildLock:             {"child_lock", capability.ChildLock, boolSetting(property.ChildLock)},
	SettingVolume:                {"volume", 0, rangeSetting(property.Volume, 0, 100, toInt)},
	SettingDryingTime:            {"drying_time", capability.DryingTime, enumSetting(property.DryingTime, toInt, optDryingTimes, nil)},
	SettingAutoDustCollecting:    {"auto_dust_collecting", capability.AutoEmptyBase, boolSetting(property.AutoDustCollecting)},
	SettingAutoEmptyFrequency:    {"auto_empty_frequency", capability.AutoEmptyBase, rangeSetting(property.AutoEmptyFrequency, 1, 3, toInt)},
	SettingAutoAddDetergent:      {"auto_add_detergent", capability.AutoAddDetergent, boolSetting(property.AutoAddDetergent)},
	SettingAutoMountMop:          {"auto_mount_mop", capability.MopPadUnmounting, boolSetting(property.AutoMountMop)},
	SettingAutoWaterRefilling:    {"auto_water_refilling", capability.AutoWaterRefilling, boolSetting(property.AutoWaterRefilling)},
	SettingWaterElectrolysis:     {"water_electrolysis", capability.WaterElectrolysis, boolSetting(property.WaterElectrolysis)},
	SettingMaxSuctionPower:       {"max_suction_power", capability.MaxSuctionPower, boolSetting(property.MaxSuctionPower)},
	SettingResumeCleaning:        {"resume_cleaning", 0, boolSetting(property.ResumeCleaning)},
	SettingMultiFloorMap:         {"multi_floor_map", capability.MultiFloorMap, boolSetting(property.MultiFloorMap)},
	SettingDND:                   {"dnd", capability.DND, (*Orchestrator).setDNDEnabled},
	SettingDNDStart:              {"dnd_start", capability.DND, (*Orchestrator).setDNDStart},
	SettingDNDEnd:                {"dnd_end", capability.DND, (*Orchestrator).setDNDEnd},
	SettingCameraLightBrightness: {"camera_light_brightness", capability.FillLight, rangeSetting(property.CameraLightBrightness, 40, 100, toInt)},
}

func (s Setting) String() string {
	if s > SettingInvalid && s < numSettings {
		return settingTable[s].name
	}
	return fmt.Sprintf("setting(%d)", uint8(s))
}

// ParseSetting looks up a setting by name.
func ParseSetting(name string) (Setting, bool) {
	for s := SettingInvalid + 1; s < numSettings; s++ {
		if settingTable[s].name == name {
			return s, true
		}
	}
	return SettingInvalid, false
}

// Settings returns every setting in declaration order.
func Settings() []Setting {
	out := make([]Setting, 0, numSettings-1)
	for s := SettingInvalid + 1; s < numSettings; s++ {
		out = append(out, s)
	}
	return out
}

// Supported reports whether the device profile allows the setting.
func (o *Orchestrator) Supported(s Setting) bool {
	if s <= SettingInvalid || s >= numSettings {
		return false
	}
	f := settingTable[s].flag
	return f == 0 || o.view.Has(f)
}

// SetSetting validates, coerces and writes one setting. Values may be
// native Go values or strings as typed by a user: enum names, numbers and
// on/off.
func (o *Orchestrator) SetSetting(ctx context.Context, s Setting, v any) error {
	if s <= SettingInvalid || s >= numSettings {
		return invalidAction("set setting", fmt.Sprintf("unknown setting %d", s))
	}
	def := settingTable[s]
	op := "set " + def.name
	if !o.Supported(s) {
		return invalidAction(op, "not supported on this model")
	}
	return def.set(o, ctx, op, def.name, v)
}

// ---------------------------------------------------------------------------
// Generic setters
// ---------------------------------------------------------------------------

func boolSetting(id property.ID) setFunc {
	return func(o *Orchestrator, ctx context.Context, op, name string, v any) error {
		b, err := toBool(name, v)
		if err != nil {
			return err
		}
		return o.writeValue(ctx, op, classSetting, id, property.Int(boolInt(b)))
	}
}

// parseFunc converts user input for one setting.
type parseFunc func(setting string, v any) (int64, error)

func asEnum[E ~int](lookup func(string) (E, bool)) parseFunc {
	return func(setting string, v any) (int64, error) { return toEnum(setting, v, lookup) }
}

func rangeSetting(id property.ID, lo, hi int64, parse parseFunc) setFunc {
	return func(o *Orchestrator, ctx context.Context, op, name string, v any) error {
		n, err := parse(name, v)
		if err != nil {
			return err
		}
		if err := checkRange(name, n, lo, hi); err != nil {
			return err
		}
		return o.writeValue(ctx, op, classSetting, id, property.Int(n))
	}
}

func enumSetting(id property.ID, parse parseFunc, options func(capability.Options) []int, can func(*status.View) string) setFunc {
	return func(o *Orchestrator, ctx context.Context, op, name string, v any) error {
		if can != nil {
			if reason := can(o.view); reason != "" {
				return invalidAction(op, reason)
			}
		}
		n, err := parse(name, v)
		if err != nil {
			return err
		}
		if err := checkOption(name, n, options(o.view.Profile().Options())); err != nil {
			return err
		}
		return o.writeValue(ctx, op, classSetting, id, property.Int(n))
	}
}

func optMopWashLevels(opts capability.Options) []int   { return opts.MopWashLevels }
func optMopPadSwings(opts capability.Options) []int    { return opts.MopPadSwings }
func optCarpetCleanings(opts capability.Options) []int { return opts.CarpetCleanings }
func optDryingTimes(opts capability.Options) []int     { return opts.DryingTimes }

func canChangeSelfClean(v *status.View) string { return v.CanChangeSelfClean() }

// ---------------------------------------------------------------------------
// Cleaning settings
// ---------------------------------------------------------------------------

func (o *Orchestrator) setSuctionLevel(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeSuction(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupSuctionLevel)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().SuctionLevels); err != nil {
		return err
	}
	return o.manualSetting(ctx, op, func() error {
		return o.writeValue(ctx, op, classSetting, property.SuctionLevel, property.Int(n))
	})
}

func (o *Orchestrator) setCleaningMode(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeCleaningMode(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupCleaningMode)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().CleaningModes); err != nil {
		return err
	}
	if status.CleaningMode(n) != status.CleaningModeSweeping && !o.view.UsesGroup() &&
		o.store.Has(property.WaterTank) && !o.view.WaterTankInstalled() {
		return invalidAction(op, "water tank is not installed")
	}
	return o.manualSetting(ctx, op, func() error {
		if o.view.UsesGroup() {
			return o.writeGroup(ctx, op, func(g codec.Group) codec.Group { return g.WithMode(n) })
		}
		return o.writeValue(ctx, op, classSetting, property.CleaningMode, property.Int(n))
	})
}

func (o *Orchestrator) setWaterVolume(ctx context.Context, op, name string, v any) error {
	if o.view.UsesGroup() {
		return invalidAction(op, "robot uses mop pad humidity")
	}
	if reason := o.view.CanChangeWater(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupWaterVolume)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().WaterVolumes); err != nil {
		return err
	}
	return o.manualSetting(ctx, op, func() error {
		return o.writeValue(ctx, op, classSetting, property.WaterVolume, property.Int(n))
	})
}

func (o *Orchestrator) setMopPadHumidity(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeWater(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupMopPadHumidity)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().MopPadHumidities); err != nil {
		return err
	}
	humidity := n
	if o.view.Has(capability.WetnessLevel) {
		humidity = wetnessForHumidity[n]
	}
	return o.manualSetting(ctx, op, func() error {
		return o.writeGroup(ctx, op, func(g codec.Group) codec.Group { return g.WithHumidity(humidity) })
	})
}

func (o *Orchestrator) setWetnessLevel(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeWater(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toInt(name, v)
	if err != nil {
		return err
	}
	r := o.view.Profile().WetnessLevel
	if r.IsZero() {
		r = capability.Range{Min: 1, Max: 32}
	}
	if err := checkRange(name, n, int64(r.Min), int64(r.Max)); err != nil {
		return err
	}
	return o.manualSetting(ctx, op, func() error {
		return o.writeGroup(ctx, op, func(g codec.Group) codec.Group { return g.WithHumidity(n) })
	})
}

func (o *Orchestrator) setMopCleanFrequency(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeSelfClean(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupMopCleanFrequency)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().MopCleanFrequencies); err != nil {
		return err
	}

	session := o.view.Session()
	prof := o.view.Profile()
	area, minutes := session.PreviousSelfClean()
	var value int64
	switch status.MopCleanFrequency(n) {
	case status.MopCleanFrequencyByRoom:
		// Remember the current interval so switching back restores it.
		if cur := int64(o.view.SelfCleanValue()); cur > 0 {
			if o.view.MopCleanFrequency() == status.MopCleanFrequencyByTime {
				session.SetPreviousSelfCleanTime(int(cur))
			} else {
				session.SetPreviousSelfCleanArea(int(cur))
			}
		}
		value = 0
	case status.MopCleanFrequencyByArea:
		value = int64(area)
		if !prof.SelfCleanArea.Contains(area) {
			value = int64(prof.SelfCleanArea.Min)
		}
	case status.MopCleanFrequencyByTime:
		value = int64(minutes)
		if !prof.SelfCleanTime.Contains(minutes) {
			value = int64(prof.SelfCleanTime.Min)
		}
	}
	return o.writeSelfClean(ctx, op, value)
}

func (o *Orchestrator) setSelfCleanArea(ctx context.Context, op, name string, v any) error {
	return o.setSelfCleanInterval(ctx, op, name, v, o.view.Profile().SelfCleanArea, o.view.Session().SetPreviousSelfCleanArea)
}

func (o *Orchestrator) setSelfCleanTime(ctx context.Context, op, name string, v any) error {
	return o.setSelfCleanInterval(ctx, op, name, v, o.view.Profile().SelfCleanTime, o.view.Session().SetPreviousSelfCleanTime)
}

func (o *Orchestrator) setSelfCleanInterval(ctx context.Context, op, name string, v any, r capability.Range, remember func(int)) error {
	if reason := o.view.CanChangeSelfClean(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toInt(name, v)
	if err != nil {
		return err
	}
	if err := checkRange(name, n, int64(r.Min), int64(r.Max)); err != nil {
		return err
	}
	remember(int(n))
	return o.writeSelfClean(ctx, op, n)
}

// writeSelfClean replaces the low byte of the self-clean field, keeping
// any flag bits above it.
func (o *Orchestrator) writeSelfClean(ctx context.Context, op string, value int64) error {
	return o.writeGroup(ctx, op, func(g codec.Group) codec.Group {
		return g.WithSelfClean(g.SelfClean&^0xFF | value)
	})
}

// writeGroup rewrites one field of the packed cleaning mode word.
func (o *Orchestrator) writeGroup(ctx context.Context, op string, fn func(codec.Group) codec.Group) error {
	g, ok := o.view.Group()
	if !ok {
		return invalidAction(op, "cleaning mode is not known yet")
	}
	return o.writeValue(ctx, op, classSetting, property.CleaningMode, property.Int(fn(g).Combine()))
}

func (o *Orchestrator) setCleaningRoute(ctx context.Context, op, name string, v any) error {
	if reason := o.view.CanChangeCleaningRoute(); reason != "" {
		return invalidAction(op, reason)
	}
	n, err := toEnum(name, v, status.LookupCleaningRoute)
	if err != nil {
		return err
	}
	if err := checkOption(name, n, o.view.Profile().Options().CleaningRoutes); err != nil {
		return err
	}
	if status.CleaningRoute(n) == status.CleaningRouteQuick &&
		o.view.CleaningMode() != status.CleaningModeMoppingAfterSweeping {
		return invalidAction(op, "quick route needs mopping after sweeping")
	}
	return o.writeValue(ctx, op, classSetting, property.CleaningRoute, property.Int(n))
}

func (o *Orchestrator) setCustomizedCleaning(ctx context.Context, op, name string, v any) error {
	b, err := toBool(name, v)
	if err != nil {
		return err
	}
	if o.view.Cruising() {
		return invalidAction(op, "cruising in progress")
	}
	if b && o.view.Started() && !o.view.SegmentCleaning() && !o.view.AutoCleaning() {
		return invalidAction(op, "only available for room and full cleaning")
	}
	return o.writeValue(ctx, op, classSetting, property.CustomizedCleaning, property.Int(boolInt(b)))
}

// ---------------------------------------------------------------------------
// CleanGenius
// ---------------------------------------------------------------------------

// setCleanGenius accepts a mode name or code, or a boolean. Turning it on
// with a boolean restores the mode that was active before a manual
// setting turned it off.
func (o *Orchestrator) setCleanGenius(ctx context.Context, op, name string, v any) error {
	var n int64
	if b, ok := v.(bool); ok {
		n = int64(status.CleanGeniusModeOff)
		if b {
			n = int64(status.CleanGeniusModeRoutine)
			if prev, ok := o.view.Session().PreviousCleanGeniusMode(); ok && prev != status.CleanGeniusModeOff {
				n = int64(prev)
			}
		}
	} else {
		var err error
		if n, err = toEnum(name, v, status.LookupCleanGeniusMode); err != nil {
			return err
		}
	}
	if err := checkOption(name, n, o.view.Profile().Options().CleanGeniusModes); err != nil {
		return err
	}
	if o.view.Started() && !o.view.Paused() {
		return invalidAction(op, "cannot change CleanGenius while cleaning")
	}
	return o.writeValue(ctx, op, classSetting, property.CleanGenius, property.Int(n))
}

// manualSetting runs write with CleanGenius off. If CleanGenius was active
// it is turned off first and the mode it was in is remembered; when write
// then fails the previous mode is written back.
func (o *Orchestrator) manualSetting(ctx context.Context, op string, write func() error) error {
	if !o.view.CleanGeniusActive() {
		return write()
	}
	prev := o.view.CleanGeniusMode()
	if err := o.writeValue(ctx, op, classSetting, property.CleanGenius, property.Int(int64(status.CleanGeniusModeOff))); err != nil {
		return err
	}
	if err := write(); err != nil {
		if rerr := o.writeValue(ctx, op, classSetting, property.CleanGenius, property.Int(int64(prev))); rerr != nil {
			o.debugLog("cleangenius restore failed", "previous", prev, "error", rerr)
		}
		return err
	}
	o.view.Session().SetPreviousCleanGeniusMode(prev)
	o.debugLog("cleangenius turned off for manual setting", "previous", prev)
	return nil
}
