package capability

import "slices"

// Option codes used by the pruning rules. They mirror the device enums in
// the status package.
const (
	suctionTurbo = 3

	modeSweeping             = 0
	modeMopping              = 1
	modeSweepingMopping      = 2
	modeMoppingAfterSweeping = 3

	routeDeep  = 3
	routeQuick = 4

	washWaterSaving = 0

	frequencyByRoom = 0
	frequencyByArea = 1
	frequencyByTime = 2

	swingDaily  = 2
	swingWeekly = 3

	carpetAdaptation = 1
	carpetRemoveMop  = 2

	dryingHot = 4
)

// Options holds the selectable values of list settings for a model.
type Options struct {
	SuctionLevels       []int
	CleaningModes       []int
	WaterVolumes        []int
	MopPadHumidities    []int
	CleaningRoutes      []int
	MopWashLevels       []int
	MopCleanFrequencies []int
	MopPadSwings        []int
	CarpetCleanings     []int
	DryingTimes         []int
	CleanGeniusModes    []int
}

func (o Options) clone() Options {
	return Options{
		SuctionLevels:       slices.Clone(o.SuctionLevels),
		CleaningModes:       slices.Clone(o.CleaningModes),
		WaterVolumes:        slices.Clone(o.WaterVolumes),
		MopPadHumidities:    slices.Clone(o.MopPadHumidities),
		CleaningRoutes:      slices.Clone(o.CleaningRoutes),
		MopWashLevels:       slices.Clone(o.MopWashLevels),
		MopCleanFrequencies: slices.Clone(o.MopCleanFrequencies),
		MopPadSwings:        slices.Clone(o.MopPadSwings),
		CarpetCleanings:     slices.Clone(o.CarpetCleanings),
		DryingTimes:         slices.Clone(o.DryingTimes),
		CleanGeniusModes:    slices.Clone(o.CleanGeniusModes),
	}
}

// Profile is the resolved capability set of one device.
type Profile struct {
	Model    string
	Name     string
	Firmware Firmware

	SelfCleanArea Range
	SelfCleanTime Range
	WetnessLevel  Range

	flags   [numFlags]bool
	options Options
}

// Has reports whether a flag is enabled. A nil profile has no flags.
func (p *Profile) Has(f Flag) bool {
	if p == nil || f == 0 || f >= numFlags {
		return false
	}
	return p.flags[f]
}

// Flags returns the enabled flags in declaration order.
func (p *Profile) Flags() []Flag {
	if p == nil {
		return nil
	}
	var out []Flag
	for f := Flag(1); f < numFlags; f++ {
		if p.flags[f] {
			out = append(out, f)
		}
	}
	return out
}

// Options returns the pruned option lists.
func (p *Profile) Options() Options {
	if p == nil {
		return Options{}
	}
	return p.options.clone()
}

// WithFlags returns a profile with the given flags set, for simulators and
// tests that do not carry a catalog.
func WithFlags(model string, flags ...Flag) *Profile {
	p := &Profile{Model: model}
	for _, f := range flags {
		if f > 0 && f < numFlags {
			p.flags[f] = true
		}
	}
	if p.flags[SelfCleanArea] {
		p.SelfCleanArea = Range{Min: 10, Max: 35}
	}
	if p.flags[SelfCleanTime] {
		p.SelfCleanTime = Range{Min: 10, Max: 50}
	}
	if p.flags[WetnessLevel] {
		p.WetnessLevel = Range{Min: 1, Max: 32}
	}
	p.options = prune(p)
	return p
}

// prune computes option lists once. The order matters: the mop pad swing
// rule reads the mop clean frequencies left by the previous step, and the
// cleaning route rule reads the pruned cleaning modes.
func prune(p *Profile) Options {
	var o Options

	o.SuctionLevels = []int{0, 1, 2, 3}
	if !p.Has(LidarNavigation) {
		o.SuctionLevels = remove(o.SuctionLevels, suctionTurbo)
	}

	o.CleaningModes = []int{modeSweeping, modeMopping, modeSweepingMopping, modeMoppingAfterSweeping}
	if !p.Has(MopPadLifting) {
		o.CleaningModes = remove(o.CleaningModes, modeMoppingAfterSweeping)
	}
	if !p.Has(SelfWashBase) && !p.Has(MopPadLifting) {
		o.CleaningModes = remove(o.CleaningModes, modeMopping)
	}

	if p.Has(SelfWashBase) {
		o.MopPadHumidities = []int{1, 2, 3}
	} else {
		o.WaterVolumes = []int{1, 2, 3}
	}

	if p.Has(CleaningRoute) {
		o.CleaningRoutes = []int{1, 2, routeDeep, routeQuick}
		if !p.Has(SegmentSlowCleanRoute) {
			o.CleaningRoutes = remove(o.CleaningRoutes, routeDeep)
		}
		if !slices.Contains(o.CleaningModes, modeMoppingAfterSweeping) {
			o.CleaningRoutes = remove(o.CleaningRoutes, routeQuick)
		}
	}

	if p.Has(MopWashLevel) {
		o.MopWashLevels = []int{washWaterSaving, 1, 2}
		if !p.Has(SmartMopWashing) {
			o.MopWashLevels = remove(o.MopWashLevels, washWaterSaving)
		}
	}

	if p.Has(SelfWashBase) {
		o.MopCleanFrequencies = []int{frequencyByRoom, frequencyByArea, frequencyByTime}
		if !p.Has(SelfCleanArea) {
			o.MopCleanFrequencies = remove(o.MopCleanFrequencies, frequencyByArea)
		}
		if !p.Has(SelfCleanTime) {
			o.MopCleanFrequencies = remove(o.MopCleanFrequencies, frequencyByTime)
		}
		if !p.Has(MopCleanFrequency) {
			o.MopCleanFrequencies = remove(o.MopCleanFrequencies, frequencyByRoom)
		}
	}

	if p.Has(MopPadSwing) {
		o.MopPadSwings = []int{0, 1, swingDaily, swingWeekly}
		if !slices.Contains(o.MopCleanFrequencies, frequencyByRoom) {
			o.MopPadSwings = remove(o.MopPadSwings, swingDaily, swingWeekly)
		}
	}

	if p.Has(CarpetCleaning) {
		o.CarpetCleanings = []int{0, carpetAdaptation, carpetRemoveMop, 3, 4}
		if !p.Has(MopPadLifting) {
			o.CarpetCleanings = remove(o.CarpetCleanings, carpetAdaptation)
		}
		if !p.Has(MopPadUnmounting) {
			o.CarpetCleanings = remove(o.CarpetCleanings, carpetRemoveMop)
		}
	}

	if p.Has(DryingTime) {
		o.DryingTimes = []int{2, 3, dryingHot}
		if !p.Has(HotWashing) {
			o.DryingTimes = remove(o.DryingTimes, dryingHot)
		}
	}

	if p.Has(CleanGenius) {
		o.CleanGeniusModes = []int{0, 1, 2}
	}
	return o
}

func remove(list []int, values ...int) []int {
	return slices.DeleteFunc(list, func(v int) bool { return slices.Contains(values, v) })
}
