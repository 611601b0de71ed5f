package codec

// Group is the 3-field word packed into one property on robots with a
// self-wash base: cleaning mode, self-clean value and mop pad humidity.
type Group struct {
	Mode      int64
	SelfClean int64
	Humidity  int64
}

// SplitGroup unpacks a group word. Robots with mop pad lifting use two
// mode bits, others one.
func SplitGroup(v int64, lifting bool) Group {
	mask := int64(1)
	if lifting {
		mask = 3
	}
	return Group{
		Mode:      v & mask,
		SelfClean: (v >> 8) &^ 0x300,
		Humidity:  v >> 16,
	}
}

// Combine packs the fields back into a word. For words whose low byte has
// no bits outside the mode mask, Combine(SplitGroup(v)) == v.
func (g Group) Combine() int64 {
	return ((g.Humidity<<8 | g.SelfClean) << 8) | g.Mode
}

// SelfCleanValue returns the self-clean area or time.
func (g Group) SelfCleanValue() int64 { return g.SelfClean & 0xFF }

// WithMode returns a copy with a new cleaning mode.
func (g Group) WithMode(mode int64) Group {
	g.Mode = mode
	return g
}

// WithSelfClean returns a copy with a new self-clean value.
func (g Group) WithSelfClean(v int64) Group {
	g.SelfClean = v
	return g
}

// WithHumidity returns a copy with a new mop pad humidity.
func (g Group) WithHumidity(v int64) Group {
	g.Humidity = v
	g.SelfClean &= 0xFF
	return g
}
