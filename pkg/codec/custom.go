package codec

import "encoding/json"

// Zone is a rectangular cleaning area in map coordinates.
type Zone struct {
	X1, Y1, X2, Y2 int
}

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// ZoneCleaning builds the custom cleaning parameter for zone cleaning.
func ZoneCleaning(zones []Zone, repeats, suction, water int) string {
	areas := make([][]int, len(zones))
	for i, z := range zones {
		areas[i] = []int{z.X1, z.Y1, z.X2, z.Y2, repeats, suction, water}
	}
	return mustJSON(map[string]any{"areas": areas})
}

// SegmentCleaning builds the custom cleaning parameter for segment
// cleaning. Segments are cleaned in list order.
func SegmentCleaning(segments []int, repeats, suction, water int) string {
	selects := make([][]int, len(segments))
	for i, seg := range segments {
		selects[i] = []int{seg, repeats, suction, water, i + 1}
	}
	return mustJSON(map[string]any{"selects": selects})
}

// SpotCleaning builds the custom cleaning parameter for spot cleaning.
func SpotCleaning(points []Point, repeats, suction, water int) string {
	list := make([][]int, len(points))
	for i, p := range points {
		list[i] = []int{p.X, p.Y, repeats, suction, water}
	}
	return mustJSON(map[string]any{"points": list})
}

// CruisePoint builds the custom cleaning parameter for navigating to a
// single point.
func CruisePoint(p Point) string {
	return mustJSON(map[string]any{"tpoint": [][]int{{p.X, p.Y, 0, 0}}})
}

// ZoneAround returns a square zone of half-size r centered on p.
func ZoneAround(p Point, r int) Zone {
	return Zone{X1: p.X - r, Y1: p.Y - r, X2: p.X + r, Y2: p.Y + r}
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
