// Package mapview projects activity coordinates onto a static map image by
// linear interpolation inside a bounding box. It is an overlay helper, not a
// mapping engine.
package mapview

import "ai-travel-buddy/internal/travel"

// Bounds is the geographic bounding box of a static map image.
type Bounds struct {
	LatMin float64 // south
	LatMax float64 // north
	LngMin float64 // west
	LngMax float64 // east
}

// ParisBounds covers the bundled static map of Paris.
var ParisBounds = Bounds{
	LatMin: 48.815,
	LatMax: 48.902,
	LngMin: 2.224,
	LngMax: 2.469,
}

// Pin is an activity placed on the map, positioned as percentages of the
// image size from the top-left corner.
type Pin struct {
	Activity travel.Activity
	Top      float64
	Left     float64
}

func normalize(value, min, max float64) float64 {
	return (value - min) / (max - min)
}

// Project places an activity inside the bounds. The second return is false
// when the activity falls outside the map image and should not be drawn.
func (b Bounds) Project(a travel.Activity) (Pin, bool) {
	top := (1 - normalize(a.Location.Lat, b.LatMin, b.LatMax)) * 100
	left := normalize(a.Location.Lng, b.LngMin, b.LngMax) * 100
	if top < 0 || top > 100 || left < 0 || left > 100 {
		return Pin{}, false
	}
	return Pin{Activity: a, Top: top, Left: left}, true
}

// Pins projects every activity of a day, dropping the out-of-bounds ones.
func (b Bounds) Pins(day travel.Day) []Pin {
	var pins []Pin
	for _, a := range day.Activities {
		if pin, ok := b.Project(a); ok {
			pins = append(pins, pin)
		}
	}
	return pins
}
