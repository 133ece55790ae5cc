package mapview

import (
	"math"
	"testing"

	"ai-travel-buddy/internal/travel"
)

func activityAt(lat, lng float64) travel.Activity {
	return travel.Activity{ID: "act", Location: travel.Location{Lat: lat, Lng: lng}}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestProjectCorners(t *testing.T) {
	b := ParisBounds

	t.Run("north-west corner maps to top-left", func(t *testing.T) {
		pin, ok := b.Project(activityAt(b.LatMax, b.LngMin))
		if !ok {
			t.Fatal("Expected the corner to be inside the map")
		}
		if !almostEqual(pin.Top, 0) || !almostEqual(pin.Left, 0) {
			t.Errorf("Expected (0, 0), got (%.2f, %.2f)", pin.Top, pin.Left)
		}
	})

	t.Run("south-east corner maps to bottom-right", func(t *testing.T) {
		pin, ok := b.Project(activityAt(b.LatMin, b.LngMax))
		if !ok {
			t.Fatal("Expected the corner to be inside the map")
		}
		if !almostEqual(pin.Top, 100) || !almostEqual(pin.Left, 100) {
			t.Errorf("Expected (100, 100), got (%.2f, %.2f)", pin.Top, pin.Left)
		}
	})
}

func TestProjectInteriorPoint(t *testing.T) {
	// Eiffel Tower.
	pin, ok := ParisBounds.Project(activityAt(48.8584, 2.2945))
	if !ok {
		t.Fatal("Expected the Eiffel Tower to be on the Paris map")
	}
	if pin.Top < 0 || pin.Top > 100 || pin.Left < 0 || pin.Left > 100 {
		t.Errorf("Pin outside the image: (%.2f, %.2f)", pin.Top, pin.Left)
	}
	// Higher latitude means closer to the top edge.
	higher, _ := ParisBounds.Project(activityAt(48.8867, 2.2945))
	if higher.Top >= pin.Top {
		t.Errorf("Expected a more northern point to sit higher: %.2f vs %.2f", higher.Top, pin.Top)
	}
}

func TestProjectOutOfBounds(t *testing.T) {
	// Charles de Gaulle airport lies outside the bundled Paris map.
	if _, ok := ParisBounds.Project(activityAt(49.0097, 2.5479)); ok {
		t.Error("Expected an out-of-bounds activity to be dropped")
	}
	if _, ok := ParisBounds.Project(activityAt(48.85, 2.0)); ok {
		t.Error("Expected a point west of the map to be dropped")
	}
}

func TestPinsDropsOutOfBoundsOnly(t *testing.T) {
	day := travel.Day{Activities: []travel.Activity{
		activityAt(48.8584, 2.2945), // Eiffel Tower
		activityAt(49.0097, 2.5479), // CDG, off-map
		activityAt(48.8606, 2.3376), // Louvre
	}}

	pins := ParisBounds.Pins(day)
	if len(pins) != 2 {
		t.Fatalf("Expected 2 pins, got %d", len(pins))
	}
	for _, pin := range pins {
		if pin.Top < 0 || pin.Top > 100 || pin.Left < 0 || pin.Left > 100 {
			t.Errorf("Pin outside the image: (%.2f, %.2f)", pin.Top, pin.Left)
		}
	}
}

func TestPinsEmptyDay(t *testing.T) {
	if pins := ParisBounds.Pins(travel.Day{}); len(pins) != 0 {
		t.Errorf("Expected no pins for an empty day, got %d", len(pins))
	}
}
