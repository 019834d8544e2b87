package advanced

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Point set fixtures are SVG files in fixtures/, one <circle> per point, using
// its center. Anything else in the file is ignored. Fixtures are loaded by name,
// sans extension. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"scenario", "grid", "scatter", "ring"}

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q in fixture %q: %v", circleEl.Attributes["cx"], name, err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q in fixture %q: %v", circleEl.Attributes["cy"], name, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// The six point scenario, which is also in fixtures/scenario.svg
func ScenarioPoints() []Point {
	return []Point{
		{150, 150},
		{340, 200},
		{100, 350},
		{160, 640},
		{470, 150},
		{400, 400},
	}
}
