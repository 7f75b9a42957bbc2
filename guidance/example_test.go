package guidance_test

import (
	"fmt"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/guidance"
)

// ExampleExtract walks an L-shaped route: 120m north, then 150m east.
func ExampleExtract() {
	line := geom.Polyline{
		curve.Pt(0, 0),
		curve.Pt(0, 120),
		curve.Pt(150, 120),
	}
	proj := geom.NewProjection(37.5, 127.0)

	script, _ := guidance.Extract(line, proj, guidance.DefaultOptions())
	for _, inst := range script.Instances {
		fmt.Printf("%d %s %.0fm\n", inst.Sequence, inst.GuidanceID, inst.DistanceFromStart)
	}

	// Output:
	// 1 TURN_RIGHT_AHEAD 120m
	// 2 TURN_RIGHT 120m
	// 3 PROGRESS_30 120m
	// 4 ARRIVE 270m
}
