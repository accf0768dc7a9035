package export

import (
	"strings"
	"testing"

	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/phys"
	"github.com/tmarkov/physviz/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}

	c := viz.NewCanvas(4, 4)
	c.Set(1, 1)
	svg := CanvasToSVG(c, 4)
	if !strings.Contains(svg, "<circle") {
		t.Error("expected a dot for the lit pixel")
	}
	if !strings.Contains(svg, "<svg") {
		t.Error("expected svg header")
	}
}

func TestTrailToCanvasSVG(t *testing.T) {
	surface := frame.Surface{Width: 200, Height: 120}

	if TrailToCanvasSVG(nil, surface, 80, 24, 4) != "" {
		t.Error("expected empty output for empty trail")
	}
	if TrailToCanvasSVG([]phys.Vec2{{X: 1, Y: 1}}, frame.Surface{}, 80, 24, 4) != "" {
		t.Error("expected empty output for degenerate surface")
	}

	points := []phys.Vec2{{X: 50, Y: 60}, {X: 100, Y: 60}, {X: 150, Y: 60}}
	svg := TrailToCanvasSVG(points, surface, 80, 24, 4)
	if !strings.Contains(svg, "<svg") {
		t.Fatal("expected svg header")
	}
	// border, trail and body ring all produce dots
	if strings.Count(svg, "<circle") < 100 {
		t.Errorf("expected the border and trail to light many dots, got %d",
			strings.Count(svg, "<circle"))
	}
}

func TestTrailToSVG(t *testing.T) {
	if TrailToSVG([]phys.Vec2{{X: 1, Y: 1}}, 100, 100, "#fff") != "" {
		t.Error("expected empty output for single point")
	}

	points := []phys.Vec2{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}}
	svg := TrailToSVG(points, 100, 100, "#00ff00")
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if !strings.Contains(svg, "stroke=\"#00ff00\"") {
		t.Error("expected stroke color carried through")
	}
}
