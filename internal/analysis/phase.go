package analysis

import (
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/phys"
	"github.com/tmarkov/physviz/internal/viz"
)

// PhasePortrait pairs two recorded stat series into a trajectory
// through their joint space.
type PhasePortrait struct {
	XLabel, YLabel string
	Points         []phys.Vec2
}

func NewPhasePortrait(xLabel string, xs []float64, yLabel string, ys []float64) *PhasePortrait {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	p := &PhasePortrait{
		XLabel: xLabel,
		YLabel: yLabel,
		Points: make([]phys.Vec2, 0, n),
	}
	for i := 0; i < n; i++ {
		p.Points = append(p.Points, phys.Vec2{X: xs[i], Y: ys[i]})
	}
	return p
}

// Render draws the portrait on a braille canvas, autoscaled with a 10%
// margin and the Y axis growing upward.
func (p *PhasePortrait) Render(width, height int) string {
	if len(p.Points) == 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := viz.NewCanvas(width, height)
	surface := frame.Surface{Width: rangeX, Height: rangeY}

	scaled := make([]phys.Vec2, len(p.Points))
	for i, pt := range p.Points {
		scaled[i] = phys.Vec2{
			X: pt.X - minX,
			Y: rangeY - (pt.Y - minY),
		}
	}
	canvas.PlotPoints(scaled, surface)

	return canvas.String()
}
