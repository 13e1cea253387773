// Package hud draws the axis state of the translator as bars.
package hud

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/roomscale/internal/roomscale"
)

// Range is the value shown at the edge of an axis bar, per axis name.
var Range = map[string]float32{
	roomscale.AxisYaw:        3.2,
	roomscale.AxisPitch:      1.6,
	roomscale.AxisHorizontal: 0.5,
	roomscale.AxisVertical:   0.5,
}

var (
	background = sdl.Color{R: 24, G: 24, B: 32, A: 255}
	track      = sdl.Color{R: 48, G: 48, B: 60, A: 255}
	disabled   = sdl.Color{R: 70, G: 70, B: 70, A: 255}
	targetCol  = sdl.Color{R: 230, G: 200, B: 60, A: 255}
	centerCol  = sdl.Color{R: 120, G: 120, B: 140, A: 255}
)

// directionColor is the bar color while a direction is entered.
func directionColor(d roomscale.Direction) sdl.Color {
	switch d {
	case roomscale.DirectionNegative:
		return sdl.Color{R: 220, G: 80, B: 80, A: 255}
	case roomscale.DirectionPositive:
		return sdl.Color{R: 80, G: 200, B: 100, A: 255}
	case roomscale.DirectionCenter:
		return sdl.Color{R: 80, G: 140, B: 230, A: 255}
	default:
		return sdl.Color{R: 160, G: 160, B: 170, A: 255}
	}
}

// Draw renders one horizontal track per axis: the filled bar runs from
// Center to Current, the thin marker shows the last target.
func Draw(r *sdl.Renderer, width, height int, axes []*roomscale.Axis) {
	setColor(r, background)
	r.Clear()

	const margin = 20
	rowHeight := int32((height - 2*margin) / len(axes))
	trackWidth := int32(width - 2*margin)
	mid := int32(margin) + trackWidth/2

	for i, a := range axes {
		y := int32(margin) + int32(i)*rowHeight
		barHeight := rowHeight / 2

		setColor(r, track)
		r.FillRect(&sdl.Rect{X: margin, Y: y, W: trackWidth, H: barHeight})

		scale := float32(trackWidth/2) / Range[a.Name]
		toX := func(v float32) int32 {
			x := mid + int32((v-a.Center)*scale)
			return max(int32(margin), min(x, int32(margin)+trackWidth))
		}

		bar := directionColor(a.Direction)
		if !a.Enabled() {
			bar = disabled
		}
		setColor(r, bar)
		x0, x1 := mid, toX(a.Current)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		r.FillRect(&sdl.Rect{X: x0, Y: y, W: max(x1-x0, 1), H: barHeight})

		setColor(r, centerCol)
		r.DrawLine(mid, y-4, mid, y+barHeight+4)

		setColor(r, targetCol)
		tx := toX(a.Target)
		r.FillRect(&sdl.Rect{X: tx - 1, Y: y - 4, W: 3, H: barHeight + 8})
	}

	r.Present()
}

func setColor(r *sdl.Renderer, c sdl.Color) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
}
