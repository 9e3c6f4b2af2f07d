package frontend

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"helidune/game"
)

const (
	indicatorMargin   = 18.0
	indicatorArrowLen = 18.0
	indicatorLabelX   = 8
	indicatorLabelY   = 8
	labelMarginX      = 60
	labelMarginY      = 16
)

type indicator struct {
	x, y   float64 // clamped screen position
	dx, dy float64 // unit direction from the screen centre
	dist   float64 // world distance from the player
	count  int
	clr    color.Color
}

// DrawIndicators marks off-screen hostiles and pickups at the window edge.
// Markers that pile up in a corner are merged into one with a count.
func (r *ScreenRenderer) DrawIndicators(g *game.Game) {
	player, ok := g.Player()
	if r.screen == nil || !ok {
		return
	}
	minX, maxX := indicatorMargin, r.width-indicatorMargin
	minY, maxY := indicatorMargin, r.height-indicatorMargin
	cx, cy := r.width/2, r.height/2

	var edges []indicator
	corners := map[[2]bool]*indicator{}

	w := g.World()
	for i := 0; i < w.Len(); i++ {
		e := w.At(i)
		faction := game.KindFaction(e.Kind)
		if faction != game.FactionHostile && faction != game.FactionPickup {
			continue
		}

		sx, sy := r.WorldToScreen(e.Position)
		if sx >= 0 && sx <= r.width && sy >= 0 && sy <= r.height {
			continue
		}
		ox, oy := sx-cx, sy-cy
		length := math.Hypot(ox, oy)
		if length == 0 {
			continue
		}

		ind := indicator{
			x:     math.Min(math.Max(sx, minX), maxX),
			y:     math.Min(math.Max(sy, minY), maxY),
			dx:    ox / length,
			dy:    oy / length,
			dist:  player.DistanceTo(e),
			count: 1,
			clr:   game.FactionConfigs[faction].Color,
		}

		isCorner := (ind.x == minX || ind.x == maxX) && (ind.y == minY || ind.y == maxY)
		if !isCorner {
			edges = append(edges, ind)
			continue
		}
		key := [2]bool{ind.x == minX, ind.y == minY}
		if c, ok := corners[key]; ok {
			c.count++
			if ind.dist < c.dist {
				ind.count = c.count
				*c = ind
			}
		} else {
			corners[key] = &ind
		}
	}

	for _, ind := range edges {
		r.drawIndicator(ind)
	}
	for _, ind := range corners {
		r.drawIndicator(*ind)
	}
}

func (r *ScreenRenderer) drawIndicator(ind indicator) {
	tipX := ind.x + ind.dx*indicatorArrowLen*0.6
	tipY := ind.y + ind.dy*indicatorArrowLen*0.6
	tailX := ind.x - ind.dx*indicatorArrowLen*0.4
	tailY := ind.y - ind.dy*indicatorArrowLen*0.4
	vector.StrokeLine(r.screen, float32(tailX), float32(tailY), float32(tipX), float32(tipY), 2, ind.clr, true)

	sinA, cosA := math.Sincos(math.Pi / 6)
	wingLen := indicatorArrowLen * 0.5
	wings := [2][2]float64{
		{ind.dx*cosA - ind.dy*sinA, ind.dx*sinA + ind.dy*cosA},
		{ind.dx*cosA + ind.dy*sinA, -ind.dx*sinA + ind.dy*cosA},
	}
	for _, wing := range wings {
		vector.StrokeLine(r.screen,
			float32(tipX), float32(tipY),
			float32(tipX-wing[0]*wingLen), float32(tipY-wing[1]*wingLen),
			2, ind.clr, true)
	}

	label := fmt.Sprintf("%.0f", ind.dist)
	if ind.count > 1 {
		label = fmt.Sprintf("%.0f (x%d)", ind.dist, ind.count)
	}
	labelX := math.Min(math.Max(ind.x+indicatorLabelX, 4), r.width-labelMarginX)
	labelY := math.Min(math.Max(ind.y-indicatorLabelY, 4), r.height-labelMarginY)
	ebitenutil.DebugPrintAt(r.screen, label, int(labelX), int(labelY))
}
