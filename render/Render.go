// Package render draws solver output as an image: a value-function
// heatmap with obstacle cells, policy arrows, the extracted path, and
// start/goal markers. It is a pure consumer of solver data; nothing in
// the core packages depends on it.
package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/floatutils"
)

// CellSize is the pixel size of a single grid cell.
const CellSize = 60

// titleHeight is the pixel height of the title band above the grid.
const titleHeight = 30

var (
	gridLineColour = color.RGBA{A: 0xff}
	obstacleColour = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	arrowColour    = color.RGBA{R: 0xd6, G: 0x20, B: 0x20, A: 0xff}
	pathColour     = color.RGBA{R: 0x00, G: 0xd0, B: 0xd0, A: 0xff}
	markerColour   = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	startColour    = color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff}
	goalColour     = color.RGBA{R: 0x20, G: 0xa0, B: 0x40, A: 0xff}
	textColour     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	titleColour    = color.RGBA{A: 0xff}
	bgColour       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Plot renders the grid, the value heatmap, every policy arrow, the
// extracted path and the start/goal markers onto a new drawing
// context. The path may be nil when extraction failed; the plot then
// simply omits it.
func Plot(g *gridworld.GridWorld, values solver.ValueFunction,
	policy solver.Policy, path []gridworld.State, title string) *gg.Context {

	w := g.Width() * CellSize
	h := g.Height()*CellSize + titleHeight
	dc := gg.NewContext(w, h)
	dc.SetColor(bgColour)
	dc.Clear()

	lo, hi := valueRange(values)

	// Heatmap and obstacles
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			s := gridworld.State{Row: r, Col: c}
			x, y := cellOrigin(s)
			dc.DrawRectangle(x, y, CellSize, CellSize)
			if g.IsObstacle(s) {
				dc.SetColor(obstacleColour)
			} else {
				dc.SetColor(heatColour(values[s], lo, hi))
			}
			dc.Fill()

			if g.IsObstacle(s) {
				hatch(dc, x, y)
			}
		}
	}

	drawGridLines(dc, g)

	// Policy arrows on every non-terminal state
	dc.SetColor(arrowColour)
	dc.SetLineWidth(2)
	for s, a := range policy {
		if g.IsTerminal(s) {
			continue
		}
		drawArrow(dc, s, a)
	}

	drawPath(dc, path)

	drawMarker(dc, g.Start(), startColour, "S")
	drawMarker(dc, g.Goal(), goalColour, "G")

	dc.SetColor(titleColour)
	dc.DrawStringAnchored(title, float64(w)/2, titleHeight/2, 0.5, 0.5)

	return dc
}

// SavePNG renders the plot and writes it to filename as a PNG.
func SavePNG(filename string, g *gridworld.GridWorld,
	values solver.ValueFunction, policy solver.Policy,
	path []gridworld.State, title string) error {

	dc := Plot(g, values, policy, path, title)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("savePNG: could not write %v: %v", filename, err)
	}
	return nil
}

// cellOrigin returns the top-left pixel of a state's cell.
func cellOrigin(s gridworld.State) (x, y float64) {
	return float64(s.Col) * CellSize, float64(s.Row)*CellSize + titleHeight
}

// cellCenter returns the center pixel of a state's cell.
func cellCenter(s gridworld.State) (x, y float64) {
	x, y = cellOrigin(s)
	return x + CellSize/2, y + CellSize/2
}

func valueRange(values solver.ValueFunction) (lo, hi float64) {
	first := true
	for _, v := range values {
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}
	return lo, hi
}

func drawGridLines(dc *gg.Context, g *gridworld.GridWorld) {
	dc.SetColor(gridLineColour)
	dc.SetLineWidth(1)
	w := float64(g.Width()) * CellSize
	h := float64(g.Height()) * CellSize
	for r := 0; r <= g.Height(); r++ {
		y := float64(r)*CellSize + titleHeight
		dc.DrawLine(0, y, w, y)
	}
	for c := 0; c <= g.Width(); c++ {
		x := float64(c) * CellSize
		dc.DrawLine(x, titleHeight, x, h+titleHeight)
	}
	dc.Stroke()
}

func hatch(dc *gg.Context, x, y float64) {
	dc.SetColor(gridLineColour)
	dc.SetLineWidth(1)
	for off := 0.0; off < 2*CellSize; off += CellSize / 4 {
		x0 := floatutils.Max(x, x+off-CellSize)
		y0 := floatutils.Min(y+off, y+CellSize)
		x1 := floatutils.Min(x+off, x+CellSize)
		y1 := floatutils.Max(y, y+off-CellSize)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()
}

func drawArrow(dc *gg.Context, s gridworld.State, a gridworld.Action) {
	cx, cy := cellCenter(s)
	dRow, dCol := a.Delta()
	dx := float64(dCol) * 0.35 * CellSize
	dy := float64(dRow) * 0.35 * CellSize

	tipX, tipY := cx+dx, cy+dy
	dc.DrawLine(cx-dx*0.5, cy-dy*0.5, tipX, tipY)
	dc.Stroke()

	// Arrow head: small triangle pointing along the move direction.
	baseX := tipX - dx*0.4
	baseY := tipY - dy*0.4
	perpX := -dy * 0.3
	perpY := dx * 0.3
	dc.MoveTo(tipX, tipY)
	dc.LineTo(baseX+perpX, baseY+perpY)
	dc.LineTo(baseX-perpX, baseY-perpY)
	dc.ClosePath()
	dc.Fill()
}

func drawPath(dc *gg.Context, path []gridworld.State) {
	if len(path) < 2 {
		return
	}

	dc.SetColor(pathColour)
	dc.SetLineWidth(4)
	for i := 0; i < len(path)-1; i++ {
		x0, y0 := cellCenter(path[i])
		x1, y1 := cellCenter(path[i+1])
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	dc.SetColor(markerColour)
	for _, s := range path {
		x, y := cellCenter(s)
		dc.DrawCircle(x, y, CellSize/10)
		dc.Fill()
	}
}

func drawMarker(dc *gg.Context, s gridworld.State, fill color.Color,
	label string) {

	x, y := cellOrigin(s)
	dc.SetColor(fill)
	dc.DrawRectangle(x+CellSize/4, y+CellSize/4, CellSize/2, CellSize/2)
	dc.Fill()

	cx, cy := cellCenter(s)
	dc.SetColor(textColour)
	dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
}
