package main

import "github.com/wricardo/mcp-training/treasurehunt/game/engine"

// GridScan covers the map row by row, reversing direction on alternate rows
type GridScan struct {
	points []engine.Position
	next   int
}

// NewGridScan plans a scan whose spacing matches the tolerance
func NewGridScan(tolerance int) *GridScan {
	coords := engine.SweepAxis(engine.SweepStep(tolerance))

	points := make([]engine.Position, 0, len(coords)*len(coords))
	for row, y := range coords {
		for i := range coords {
			x := coords[i]
			if row%2 == 1 {
				x = coords[len(coords)-1-i]
			}
			points = append(points, engine.Position{X: x, Y: y})
		}
	}
	return &GridScan{points: points}
}

// Next returns the next point, wrapping around after the last one
func (g *GridScan) Next() engine.Position {
	p := g.points[g.next]
	g.next = (g.next + 1) % len(g.points)
	return p
}

// Len is the number of points in one full pass
func (g *GridScan) Len() int {
	return len(g.points)
}
