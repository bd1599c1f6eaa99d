// Package terminal shows a running simulation as a density map in a text terminal.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/biots/systems"
	"github.com/pthm-cable/biots/traits"
)

// Cell summarizes the biots falling into one character cell.
type Cell struct {
	Count       int
	Intelligent int

	// Trait mass per cell, used to pick the dominant trait.
	attack, defense, photosynthesis, motion float32
}

// Add accumulates one biot.
func (c *Cell) Add(t traits.Traits) {
	c.Count++
	if t.Intelligent() {
		c.Intelligent++
	}
	c.attack += t.Attack
	c.defense += t.Defense
	c.photosynthesis += t.Photosynthesis
	c.motion += t.Motion
}

// Dominant returns the trait carrying the most mass in the cell. Ties go to
// the earlier symbol in genome order.
func (c *Cell) Dominant() traits.Symbol {
	best, mass := traits.Attack, c.attack
	if c.defense > mass {
		best, mass = traits.Defense, c.defense
	}
	if c.photosynthesis > mass {
		best, mass = traits.Photosynthesis, c.photosynthesis
	}
	if c.motion > mass {
		best = traits.Motion
	}
	return best
}

// Glyph returns the rune for the cell's crowding.
func (c *Cell) Glyph() rune {
	switch {
	case c.Count == 0:
		return ' '
	case c.Count == 1:
		return '.'
	case c.Count <= 3:
		return ':'
	case c.Count <= 8:
		return '*'
	default:
		return '#'
	}
}

// Style returns the cell color: the dominant trait's ring color, bold when
// an intelligent biot is present.
func (c *Cell) Style() tcell.Style {
	var color tcell.Color
	switch c.Dominant() {
	case traits.Attack:
		color = tcell.ColorRed
	case traits.Defense:
		color = tcell.ColorNavy
	case traits.Motion:
		color = tcell.ColorBlue
	default:
		color = tcell.ColorGreen
	}
	style := tcell.StyleDefault.Foreground(color)
	if c.Intelligent > 0 {
		style = style.Bold(true)
	}
	return style
}

// Raster is a grid of cells covering the world.
type Raster struct {
	Cols, Rows int
	Cells      []Cell // row-major
	bounds     systems.Bounds
}

// NewRaster creates an empty cols x rows grid over a world of the given size.
func NewRaster(cols, rows int, bounds systems.Bounds) *Raster {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Raster{
		Cols:   cols,
		Rows:   rows,
		Cells:  make([]Cell, cols*rows),
		bounds: bounds,
	}
}

// Add places a biot at world position (x, y).
func (r *Raster) Add(x, y float32, t traits.Traits) {
	col := int(x / r.bounds.Width * float32(r.Cols))
	row := int(y / r.bounds.Height * float32(r.Rows))
	col = min(max(col, 0), r.Cols-1)
	row = min(max(row, 0), r.Rows-1)
	r.Cells[row*r.Cols+col].Add(t)
}

// At returns the cell at column col and row row.
func (r *Raster) At(col, row int) *Cell {
	return &r.Cells[row*r.Cols+col]
}
