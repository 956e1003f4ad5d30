package launcher

import (
	"github.com/chess10kp/ecws/internal/config"
)

// Grid geometry in pixels
const (
	TileSize     = 135
	ButtonSize   = 130
	Gap          = 5
	Margin       = 5
	HeaderMargin = 30
	// CornerArc is the width and height of the rounded corner arc
	CornerArc = 10
)

// MaxAccel is the highest accelerator number that gets a key binding
const MaxAccel = 9

// Plan is the grid size and the resulting window size
type Plan struct {
	Columns int
	Rows    int
	Width   int
	Height  int
}

// Cell is a grid position
type Cell struct {
	Column int
	Row    int
}

// Tile is an entry placed in the grid
type Tile struct {
	Entry config.Entry
	Cell  Cell
	Accel int
}

// PlanGrid computes the grid for count entries with at most maxColumns per row
func PlanGrid(count, maxColumns int) Plan {
	if maxColumns < 1 {
		maxColumns = 1
	}
	if count < 0 {
		count = 0
	}

	columns := count
	if count > maxColumns {
		columns = maxColumns
	}
	rows := (count + maxColumns - 1) / maxColumns

	return Plan{
		Columns: columns,
		Rows:    rows,
		Width:   Margin + columns*TileSize,
		Height:  HeaderMargin + rows*TileSize,
	}
}

// CellAt returns the row-major cell of the index-th entry
func CellAt(index, maxColumns int) Cell {
	if maxColumns < 1 {
		maxColumns = 1
	}
	return Cell{Column: index % maxColumns, Row: index / maxColumns}
}

// AccelNumber is the 1-based reading order number of a cell
func AccelNumber(c Cell, maxColumns int) int {
	return c.Row*maxColumns + c.Column + 1
}

// HasAccelKey reports whether accelerator n is bound to a key
func HasAccelKey(n int) bool {
	return n >= 1 && n <= MaxAccel
}

// ShowBadge reports whether the number badge of accelerator n is drawn
func ShowBadge(n int, show bool) bool {
	return HasAccelKey(n) && show
}

// ArrangeTiles places entries in the grid in the given order
func ArrangeTiles(entries []config.Entry, maxColumns int) []Tile {
	if maxColumns < 1 {
		maxColumns = 1
	}
	tiles := make([]Tile, 0, len(entries))
	for i, e := range entries {
		cell := CellAt(i, maxColumns)
		tiles = append(tiles, Tile{
			Entry: e,
			Cell:  cell,
			Accel: AccelNumber(cell, maxColumns),
		})
	}
	return tiles
}

// Accelerators maps accelerator numbers 1-9 to their tiles
func Accelerators(tiles []Tile) map[int]Tile {
	bound := make(map[int]Tile)
	for _, t := range tiles {
		if HasAccelKey(t.Accel) {
			bound[t.Accel] = t
		}
	}
	return bound
}
