package entity

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a level that cannot be simulated.
// It is returned before any simulation starts and never substituted with defaults.
var ErrConfiguration = errors.New("configuration error")

// Symbol is a single tile symbol in a level grid
type Symbol byte

const (
	SymbolEmpty       Symbol = ' '
	SymbolBlank       Symbol = '_'
	SymbolWall        Symbol = 'x'
	SymbolHouseWall   Symbol = '-'
	SymbolPlayer      Symbol = 'P'
	SymbolAggressive  Symbol = 'b'
	SymbolAmbusher    Symbol = 'p'
	SymbolFlanker     Symbol = 'i'
	SymbolPatroller   Symbol = 'c'
	SymbolPellet      Symbol = '.'
	SymbolPowerPellet Symbol = 'o'
)

// Known reports whether the symbol is part of the fixed level alphabet
func (s Symbol) Known() bool {
	switch s {
	case SymbolEmpty, SymbolBlank, SymbolWall, SymbolHouseWall, SymbolPlayer,
		SymbolAggressive, SymbolAmbusher, SymbolFlanker, SymbolPatroller,
		SymbolPellet, SymbolPowerPellet:
		return true
	}
	return false
}

// IsPursuer reports whether the symbol spawns a pursuer
func (s Symbol) IsPursuer() bool {
	switch s {
	case SymbolAggressive, SymbolAmbusher, SymbolFlanker, SymbolPatroller:
		return true
	}
	return false
}

// Grid is a parsed level: symbols indexed [row][col] plus the fixed
// pixel points pursuers route through when leaving or re-entering the house.
type Grid struct {
	Cols  int
	Rows  int
	Cells [][]Symbol

	HouseExit Point
	HouseDoor Point
}

// NewGrid builds a grid from symbol rows. Column count is taken from the
// widest row; call Validate before simulating it.
func NewGrid(rows []string, houseExit, houseDoor Point) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	cells := make([][]Symbol, len(rows))
	for y, r := range rows {
		cells[y] = make([]Symbol, len(r))
		for x := 0; x < len(r); x++ {
			cells[y][x] = Symbol(r[x])
		}
	}

	return &Grid{
		Cols:      cols,
		Rows:      len(rows),
		Cells:     cells,
		HouseExit: houseExit,
		HouseDoor: houseDoor,
	}
}

// At returns the symbol at the given cell, or SymbolEmpty outside the grid
func (g *Grid) At(col, row int) Symbol {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return SymbolEmpty
	}
	return g.Cells[row][col]
}

// Width returns the arena width in pixels
func (g *Grid) Width() int { return g.Cols * CellSize }

// Height returns the arena height in pixels
func (g *Grid) Height() int { return g.Rows * CellSize }

// Find returns the first cell holding sym in column-major order
func (g *Grid) Find(sym Symbol) (col, row int, ok bool) {
	for col = 0; col < g.Cols; col++ {
		for row = 0; row < g.Rows; row++ {
			if g.Cells[row][col] == sym {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}

// Count returns how many cells hold sym
func (g *Grid) Count(sym Symbol) int {
	n := 0
	for _, row := range g.Cells {
		for _, s := range row {
			if s == sym {
				n++
			}
		}
	}
	return n
}

// Validate checks the grid is simulatable: rectangular, made of known
// symbols, with exactly one player spawn and on-grid house points inside the arena.
func (g *Grid) Validate() error {
	if g.Cols <= 0 || g.Rows <= 0 || len(g.Cells) != g.Rows {
		return fmt.Errorf("%w: grid is empty or malformed (%dx%d)", ErrConfiguration, g.Cols, g.Rows)
	}
	for row, cells := range g.Cells {
		if len(cells) != g.Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrConfiguration, row, len(cells), g.Cols)
		}
		for col, s := range cells {
			if !s.Known() {
				return fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrConfiguration, rune(s), col, row)
			}
		}
	}

	switch n := g.Count(SymbolPlayer); n {
	case 0:
		return fmt.Errorf("%w: grid has no player spawn", ErrConfiguration)
	case 1:
	default:
		return fmt.Errorf("%w: grid has %d player spawns", ErrConfiguration, n)
	}

	points := []struct {
		name string
		p    Point
	}{
		{"house exit", g.HouseExit},
		{"house door", g.HouseDoor},
	}
	for _, hp := range points {
		p := hp.p
		if !IsOnGrid(p.X, p.Y) {
			return fmt.Errorf("%w: %s (%d,%d) is not grid-aligned", ErrConfiguration, hp.name, p.X, p.Y)
		}
		if p.X < 0 || p.X >= g.Width() || p.Y < 0 || p.Y >= g.Height() {
			return fmt.Errorf("%w: %s (%d,%d) is outside the arena", ErrConfiguration, hp.name, p.X, p.Y)
		}
	}
	return nil
}
