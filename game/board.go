package game

import (
	"fmt"
	"strings"
)

// Board holds the stones of a game. Cells are stored row-major with row 0 at
// the bottom, and heights[c] is the next free row of column c.
//
// Board has no exported mutators: only Game places and removes stones.
type Board struct {
	width   int
	height  int
	cells   []Color
	heights []int
}

// NewBoard returns an empty board. It panics on non-positive dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d: width and height must be positive", width, height))
	}
	return &Board{
		width:   width,
		height:  height,
		cells:   make([]Color, width*height),
		heights: make([]int, width),
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

func (b *Board) index(col, row int) int {
	return row*b.width + col
}

// Piece returns the stone at (col, row). Empty and out-of-range cells report false.
func (b *Board) Piece(col, row int) (Color, bool) {
	if !b.inBounds(col, row) {
		return none, false
	}
	c := b.cells[b.index(col, row)]
	return c, c != none
}

// ColumnHeight is the number of stones in col, 0 when col is out of range.
func (b *Board) ColumnHeight(col int) int {
	if col < 0 || col >= b.width {
		return 0
	}
	return b.heights[col]
}

func (b *Board) IsColumnFull(col int) bool {
	return b.ColumnHeight(col) == b.height
}

// IsFull reports whether every column is full.
func (b *Board) IsFull() bool {
	for _, h := range b.heights {
		if h < b.height {
			return false
		}
	}
	return true
}

// Stones counts the stones on the board.
func (b *Board) Stones() int {
	total := 0
	for _, h := range b.heights {
		total += h
	}
	return total
}

// place drops a stone on top of col and returns the row it landed on.
// The caller must check that col is in range and not full.
func (b *Board) place(col int, c Color) int {
	row := b.heights[col]
	b.cells[b.index(col, row)] = c
	b.heights[col]++
	return row
}

// removeTop clears the topmost stone of col. The caller must check that col is not empty.
func (b *Board) removeTop(col int) Color {
	b.heights[col]--
	idx := b.index(col, b.heights[col])
	c := b.cells[idx]
	b.cells[idx] = none
	return c
}

// runLength counts the same-colored stones through (col, row) along (dc, dr),
// the starting cell included.
func (b *Board) runLength(col, row, dc, dr int, c Color) int {
	count := 1
	for i := 1; ; i++ {
		if p, ok := b.Piece(col+dc*i, row+dr*i); !ok || p != c {
			break
		}
		count++
	}
	for i := 1; ; i++ {
		if p, ok := b.Piece(col-dc*i, row-dr*i); !ok || p != c {
			break
		}
		count++
	}
	return count
}

// Axes scanned for a winning run: horizontal, vertical and both diagonals.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// connects reports whether the stone at (col, row) completes a winning run.
func (b *Board) connects(col, row int) bool {
	c, ok := b.Piece(col, row)
	if !ok {
		return false
	}
	for _, d := range axes {
		if b.runLength(col, row, d[0], d[1], c) >= ConnectLength {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)
	return &Board{
		width:   b.width,
		height:  b.height,
		cells:   cells,
		heights: heights,
	}
}

// String renders the board top row first, e.g.
//
//	|.|.|.|
//	|R|Y|.|
//	 0 1 2
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		sb.WriteByte('|')
		for col := 0; col < b.width; col++ {
			sb.WriteByte(b.cells[b.index(col, row)].Char())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.width; col++ {
		fmt.Fprintf(&sb, " %d", col%10)
	}
	sb.WriteByte('\n')
	return sb.String()
}
