package scramble

import (
	"math/rand"

	"github.com/vovakirdan/tui-scramble/internal/core"
)

// Surface is the container tiles are placed on. Size is queried every time
// positions are drawn, so the surface may change between calls.
type Surface interface {
	Size() (w, h int)
}

// FixedSurface is a Surface of constant size.
type FixedSurface struct {
	W, H int
}

// Size returns the fixed dimensions.
func (s FixedSurface) Size() (int, int) { return s.W, s.H }

// Board owns the tiles of the current round.
// Tiles are kept in creation order, which is also the draw order.
type Board struct {
	rng     *rand.Rand
	surface Surface
	tileW   int
	tileH   int
	tiles   []*Tile
}

// NewBoard creates an empty board drawing from rng and placing tiles of
// tileW x tileH cells on surface.
func NewBoard(rng *rand.Rand, surface Surface, tileW, tileH int) *Board {
	return &Board{
		rng:     rng,
		surface: surface,
		tileW:   tileW,
		tileH:   tileH,
	}
}

// Build replaces the current tiles with n new ones valued 1..n, each with an
// independent random color. New tiles are disabled with their labels visible.
func (b *Board) Build(n int) {
	b.Clear()
	if n <= 0 {
		return
	}
	b.tiles = make([]*Tile, 0, n)
	for i := range n {
		tile := NewTile(i+1, b.RandomColor())
		tile.Disable()
		b.tiles = append(b.tiles, tile)
	}
}

// Clear drops every tile.
func (b *Board) Clear() {
	b.tiles = nil
}

// Tiles returns the tiles in creation order.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// Count returns the number of tiles.
func (b *Board) Count() int {
	return len(b.tiles)
}

// TileSize returns the tile footprint in cells.
func (b *Board) TileSize() (w, h int) {
	return b.tileW, b.tileH
}

// Values returns tile values in creation order.
func (b *Board) Values() []int {
	values := make([]int, len(b.tiles))
	for i, t := range b.tiles {
		values[i] = t.Value
	}
	return values
}

// Tile returns the tile with the given value, or nil.
func (b *Board) Tile(value int) *Tile {
	for _, t := range b.tiles {
		if t.Value == value {
			return t
		}
	}
	return nil
}

// TileAt returns the topmost tile covering the surface cell (x, y), or nil.
// Later tiles are drawn over earlier ones, so the search runs backwards.
func (b *Board) TileAt(x, y int) *Tile {
	for i := len(b.tiles) - 1; i >= 0; i-- {
		t := b.tiles[i]
		if t.Rect(b.tileW, b.tileH).Contains(x, y) {
			return t
		}
	}
	return nil
}

// RandomColor draws a 24-bit color. Collisions between tiles are allowed.
func (b *Board) RandomColor() core.Color {
	v := b.rng.Intn(1 << 24)
	return core.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// RandomPosition returns a uniformly drawn top-left corner such that a
// tileW x tileH tile fits inside a containerW x containerH container.
// When the container is smaller than the tile on an axis, that axis is 0.
func (b *Board) RandomPosition(containerW, containerH, tileW, tileH int) (x, y int) {
	maxX := core.Max(containerW-tileW, 0)
	maxY := core.Max(containerH-tileH, 0)
	return b.rng.Intn(maxX + 1), b.rng.Intn(maxY + 1)
}

// RandomTilePosition draws a position for one tile on the current surface.
func (b *Board) RandomTilePosition() (x, y int) {
	w, h := b.surface.Size()
	return b.RandomPosition(w, h, b.tileW, b.tileH)
}

// Scatter moves every tile to a fresh random position.
func (b *Board) Scatter() {
	for _, t := range b.tiles {
		t.MoveTo(b.RandomTilePosition())
	}
}

// LayoutRows places the tiles side by side in creation order, one cell
// apart, wrapping onto new rows when the surface is too narrow. The block
// is centred on the surface. This is the layout the player memorizes.
func (b *Board) LayoutRows() {
	if len(b.tiles) == 0 {
		return
	}
	const gap = 1
	w, h := b.surface.Size()

	perRow := core.Max((w+gap)/(b.tileW+gap), 1)
	rows := (len(b.tiles) + perRow - 1) / perRow
	blockH := rows*b.tileH + (rows-1)*gap
	top := core.Max((h-blockH)/2, 0)

	maxX := core.Max(w-b.tileW, 0)
	maxY := core.Max(h-b.tileH, 0)

	for i, t := range b.tiles {
		row, col := i/perRow, i%perRow
		inRow := core.Min(perRow, len(b.tiles)-row*perRow)
		rowW := inRow*b.tileW + (inRow-1)*gap
		left := core.Max((w-rowW)/2, 0)

		x := left + col*(b.tileW+gap)
		y := top + row*(b.tileH+gap)
		t.MoveTo(core.Clamp(x, 0, maxX), core.Clamp(y, 0, maxY))
	}
}

// HideLabels hides every label.
func (b *Board) HideLabels() {
	for _, t := range b.tiles {
		t.HideLabel()
	}
}

// ShowLabels reveals every label.
func (b *Board) ShowLabels() {
	for _, t := range b.tiles {
		t.ShowLabel()
	}
}

// EnableAll lets every tile register clicks.
func (b *Board) EnableAll() {
	for _, t := range b.tiles {
		t.Enable()
	}
}

// DisableAll stops every tile from registering clicks.
func (b *Board) DisableAll() {
	for _, t := range b.tiles {
		t.Disable()
	}
}

// MarkAll sets the same mark on every tile.
func (b *Board) MarkAll(m Mark) {
	for _, t := range b.tiles {
		t.Mark = m
	}
}
