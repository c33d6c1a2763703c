package core

// Cell is a single drawable unit: a rune plus foreground and background
// colors.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Screen is a 2D cell buffer the engine renders into. Ownership transfers
// to the engine at init; after that only the engine writes to it, and the
// host sees frames exclusively through snapshot events.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 1),
		height: Max(height, 1),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width = Max(width, 1)
	height = Max(height, 1)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	blank := Cell{Rune: ' '}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// SetRune places a rune with the given foreground, keeping the existing
// background.
func (s *Screen) SetRune(x, y int, r rune, fg RGB) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// Get returns the cell at the given position, or a blank cell when out of
// bounds.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// FillRect fills a cell-coordinate rectangle with the given cell, clipped
// to the screen.
func (s *Screen) FillRect(x, y, w, h int, c Cell) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.Set(x+dx, y+dy, c)
		}
	}
}

// FillBg sets the background color of every cell without touching runes.
func (s *Screen) FillBg(bg RGB) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Bg = bg
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string, fg RGB) {
	for i, r := range text {
		s.SetRune(x+i, y, r, fg)
	}
}

// Frame is an immutable snapshot of the screen, published to the host once
// per tick. Copying here is what keeps the host from holding references
// into engine memory.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// Snapshot returns a deep copy of the current screen contents.
func (s *Screen) Snapshot() Frame {
	cells := make([][]Cell, s.height)
	for y := range cells {
		cells[y] = make([]Cell, s.width)
		copy(cells[y], s.cells[y])
	}
	return Frame{Width: s.width, Height: s.height, Cells: cells}
}
