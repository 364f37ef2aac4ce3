// Package ui draws the dungeon crawl on a tcell terminal.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the game draws on. Text drawn past the
// right edge is clipped.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapScreen(term)
}

// WrapScreen initializes term and draws on it. Tests pass a
// tcell.SimulationScreen.
func WrapScreen(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks for the next key or resize event. It returns nil once
// the screen is closed.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// Clear blanks the back buffer.
func (s *Screen) Clear() { s.term.Clear() }

// Show flushes the back buffer.
func (s *Screen) Show() { s.term.Show() }

// Sync redraws everything, used after a resize.
func (s *Screen) Sync() { s.term.Sync() }

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int) { return s.term.Size() }

// SetContent draws a single cell. Cells off screen are ignored.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.term.SetContent(x, y, r, nil, style)
}

// DrawText writes text from x, y and returns the column after it, as if
// nothing had been clipped.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func (s *Screen) inBounds(x, y int) bool {
	w, h := s.term.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}
