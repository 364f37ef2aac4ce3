package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Layout columns.
const (
	mapColumn  = 1
	roomColumn = 40
	headerRow  = 0
	bodyRow    = 2
)

// View is everything the renderer needs for one frame.
type View struct {
	Dungeon   *world.Dungeon
	Current   world.RoomID
	Party     *entity.Party
	StageName string
	Status    string
	Messages  []string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleRoom    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Render draws the room map, the current room and recent messages.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	header := fmt.Sprintf("%s  [%s]", v.StageName, v.Status)
	if v.Party != nil {
		header += fmt.Sprintf("  keys:%d  cleared:%d", v.Party.KeyCount(), v.Party.StagesCleared)
	}
	r.screen.DrawText(mapColumn, headerRow, header, styleHeader)

	if v.Dungeon != nil {
		r.renderMap(v)
		r.renderRoom(v)
	}

	_, height := r.screen.Size()
	for i, msg := range v.Messages {
		r.RenderMessage(msg, height-len(v.Messages)+i)
	}

	r.screen.Show()
}

// renderMap draws the room tree, one room per line, indented by depth.
// Rooms the party has not visited are drawn as "?" unless adjacent.
func (r *Renderer) renderMap(v View) {
	g := v.Dungeon.Graph
	y := bodyRow

	var walk func(id world.RoomID)
	walk = func(id world.RoomID) {
		room := g.Room(id)
		label, style := r.roomLabel(v, room)
		r.screen.DrawText(mapColumn+room.Depth*2, y, label, style)
		y++
		for _, child := range room.Children {
			walk(child)
		}
	}
	walk(v.Dungeon.Root())
}

func (r *Renderer) roomLabel(v View, room *world.Room) (string, tcell.Style) {
	known := v.Party == nil || v.Party.HasVisited(room.ID) || room.ID == v.Current
	if !known && v.Party != nil && room.Parent != world.NoRoom && v.Party.HasVisited(room.Parent) {
		known = true
	}

	var b strings.Builder
	if room.ID == v.Current {
		b.WriteRune(v.partySymbol())
	} else {
		b.WriteRune('-')
	}
	b.WriteRune(' ')

	switch {
	case !known:
		b.WriteString("?")
	case room.IsBossRoom:
		b.WriteString(fmt.Sprintf("Boss room %d", room.ID))
	default:
		b.WriteString(fmt.Sprintf("Room %d", room.ID))
	}

	style := styleRoom
	switch {
	case room.ID == v.Current:
		style = styleCurrent
	case room.IsBossRoom && known:
		style = styleBoss
	case !known:
		style = styleDim
	}
	return b.String(), style
}

// renderRoom lists the current room's doors (numbered) and other entities.
func (r *Renderer) renderRoom(v View) {
	g := v.Dungeon.Graph
	room := g.Room(v.Current)
	if room == nil {
		return
	}

	y := bodyRow
	r.screen.DrawText(roomColumn, y, fmt.Sprintf("Room %d (depth %d)", room.ID, room.Depth), styleHeader)
	y += 2

	door := 0
	for _, e := range g.EntitiesIn(room.ID) {
		glyph := tcell.StyleDefault.Foreground(gamedata.EntityColor(e.Def))
		x := roomColumn + 2
		if e.Kind.IsDoor() {
			door++
			r.screen.DrawText(roomColumn, y, fmt.Sprintf("%d", door), styleHeader)
		}
		r.screen.SetContent(x, y, e.Def.GlyphRune(), glyph)
		r.screen.DrawText(x+2, y, describe(e), styleRoom)
		y++
	}

	y++
	r.screen.DrawText(roomColumn, y, "1-9 door  k key  f fight  p portal  q quit", styleDim)
}

// describe returns a one-line description of an entity.
func describe(e *world.Entity) string {
	switch e.Kind {
	case world.KindDoor, world.KindBackDoor:
		return fmt.Sprintf("%s to room %d", e.Def.Name, e.Destination)
	case world.KindBossDoor:
		if e.Locked {
			return e.Def.Name + " (locked)"
		}
		return e.Def.Name + " (open)"
	default:
		return e.Def.Name
	}
}

func (v View) partySymbol() rune {
	if v.Party == nil {
		return '&'
	}
	return v.Party.Symbol
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(mapColumn, y, msg, styleMessage)
}
