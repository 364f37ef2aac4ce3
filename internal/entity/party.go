// Package entity provides the player's party.
package entity

import "github.com/samdwyer/roomcrawl/internal/world"

// Party represents the player's party of adventurers.
// It is drawn as a single symbol in the current room.
type Party struct {
	Symbol rune // Display symbol ('&')

	Keys          []world.EntityID // Keys picked up this stage, by the door they unlock
	RoomsVisited  map[world.RoomID]bool
	StagesCleared int
}

// NewParty creates a new party with nothing explored.
func NewParty() *Party {
	return &Party{
		Symbol:       '&',
		RoomsVisited: make(map[world.RoomID]bool),
	}
}

// Visit marks a room as explored. It returns true the first time.
func (p *Party) Visit(room world.RoomID) bool {
	if p.RoomsVisited[room] {
		return false
	}
	p.RoomsVisited[room] = true
	return true
}

// HasVisited returns true if the room has been explored this stage.
func (p *Party) HasVisited(room world.RoomID) bool {
	return p.RoomsVisited[room]
}

// AddKey records a collected key for door.
func (p *Party) AddKey(door world.EntityID) {
	p.Keys = append(p.Keys, door)
}

// KeyCount returns the number of keys carried.
func (p *Party) KeyCount() int {
	return len(p.Keys)
}

// NextStage clears per-stage exploration state and counts the cleared stage.
func (p *Party) NextStage() {
	p.StagesCleared++
	p.Keys = nil
	p.RoomsVisited = make(map[world.RoomID]bool)
}
