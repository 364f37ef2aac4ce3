// Package game runs a dungeon crawl: stage generation, room navigation,
// the boss key, the portal to the next stage and the terminal loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode while the stage's boss is alive.
	StateExplore State = iota
	// StateStageClear means the boss is defeated and the portal is open.
	StateStageClear
	// StateWon means every stage with content has been cleared.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateStageClear:
		return "stage_clear"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
