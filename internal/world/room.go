package world

// RoomID addresses a room inside its Graph.
type RoomID int

// NoRoom marks a missing room reference (the root's parent, an unresolved door).
const NoRoom RoomID = -1

// Room is one node of the dungeon graph.
type Room struct {
	ID         RoomID
	Depth      int
	Parent     RoomID
	Children   []RoomID
	IsBossRoom bool
	Entities   []EntityID
}

// IsRoot returns true if the room has no parent.
func (r *Room) IsRoot() bool {
	return r.Parent == NoRoom
}

// IsLeaf returns true if no door leads deeper from this room.
func (r *Room) IsLeaf() bool {
	return len(r.Children) == 0
}
