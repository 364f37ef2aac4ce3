package world

import "errors"

var (
	// ErrStagesExhausted signals that the requested stage is beyond the content
	// table. It is the win condition, not a failure.
	ErrStagesExhausted = errors.New("no content for stage")

	// ErrInvalidConfig is returned for out-of-range generation settings.
	ErrInvalidConfig = errors.New("invalid generation config")

	// ErrLayerMismatch means a topology layer and the pending doors differ in length.
	ErrLayerMismatch = errors.New("topology layer does not match pending doors")

	// ErrUnresolvedDoor means a door was left without a destination.
	ErrUnresolvedDoor = errors.New("door has no destination")

	// ErrMalformedGraph means the rooms do not form a single rooted tree.
	ErrMalformedGraph = errors.New("room graph is not a tree")

	// ErrEmptyGraph means a search was run over a graph with no rooms.
	ErrEmptyGraph = errors.New("room graph is empty")

	// ErrNotADoor is returned when navigating through a non-door entity.
	ErrNotADoor = errors.New("entity is not a door")

	// ErrNotInRoom is returned when an entity is not in the current room.
	ErrNotInRoom = errors.New("entity is not in the current room")

	// ErrDoorLocked is returned when navigating through a locked door.
	ErrDoorLocked = errors.New("door is locked")

	// ErrNotAKey is returned when collecting something that is not a key.
	ErrNotAKey = errors.New("entity is not a key")
)
