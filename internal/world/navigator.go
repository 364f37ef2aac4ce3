package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Navigator tracks the active room of a dungeon. Switch is the only way the
// active room changes.
type Navigator struct {
	dungeon  *Dungeon
	current  RoomID
	hooks    RoomHooks
	onChange func(ctx context.Context, room RoomID)
}

// NewNavigator creates a navigator with no active room. hooks and onChange may be nil.
func NewNavigator(d *Dungeon, hooks RoomHooks, onChange func(ctx context.Context, room RoomID)) *Navigator {
	if hooks == nil {
		hooks = NoopRoomHooks{}
	}
	return &Navigator{
		dungeon:  d,
		current:  NoRoom,
		hooks:    hooks,
		onChange: onChange,
	}
}

// Current returns the active room, or NoRoom before the first switch.
func (n *Navigator) Current() RoomID {
	return n.current
}

// Dungeon returns the dungeon being navigated.
func (n *Navigator) Dungeon() *Dungeon {
	return n.dungeon
}

// Switch exits the current room and enters next. It does nothing if next
// does not exist. Switching to the active room still fires exit and enter.
func (n *Navigator) Switch(ctx context.Context, next RoomID) {
	graph := n.dungeon.Graph
	room := graph.Room(next)
	if room == nil {
		return
	}

	ctx, span := telemetry.Tracer("world").Start(ctx, "room.switch")
	defer span.End()
	span.SetAttributes(
		attribute.Int("room.from", int(n.current)),
		attribute.Int("room.to", int(next)),
		attribute.Int("room.depth", room.Depth),
	)

	if n.current != NoRoom {
		graph.SetRoomActive(n.current, false)
		n.hooks.OnExit(ctx, n.current)
	}

	n.current = next
	graph.SetRoomActive(next, true)
	n.hooks.OnEnter(ctx, next)

	if room.IsBossRoom {
		n.dungeon.eventSink().BossRoomEntered(ctx, n.dungeon, next)
	}
	if n.onChange != nil {
		n.onChange(ctx, next)
	}
}

// UseDoor moves through a door in the current room.
func (n *Navigator) UseDoor(ctx context.Context, door EntityID) error {
	e := n.dungeon.Graph.Entity(door)
	if e == nil || !e.Kind.IsDoor() {
		return ErrNotADoor
	}
	if e.Room != n.current {
		return ErrNotInRoom
	}
	if e.Locked {
		return ErrDoorLocked
	}
	if n.dungeon.Graph.Room(e.Destination) == nil {
		return fmt.Errorf("%s in room %d: %w", e.Kind, e.Room, ErrUnresolvedDoor)
	}

	n.Switch(ctx, e.Destination)
	return nil
}
