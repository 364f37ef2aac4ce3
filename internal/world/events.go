package world

import "context"

// ContentProvider supplies the entities that populate rooms.
type ContentProvider interface {
	// StageCount returns how many stages have content.
	StageCount() int
	// RoomContent returns the entities for a regular room at a content tier.
	// The tier is the room depth minus one.
	RoomContent(stage, tier int, rng Rand) []EntityDef
	// BossRoomContent returns the entities for the stage's boss room.
	BossRoomContent(stage int, rng Rand) []EntityDef
}

// Events receives fire-and-forget notifications from generation and play.
type Events interface {
	DungeonLoaded(ctx context.Context, d *Dungeon)
	StageExhausted(ctx context.Context, stage int)
	BossRoomEntered(ctx context.Context, d *Dungeon, room RoomID)
	BossDefeated(ctx context.Context, d *Dungeon)
}

// NoopEvents ignores every notification.
type NoopEvents struct{}

func (NoopEvents) DungeonLoaded(context.Context, *Dungeon)           {}
func (NoopEvents) StageExhausted(context.Context, int)               {}
func (NoopEvents) BossRoomEntered(context.Context, *Dungeon, RoomID) {}
func (NoopEvents) BossDefeated(context.Context, *Dungeon)            {}

// RoomHooks is notified when the active room changes.
type RoomHooks interface {
	OnExit(ctx context.Context, room RoomID)
	OnEnter(ctx context.Context, room RoomID)
}

// NoopRoomHooks ignores room transitions.
type NoopRoomHooks struct{}

func (NoopRoomHooks) OnExit(context.Context, RoomID)  {}
func (NoopRoomHooks) OnEnter(context.Context, RoomID) {}
