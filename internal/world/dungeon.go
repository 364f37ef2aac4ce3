// Package world provides dungeon generation as a tree of rooms joined by doors.
package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Dungeon is one fully generated stage.
type Dungeon struct {
	RunID     uuid.UUID
	Stage     int
	Graph     *Graph
	Placement Placement

	portal EntityID
	events Events
}

// Root returns the starting room.
func (d *Dungeon) Root() RoomID {
	return d.Graph.Root()
}

// BossRoom returns the boss room.
func (d *Dungeon) BossRoom() RoomID {
	return d.Placement.BossRoom
}

// BossDoorLocked reports whether the boss door is still locked.
func (d *Dungeon) BossDoorLocked() bool {
	door := d.Graph.Entity(d.Placement.BossDoor)
	return door != nil && door.Locked
}

// CollectKey removes a key from its room and unlocks the door it is bound to.
// It returns the unlocked door.
func (d *Dungeon) CollectKey(ctx context.Context, key EntityID) (EntityID, error) {
	e := d.Graph.Entity(key)
	if e == nil || e.Kind != KindKey {
		return NoEntity, ErrNotAKey
	}

	door := d.Graph.Entity(e.KeyDoor)
	if door == nil {
		return NoEntity, fmt.Errorf("key bound to missing door: %w", ErrNotADoor)
	}
	door.Locked = false
	d.Graph.Remove(key)

	telemetry.Logger(ctx).Debug("boss door unlocked", "stage", d.Stage, "key_room", e.Room, "door_room", door.Room)
	return door.ID, nil
}

// Portal returns the portal entity, or NoEntity before the boss is defeated.
func (d *Dungeon) Portal() EntityID {
	return d.portal
}

// SpawnPortal opens the exit portal in the boss room and notifies BossDefeated.
// Only the first call spawns; later calls return the existing portal and false.
func (d *Dungeon) SpawnPortal(ctx context.Context) (EntityID, bool) {
	if d.portal != NoEntity {
		return d.portal, false
	}

	portal := d.Graph.spawnFixture(KindPortal, d.Placement.BossRoom)
	portal.Enabled = true
	d.portal = portal.ID

	d.eventSink().BossDefeated(ctx, d)
	return d.portal, true
}

func (d *Dungeon) eventSink() Events {
	if d.events == nil {
		return NoopEvents{}
	}
	return d.events
}

// Generator builds dungeons for successive stages.
type Generator struct {
	cfg     GenConfig
	content ContentProvider
	events  Events
	rng     Rand
}

// NewGenerator creates a generator. A nil rng is replaced by a time-seeded
// source and nil events by NoopEvents.
func NewGenerator(cfg GenConfig, content ContentProvider, rng Rand, events Events) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if events == nil {
		events = NoopEvents{}
	}
	return &Generator{
		cfg:     cfg,
		content: content,
		events:  events,
		rng:     rng,
	}
}

// Config returns the generation settings.
func (gen *Generator) Config() GenConfig {
	return gen.cfg
}

// Generate builds the dungeon for stage: topology, rooms, then boss and key.
//
// A stage past the content table fires StageExhausted and returns
// ErrStagesExhausted. Any invariant failure returns an error and no dungeon;
// the result is only handed out once every step has succeeded.
func (gen *Generator) Generate(ctx context.Context, stage int) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	logger := telemetry.Logger(ctx)

	span.SetAttributes(
		attribute.Int("dungeon.stage", stage),
		attribute.Int("dungeon.max_depth", gen.cfg.MaxDepth),
		attribute.Float64("dungeon.odds_power", gen.cfg.OddsPower),
	)

	if err := gen.cfg.Validate(); err != nil {
		telemetry.Fail(span, err)
		return nil, err
	}
	if stage < 0 {
		err := fmt.Errorf("stage %d: %w", stage, ErrInvalidConfig)
		telemetry.Fail(span, err)
		return nil, err
	}

	if stage >= gen.content.StageCount() {
		span.SetAttributes(attribute.Bool("dungeon.stages_exhausted", true))
		logger.Info("no content left, run complete", "stage", stage)
		gen.events.StageExhausted(ctx, stage)
		return nil, fmt.Errorf("stage %d: %w", stage, ErrStagesExhausted)
	}

	tree := NewTree(gen.rng, gen.cfg.MaxDepth, gen.cfg.OddsPower)
	logger.Debug("topology grown", "nodes", tree.Count(), "depth", tree.Depth())

	graph, err := Build(stage, gen.cfg, tree, gen.content, gen.rng)
	if err != nil {
		telemetry.Fail(span, err)
		return nil, fmt.Errorf("build rooms: %w", err)
	}

	placement, err := gen.placeBoss(ctx, graph, stage)
	if err != nil {
		telemetry.Fail(span, err)
		return nil, fmt.Errorf("place boss: %w", err)
	}

	d := &Dungeon{
		RunID:     uuid.New(),
		Stage:     stage,
		Graph:     graph,
		Placement: placement,
		portal:    NoEntity,
		events:    gen.events,
	}

	span.SetAttributes(
		attribute.String("dungeon.run_id", d.RunID.String()),
		attribute.Int("dungeon.room_count", graph.Len()),
		attribute.Int("dungeon.entity_count", graph.EntityCount()),
		attribute.Int("dungeon.target_depth", placement.TargetDepth),
		attribute.Int("dungeon.boss_room", int(placement.BossRoom)),
		attribute.Int("dungeon.key_room", int(placement.KeyRoom)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Debug("dungeon generated",
		"stage", stage,
		"rooms", graph.Len(),
		"target_depth", placement.TargetDepth,
		"boss_room", placement.BossRoom,
		"key_room", placement.KeyRoom,
	)

	gen.events.DungeonLoaded(ctx, d)
	return d, nil
}

// placeBoss runs PlaceBossAndKey in its own span and re-validates the graph.
func (gen *Generator) placeBoss(ctx context.Context, graph *Graph, stage int) (Placement, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.place_boss")
	defer span.End()

	placement, err := PlaceBossAndKey(graph, stage, gen.content, gen.rng)
	if err != nil {
		telemetry.Fail(span, err)
		return Placement{}, err
	}
	if err := graph.Validate(); err != nil {
		telemetry.Fail(span, err)
		return Placement{}, err
	}

	span.SetAttributes(
		attribute.Int("boss.door_room", int(placement.BossDoorRoom)),
		attribute.Int("boss.room_depth", graph.Room(placement.BossRoom).Depth),
		attribute.Int("key.room_depth", graph.Room(placement.KeyRoom).Depth),
	)
	return placement, nil
}
