package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const maxMessages = 5

var (
	// ErrNoSuchDoor is returned for a door number not present in the room.
	ErrNoSuchDoor = errors.New("no such door")
	// ErrNoKeyHere is returned when the current room holds no key.
	ErrNoKeyHere = errors.New("no key in this room")
	// ErrNotBossRoom is returned when fighting outside the boss room.
	ErrNotBossRoom = errors.New("not in the boss room")
	// ErrBossDefeated is returned when the boss was already beaten.
	ErrBossDefeated = errors.New("boss already defeated")
	// ErrNoPortal is returned when no portal is open in the current room.
	ErrNoPortal = errors.New("no portal here")
	// ErrRunOver is returned for actions after the run is won.
	ErrRunOver = errors.New("run is over")
)

// Session holds the state of one run independent of the terminal.
// It receives generation events and room transitions.
type Session struct {
	catalog   *gamedata.Catalog
	generator *world.Generator
	startAt   int

	dungeon  *world.Dungeon
	nav      *world.Navigator
	party    *entity.Party
	state    State
	stage    int
	messages []string
}

// NewSession creates a session using catalog for room content.
func NewSession(cfg Config, catalog *gamedata.Catalog) *Session {
	s := &Session{
		catalog: catalog,
		startAt: cfg.StartStage,
		party:   entity.NewParty(),
		state:   StateExplore,
	}
	s.generator = world.NewGenerator(cfg.GenConfig(catalog.Fixtures()), catalog, cfg.NewRand(), s)
	return s
}

// Start generates the first stage and enters its root room.
func (s *Session) Start(ctx context.Context) error {
	return s.loadStage(ctx, s.startAt)
}

// loadStage generates stage and enters it. Past the last stage the run is won.
func (s *Session) loadStage(ctx context.Context, stage int) error {
	d, err := s.generator.Generate(ctx, stage)
	if errors.Is(err, world.ErrStagesExhausted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("generate stage %d: %w", stage, err)
	}

	s.dungeon = d
	s.stage = stage
	s.state = StateExplore
	s.nav = world.NewNavigator(d, s, s.roomChanged)
	s.nav.Switch(ctx, d.Root())
	return nil
}

// =============================================================================
// world.Events and world.RoomHooks
// =============================================================================

// DungeonLoaded announces a freshly generated stage.
func (s *Session) DungeonLoaded(ctx context.Context, d *world.Dungeon) {
	telemetry.Logger(ctx).Info("stage ready", "stage", d.Stage, "rooms", d.Graph.Len(), "run", d.RunID)
	s.addMessage(fmt.Sprintf("You descend into %s.", s.stageName(d.Stage)))
}

// StageExhausted ends the run in victory.
func (s *Session) StageExhausted(ctx context.Context, stage int) {
	telemetry.Logger(ctx).Info("run won", "stages_cleared", s.party.StagesCleared)
	s.state = StateWon
	s.addMessage("The last portal closes behind you. Victory!")
}

// BossRoomEntered warns the player.
func (s *Session) BossRoomEntered(ctx context.Context, d *world.Dungeon, room world.RoomID) {
	telemetry.Logger(ctx).Debug("boss room entered", "room", room)
	if d.Portal() == world.NoEntity {
		s.addMessage("Something large stirs in the dark.")
	}
}

// BossDefeated announces the portal.
func (s *Session) BossDefeated(ctx context.Context, d *world.Dungeon) {
	telemetry.Logger(ctx).Info("boss defeated", "stage", d.Stage)
	s.addMessage("The boss falls. A portal opens.")
}

// OnEnter marks the room as explored.
func (s *Session) OnEnter(ctx context.Context, room world.RoomID) {
	if s.party.Visit(room) {
		telemetry.Logger(ctx).Debug("room discovered", "room", room)
	}
}

// OnExit is a no-op; leaving a room has no effect on the run.
func (s *Session) OnExit(context.Context, world.RoomID) {}

func (s *Session) roomChanged(ctx context.Context, room world.RoomID) {
	telemetry.Logger(ctx).Debug("active room changed", "room", room, "depth", s.dungeon.Graph.Room(room).Depth)
}

// =============================================================================
// Actions
// =============================================================================

// Doors returns the doors of the current room, numbered from 1 in the UI.
func (s *Session) Doors() []*world.Entity {
	if s.nav == nil {
		return nil
	}
	return s.dungeon.Graph.Doors(s.nav.Current())
}

// UseDoor walks through the door with the given 1-based number.
func (s *Session) UseDoor(ctx context.Context, number int) error {
	if s.state == StateWon {
		return ErrRunOver
	}
	doors := s.Doors()
	if number < 1 || number > len(doors) {
		return ErrNoSuchDoor
	}

	err := s.nav.UseDoor(ctx, doors[number-1].ID)
	if errors.Is(err, world.ErrDoorLocked) {
		s.addMessage("The door is sealed. Find the key.")
	}
	return err
}

// PickUpKey collects the key in the current room and unlocks its door.
func (s *Session) PickUpKey(ctx context.Context) error {
	if s.state == StateWon {
		return ErrRunOver
	}
	for _, e := range s.dungeon.Graph.EntitiesIn(s.nav.Current()) {
		if e.Kind != world.KindKey {
			continue
		}
		door, err := s.dungeon.CollectKey(ctx, e.ID)
		if err != nil {
			return err
		}
		s.party.AddKey(door)
		s.addMessage("You pick up the key. Somewhere a lock clicks.")
		return nil
	}
	return ErrNoKeyHere
}

// FightBoss resolves the boss encounter: the boss room's occupants are
// cleared and the portal opens.
func (s *Session) FightBoss(ctx context.Context) error {
	if s.state == StateWon {
		return ErrRunOver
	}
	room := s.dungeon.Graph.Room(s.nav.Current())
	if !room.IsBossRoom {
		return ErrNotBossRoom
	}
	if s.dungeon.Portal() != world.NoEntity {
		return ErrBossDefeated
	}

	_, span := telemetry.Tracer("game").Start(ctx, "boss.fight")
	defer span.End()

	cleared := 0
	for _, e := range s.dungeon.Graph.EntitiesIn(room.ID) {
		if e.Kind == world.KindContent {
			s.dungeon.Graph.Remove(e.ID)
			cleared++
		}
	}
	span.SetAttributes(
		attribute.Int("stage", s.stage),
		attribute.Int("boss.occupants", cleared),
	)

	s.dungeon.SpawnPortal(ctx)
	s.state = StateStageClear
	return nil
}

// TakePortal leaves through the open portal into the next stage.
func (s *Session) TakePortal(ctx context.Context) error {
	if s.state == StateWon {
		return ErrRunOver
	}
	portal := s.dungeon.Graph.Entity(s.dungeon.Portal())
	if portal == nil || portal.Room != s.nav.Current() {
		return ErrNoPortal
	}

	s.party.NextStage()
	return s.loadStage(ctx, s.stage+1)
}

// =============================================================================
// Accessors
// =============================================================================

// Dungeon returns the current stage's dungeon.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// Current returns the active room.
func (s *Session) Current() world.RoomID {
	if s.nav == nil {
		return world.NoRoom
	}
	return s.nav.Current()
}

// Party returns the player's party.
func (s *Session) Party() *entity.Party { return s.party }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Stage returns the current stage index.
func (s *Session) Stage() int { return s.stage }

// StageName returns the display name of the current stage.
func (s *Session) StageName() string { return s.stageName(s.stage) }

// Messages returns the most recent messages, oldest first.
func (s *Session) Messages() []string { return s.messages }

func (s *Session) stageName(stage int) string {
	if def := s.catalog.Stage(stage); def != nil && def.Name != "" {
		return def.Name
	}
	return fmt.Sprintf("stage %d", stage+1)
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}
