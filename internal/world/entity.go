package world

import "github.com/google/uuid"

// EntityID is the stable handle of a spawned entity.
type EntityID = uuid.UUID

// NoEntity is the zero handle.
var NoEntity = uuid.Nil

// Kind classifies what a spawned entity does for navigation.
type Kind int

const (
	// KindContent is regular room content (monsters, chests, shrines).
	KindContent Kind = iota
	// KindDoor leads one layer deeper.
	KindDoor
	// KindBackDoor leads to the parent room.
	KindBackDoor
	// KindBossDoor leads to the boss room and starts locked.
	KindBossDoor
	// KindKey unlocks the boss door when collected.
	KindKey
	// KindPortal appears in the boss room once the boss is defeated.
	KindPortal
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindContent:
		return "content"
	case KindDoor:
		return "door"
	case KindBackDoor:
		return "back_door"
	case KindBossDoor:
		return "boss_door"
	case KindKey:
		return "key"
	case KindPortal:
		return "portal"
	default:
		return "unknown"
	}
}

// IsDoor returns true for kinds that carry a destination.
func (k Kind) IsDoor() bool {
	return k == KindDoor || k == KindBackDoor || k == KindBossDoor
}

// EntityDef describes something that can be spawned into a room.
type EntityDef struct {
	ID    string // Catalog identifier (e.g., "goblin")
	Name  string // Display name
	Glyph string // Single character for rendering
	Color string // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (d EntityDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// Entity is a spawned instance living in a room.
type Entity struct {
	ID   EntityID
	Kind Kind
	Def  EntityDef
	Room RoomID

	// Destination is the room a door leads to, NoRoom until resolved.
	Destination RoomID
	Locked      bool

	// KeyDoor is the door a key unlocks.
	KeyDoor EntityID

	// Enabled mirrors whether the owning room is the active one.
	Enabled bool
}

// Fixtures are the descriptors used for entities the generator places itself.
type Fixtures struct {
	Door     EntityDef
	BackDoor EntityDef
	BossDoor EntityDef
	Key      EntityDef
	Portal   EntityDef
}

// DefaultFixtures returns built-in descriptors for doors, key and portal.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Door:     EntityDef{ID: "door", Name: "Door", Glyph: "+", Color: "#C8A165"},
		BackDoor: EntityDef{ID: "back_door", Name: "Way Back", Glyph: "<", Color: "#A0A0A0"},
		BossDoor: EntityDef{ID: "boss_door", Name: "Sealed Door", Glyph: "%", Color: "#D04040"},
		Key:      EntityDef{ID: "boss_key", Name: "Rusted Key", Glyph: "k", Color: "#FFD700"},
		Portal:   EntityDef{ID: "portal", Name: "Portal", Glyph: "O", Color: "#8A5CFF"},
	}
}

// forKind returns the fixture descriptor for a generator-placed kind.
func (f Fixtures) forKind(kind Kind) EntityDef {
	switch kind {
	case KindDoor:
		return f.Door
	case KindBackDoor:
		return f.BackDoor
	case KindBossDoor:
		return f.BossDoor
	case KindKey:
		return f.Key
	case KindPortal:
		return f.Portal
	default:
		return EntityDef{}
	}
}
