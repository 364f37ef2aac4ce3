package world

import (
	"errors"
	"testing"
)

func TestGraphValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
		want  error
	}{
		{
			name:  "empty",
			build: func() *Graph { return NewGraph(DefaultFixtures()) },
			want:  ErrEmptyGraph,
		},
		{
			name: "two roots",
			build: func() *Graph {
				g := NewGraph(DefaultFixtures())
				g.AddRoom(0, NoRoom, false)
				g.AddRoom(0, NoRoom, false)
				return g
			},
			want: ErrMalformedGraph,
		},
		{
			name: "child not linked",
			build: func() *Graph {
				g := NewGraph(DefaultFixtures())
				g.AddRoom(0, NoRoom, false)
				g.AddRoom(1, 0, false)
				return g
			},
			want: ErrMalformedGraph,
		},
		{
			name: "skipped depth",
			build: func() *Graph {
				g := NewGraph(DefaultFixtures())
				root := g.AddRoom(0, NoRoom, false)
				child := g.AddRoom(2, root, false)
				g.attach(root, child)
				return g
			},
			want: ErrMalformedGraph,
		},
		{
			name: "dangling door",
			build: func() *Graph {
				g := NewGraph(DefaultFixtures())
				root := g.AddRoom(0, NoRoom, false)
				g.spawnFixture(KindDoor, root)
				return g
			},
			want: ErrUnresolvedDoor,
		},
		{
			name: "well formed",
			build: func() *Graph {
				g := NewGraph(DefaultFixtures())
				root := g.AddRoom(0, NoRoom, false)
				child := g.AddRoom(1, root, false)
				g.attach(root, child)
				g.spawnFixture(KindDoor, root).Destination = child
				g.spawnFixture(KindBackDoor, child).Destination = root
				return g
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGraphSpawnAndRemove(t *testing.T) {
	g := NewGraph(DefaultFixtures())
	root := g.AddRoom(0, NoRoom, false)

	a := g.Spawn(KindContent, EntityDef{ID: "bat", Glyph: "b"}, root)
	b := g.Spawn(KindContent, EntityDef{ID: "rat", Glyph: "r"}, root)

	if e := g.Entity(a); e == nil || e.Enabled || e.Room != root || e.Destination != NoRoom {
		t.Errorf("spawned entity = %+v, want disabled entity in root", e)
	}

	g.Remove(a)
	got := g.EntitiesIn(root)
	if len(got) != 1 || got[0].ID != b {
		t.Errorf("EntitiesIn(root) after Remove = %v, want only %v", got, b)
	}
	if g.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", g.EntityCount())
	}

	g.Remove(a) // already gone
	if g.EntityCount() != 1 {
		t.Error("removing a missing entity should be a no-op")
	}
}

func TestGraphRoomLookup(t *testing.T) {
	g := NewGraph(DefaultFixtures())
	if g.Root() != NoRoom || g.MaxDepth() != -1 {
		t.Errorf("empty graph Root()=%d MaxDepth()=%d", g.Root(), g.MaxDepth())
	}
	if g.RoomsAtDepth(0) != nil {
		t.Error("RoomsAtDepth on an empty graph should return nil")
	}

	g.AddRoom(0, NoRoom, false)
	if g.Room(NoRoom) != nil || g.Room(1) != nil {
		t.Error("Room() should return nil for unknown ids")
	}
	if g.Room(0) == nil || !g.Room(0).IsRoot() {
		t.Error("Room(0) should be the root")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
		door     bool
	}{
		{KindContent, "content", false},
		{KindDoor, "door", true},
		{KindBackDoor, "back_door", true},
		{KindBossDoor, "boss_door", true},
		{KindKey, "key", false},
		{KindPortal, "portal", false},
		{Kind(99), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
		if got := tt.kind.IsDoor(); got != tt.door {
			t.Errorf("Kind(%d).IsDoor() = %v, want %v", tt.kind, got, tt.door)
		}
	}
}

func TestEntityDefGlyphRune(t *testing.T) {
	if r := (EntityDef{Glyph: "g"}).GlyphRune(); r != 'g' {
		t.Errorf("GlyphRune() = %c, want g", r)
	}
	if r := (EntityDef{}).GlyphRune(); r != '?' {
		t.Errorf("empty GlyphRune() = %c, want ?", r)
	}
}
