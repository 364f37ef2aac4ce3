package world

import (
	"errors"
	"slices"
	"testing"
)

func buildScripted(t *testing.T, ints []int) (*Graph, *scriptedRand) {
	t.Helper()
	rng := &scriptedRand{floats: twoByTwoScript(), ints: ints}
	cfg := DefaultGenConfig()
	g, err := Build(0, cfg, NewTree(rng, cfg.MaxDepth, cfg.OddsPower), &stubContent{stages: 1}, rng)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g, rng
}

func TestPlaceBossScriptedScenario(t *testing.T) {
	for _, choice := range []int{0, 1} {
		g, rng := buildScripted(t, []int{choice, 0})

		p, err := PlaceBossAndKey(g, 0, &stubContent{stages: 1}, rng)
		if err != nil {
			t.Fatalf("PlaceBossAndKey() error = %v", err)
		}

		if p.TargetDepth != 2 {
			t.Errorf("TargetDepth = %d, want 2", p.TargetDepth)
		}
		wantDoorRoom := []RoomID{3, 4}[choice]
		if p.BossDoorRoom != wantDoorRoom {
			t.Errorf("BossDoorRoom = %d, want %d", p.BossDoorRoom, wantDoorRoom)
		}

		boss := g.Room(p.BossRoom)
		if !boss.IsBossRoom || boss.Depth != 3 || boss.Parent != wantDoorRoom {
			t.Errorf("boss room = %+v, want boss at depth 3 under %d", boss, wantDoorRoom)
		}
		if !boss.IsLeaf() {
			t.Error("boss room should be a leaf")
		}
		if !slices.Contains(g.Room(wantDoorRoom).Children, p.BossRoom) {
			t.Error("boss room missing from boss door room's children")
		}

		// The key lands in the other depth-2 room.
		wantKeyRoom := []RoomID{4, 3}[choice]
		if p.KeyRoom != wantKeyRoom {
			t.Errorf("KeyRoom = %d, want %d", p.KeyRoom, wantKeyRoom)
		}
		key := g.Entity(p.Key)
		if key == nil || key.Kind != KindKey || key.KeyDoor != p.BossDoor {
			t.Errorf("key entity = %+v, want key bound to boss door", key)
		}

		if err := g.Validate(); err != nil {
			t.Errorf("Validate() after placement = %v", err)
		}
	}
}

func TestPlaceBossSingleIncomingLockedDoor(t *testing.T) {
	g, rng := buildScripted(t, nil)
	p, err := PlaceBossAndKey(g, 0, &stubContent{stages: 1}, rng)
	if err != nil {
		t.Fatalf("PlaceBossAndKey() error = %v", err)
	}

	var incoming []*Entity
	for i := range g.Rooms {
		for _, d := range g.Doors(g.Rooms[i].ID) {
			if d.Destination == p.BossRoom {
				incoming = append(incoming, d)
			}
		}
	}
	if len(incoming) != 1 {
		t.Fatalf("boss room has %d incoming doors, want 1", len(incoming))
	}
	if !incoming[0].Locked || incoming[0].Kind != KindBossDoor || incoming[0].ID != p.BossDoor {
		t.Errorf("incoming door = %+v, want the locked boss door", incoming[0])
	}

	// The boss room can always be left again.
	back := g.Doors(p.BossRoom)
	if len(back) != 1 || back[0].Kind != KindBackDoor || back[0].Destination != p.BossDoorRoom {
		t.Errorf("boss room doors = %+v, want one back door", back)
	}
	if contentCount(g, p.BossRoom) != 1 {
		t.Errorf("boss room content count = %d, want 1", contentCount(g, p.BossRoom))
	}
}

func TestPlaceBossRootOnly(t *testing.T) {
	g := NewGraph(DefaultFixtures())
	g.AddRoom(0, NoRoom, false)

	p, err := PlaceBossAndKey(g, 0, &stubContent{stages: 1}, &scriptedRand{})
	if err != nil {
		t.Fatalf("PlaceBossAndKey() error = %v", err)
	}

	if p.TargetDepth != 0 {
		t.Errorf("TargetDepth = %d, want 0", p.TargetDepth)
	}
	if p.BossDoorRoom != 0 {
		t.Errorf("BossDoorRoom = %d, want root", p.BossDoorRoom)
	}
	if p.KeyRoom != 0 {
		t.Errorf("KeyRoom = %d, want root fallback", p.KeyRoom)
	}
	if g.Room(p.BossRoom).Depth != 1 {
		t.Errorf("boss room depth = %d, want 1", g.Room(p.BossRoom).Depth)
	}
}

func TestPlaceBossEmptyGraph(t *testing.T) {
	_, err := PlaceBossAndKey(NewGraph(DefaultFixtures()), 0, &stubContent{stages: 1}, &scriptedRand{})
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("PlaceBossAndKey() error = %v, want ErrEmptyGraph", err)
	}
}

func TestRoomsAtDepth(t *testing.T) {
	g, _ := buildScripted(t, nil)

	tests := []struct {
		name     string
		depth    int
		excluded []RoomID
		want     []RoomID
	}{
		{"deepest layer", 2, nil, []RoomID{3, 4}},
		{"one excluded", 2, []RoomID{3}, []RoomID{4}},
		{"falls back a layer", 2, []RoomID{3, 4}, []RoomID{1, 2}},
		{"falls back two layers", 2, []RoomID{1, 2, 3, 4}, []RoomID{0}},
		{"root ignores exclusions", 0, []RoomID{0}, []RoomID{0}},
		{"negative depth", -3, nil, []RoomID{0}},
		{"beyond deepest", 9, nil, []RoomID{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.RoomsAtDepth(tt.depth, tt.excluded...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("RoomsAtDepth(%d, %v) = %v, want %v", tt.depth, tt.excluded, got, tt.want)
			}
		})
	}
}

func TestKeyPlacementProperties(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		rng := seeded(seed)
		cfg := GenConfig{MaxDepth: 4, OddsPower: 0.7, Fixtures: DefaultFixtures()}
		g, err := Build(0, cfg, NewTree(rng, cfg.MaxDepth, cfg.OddsPower), &stubContent{stages: 1}, rng)
		if err != nil {
			t.Fatalf("seed %d: Build() error = %v", seed, err)
		}
		p, err := PlaceBossAndKey(g, 0, &stubContent{stages: 1}, rng)
		if err != nil {
			t.Fatalf("seed %d: PlaceBossAndKey() error = %v", seed, err)
		}

		doorRoom := g.Room(p.BossDoorRoom)
		if doorRoom.Depth != p.TargetDepth {
			t.Errorf("seed %d: boss door room depth %d, want %d", seed, doorRoom.Depth, p.TargetDepth)
		}
		if g.Room(p.BossRoom).Depth != doorRoom.Depth+1 {
			t.Errorf("seed %d: boss room depth %d under door room depth %d", seed, g.Room(p.BossRoom).Depth, doorRoom.Depth)
		}

		excluded := []RoomID{p.BossDoorRoom, doorRoom.Parent}
		keyRoom := g.Room(p.KeyRoom)
		if keyRoom.IsBossRoom {
			t.Errorf("seed %d: key placed in boss room", seed)
		}
		if keyRoom.Depth > p.TargetDepth {
			t.Errorf("seed %d: key depth %d beyond target %d", seed, keyRoom.Depth, p.TargetDepth)
		}

		if slices.Contains(excluded, p.KeyRoom) {
			// Only allowed as the root fallback when nothing else qualifies.
			if !keyRoom.IsRoot() {
				t.Errorf("seed %d: key in excluded room %d", seed, p.KeyRoom)
			}
			for d := 1; d <= p.TargetDepth; d++ {
				for _, id := range g.RoomsAtDepth(d, excluded...) {
					if g.Room(id).Depth == d {
						t.Errorf("seed %d: key fell back to root though room %d qualified", seed, id)
					}
				}
			}
		}

		if keyRoom.Depth < p.TargetDepth {
			// A shallower key means nothing qualified at the target depth.
			for _, id := range g.RoomsAtDepth(p.TargetDepth, excluded...) {
				if g.Room(id).Depth == p.TargetDepth {
					t.Errorf("seed %d: key at depth %d though room %d qualified at target", seed, keyRoom.Depth, id)
				}
			}
		}
	}
}
