package world

import (
	"math/rand"
	"testing"
)

// scriptedRand replays fixed draws. Once a script runs out, Float64 returns
// 0.999 (fails every branch roll below depth 0) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// stubContent returns one entity per room, named after the stage and tier it
// was requested for.
type stubContent struct {
	stages int
	calls  []int
}

func (c *stubContent) StageCount() int { return c.stages }

func (c *stubContent) RoomContent(stage, tier int, rng Rand) []EntityDef {
	c.calls = append(c.calls, tier)
	return []EntityDef{{ID: "rat", Name: "Rat", Glyph: "r"}}
}

func (c *stubContent) BossRoomContent(stage int, rng Rand) []EntityDef {
	return []EntityDef{{ID: "ogre", Name: "Ogre", Glyph: "O"}}
}

// twoByTwoScript grows: root with two children at depth 1, the left of which
// has two children at depth 2 (maxDepth 3, oddsPower 1).
func twoByTwoScript() []float64 {
	return []float64{
		0.1,      // root.left
		0.1,      // root.left.left
		0.9, 0.9, // root.left.left has no children
		0.1,      // root.left.right
		0.9, 0.9, // root.left.right has no children
		0.1,      // root.right
		0.9, 0.9, // root.right has no children
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func contentCount(g *Graph, room RoomID) int {
	count := 0
	for _, e := range g.EntitiesIn(room) {
		if e.Kind == KindContent {
			count++
		}
	}
	return count
}

func countKind(t *testing.T, g *Graph, room RoomID, kind Kind) int {
	t.Helper()
	count := 0
	for _, e := range g.EntitiesIn(room) {
		if e.Kind == kind {
			count++
		}
	}
	return count
}
