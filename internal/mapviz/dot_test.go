package mapviz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

func testDungeon(t *testing.T) *world.Dungeon {
	t.Helper()
	catalog := gamedata.MustLoadCatalog()
	cfg := world.DefaultGenConfig()
	cfg.Fixtures = catalog.Fixtures()
	d, err := world.NewGenerator(cfg, catalog, rand.New(rand.NewSource(11)), nil).Generate(context.Background(), 0)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return d
}

func TestToDOTNodesAndEdges(t *testing.T) {
	d := testDungeon(t)
	dot := ToDOT(d, Options{Current: world.NoRoom})

	if !strings.HasPrefix(dot, "digraph dungeon {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}
	for i := range d.Graph.Rooms {
		if !strings.Contains(dot, fmt.Sprintf("  r%d [", i)) {
			t.Errorf("room %d missing", i)
		}
	}

	// One edge per room except the root, since every room has one entry door.
	if got, want := strings.Count(dot, " -> "), d.Graph.Len()-1; got != want {
		t.Errorf("edges = %d, want %d", got, want)
	}
}

func TestToDOTBossDoorStyle(t *testing.T) {
	d := testDungeon(t)
	p := d.Placement
	edge := fmt.Sprintf("r%d -> r%d [style=", p.BossDoorRoom, p.BossRoom)

	dot := ToDOT(d, Options{Current: world.NoRoom})
	if !strings.Contains(dot, edge+"dashed") {
		t.Errorf("locked boss door not dashed:\n%s", dot)
	}
	if !strings.Contains(dot, "fillcolor=lightgoldenrod") {
		t.Error("key room not highlighted")
	}

	if _, err := d.CollectKey(context.Background(), p.Key); err != nil {
		t.Fatal(err)
	}
	dot = ToDOT(d, Options{Current: world.NoRoom})
	if !strings.Contains(dot, edge+"solid") {
		t.Error("unlocked boss door still dashed")
	}
	if strings.Contains(dot, "lightgoldenrod") {
		t.Error("key room highlighted after pickup")
	}
}

func TestToDOTCurrentRoom(t *testing.T) {
	d := testDungeon(t)

	dot := ToDOT(d, Options{Current: d.Root()})
	if strings.Count(dot, "penwidth=3") != 1 {
		t.Errorf("want exactly one highlighted room:\n%s", dot)
	}
	if strings.Contains(ToDOT(d, Options{Current: world.NoRoom}), "penwidth") {
		t.Error("room highlighted without a current room")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	d := testDungeon(t)

	plain := ToDOT(d, Options{Current: world.NoRoom})
	detailed := ToDOT(d, Options{Current: world.NoRoom, Detailed: true})

	if strings.Contains(plain, "depth:") {
		t.Error("plain labels include depth")
	}
	if !strings.Contains(detailed, `label="room 0\ndepth: 0`) {
		t.Errorf("detailed root label missing:\n%s", detailed)
	}
	keyName := d.Graph.Entity(d.Placement.Key).Def.Name
	if !strings.Contains(detailed, keyName) {
		t.Errorf("detailed labels missing %q", keyName)
	}
}

func TestRenderSVG(t *testing.T) {
	d := testDungeon(t)

	svg, err := RenderSVG(context.Background(), ToDOT(d, Options{Current: d.Root()}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("RenderSVG() of invalid DOT succeeded")
	}
}
