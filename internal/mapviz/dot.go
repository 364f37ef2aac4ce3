// Package mapviz exports a dungeon's room graph as Graphviz DOT and SVG.
package mapviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Options configures map export.
type Options struct {
	// Current highlights the party's room. NoRoom highlights nothing.
	Current world.RoomID

	// Detailed adds depth and content names to room labels.
	// When false, only the room number is shown.
	Detailed bool
}

// ToDOT converts a dungeon to Graphviz DOT format, one node per room and
// one edge per forward door. The boss door edge is dashed while locked.
func ToDOT(d *world.Dungeon, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dungeon {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	g := d.Graph
	for i := range g.Rooms {
		r := &g.Rooms[i]
		attrs := fmtAttrs(d, r, opts)
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(r.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := range g.Rooms {
		r := &g.Rooms[i]
		for _, door := range g.Doors(r.ID) {
			switch door.Kind {
			case world.KindDoor:
				fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(r.ID), nodeID(door.Destination))
			case world.KindBossDoor:
				style := "solid"
				if door.Locked {
					style = "dashed"
				}
				fmt.Fprintf(&buf, "  %s -> %s [style=%s, color=firebrick];\n", nodeID(r.ID), nodeID(door.Destination), style)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id world.RoomID) string {
	return fmt.Sprintf("r%d", id)
}

func fmtLabel(g *world.Graph, r *world.Room, detailed bool) string {
	name := fmt.Sprintf("room %d", r.ID)
	if r.IsBossRoom {
		name = fmt.Sprintf("boss %d", r.ID)
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("depth: %d", r.Depth)}
	for _, e := range g.EntitiesIn(r.ID) {
		if e.Kind == world.KindContent || e.Kind == world.KindKey || e.Kind == world.KindPortal {
			parts = append(parts, e.Def.Name)
		}
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(d *world.Dungeon, r *world.Room, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(d.Graph, r, opts.Detailed))}
	switch {
	case r.IsBossRoom:
		attrs = append(attrs, "fillcolor=mistyrose", "color=firebrick")
	case r.ID == d.Placement.KeyRoom && d.BossDoorLocked():
		attrs = append(attrs, "fillcolor=lightgoldenrod")
	case r.IsRoot():
		attrs = append(attrs, "fillcolor=lightblue")
	}
	if r.ID == opts.Current {
		attrs = append(attrs, "penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
