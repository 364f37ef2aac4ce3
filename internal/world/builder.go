package world

import "fmt"

// builder turns a topology into a room graph one layer at a time.
type builder struct {
	stage   int
	cfg     GenConfig
	tree    *Tree
	content ContentProvider
	rng     Rand
	graph   *Graph

	// pending holds forward doors still waiting for a destination, in spawn order.
	pending []*Entity
}

// Build converts tree into a room graph for stage.
//
// The root room is created first. Then, for each depth from 1 to MaxDepth,
// the doors spawned in the previous layer are paired positionally with the
// tree's nodes at that depth, and one room is created per pair. Generation
// stops early once a layer spawns no forward doors.
//
// Any mismatch between a layer and its pending doors aborts the build; no
// partial graph is returned.
func Build(stage int, cfg GenConfig, tree *Tree, content ContentProvider, rng Rand) (*Graph, error) {
	b := &builder{
		stage:   stage,
		cfg:     cfg,
		tree:    tree,
		content: content,
		rng:     rng,
		graph:   NewGraph(cfg.Fixtures),
	}

	b.createRoom(0, NoRoom, tree.Root)

	for depth := 1; depth <= cfg.MaxDepth && len(b.pending) > 0; depth++ {
		if err := b.fillLayer(depth); err != nil {
			return nil, err
		}
	}

	if err := b.graph.Validate(); err != nil {
		return nil, err
	}
	return b.graph, nil
}

// fillLayer creates a room behind every pending door.
func (b *builder) fillLayer(depth int) error {
	doors := b.pending
	b.pending = nil

	nodes := b.tree.Layer(depth)
	if len(nodes) != len(doors) {
		return fmt.Errorf("depth %d: %d nodes for %d doors: %w", depth, len(nodes), len(doors), ErrLayerMismatch)
	}

	for i, door := range doors {
		parent := door.Room
		room := b.createRoom(depth, parent, nodes[i])
		door.Destination = room
		b.graph.attach(parent, room)
	}
	return nil
}

// createRoom adds a room and spawns, in order: its back door, one forward
// door per child of node, and its content.
func (b *builder) createRoom(depth int, parent RoomID, node *Node) RoomID {
	room := b.graph.AddRoom(depth, parent, false)

	if depth > 0 {
		back := b.graph.spawnFixture(KindBackDoor, room)
		back.Destination = parent
	}

	for range node.ChildCount() {
		b.pending = append(b.pending, b.graph.spawnFixture(KindDoor, room))
	}

	if depth > 0 {
		for _, def := range b.content.RoomContent(b.stage, depth-1, b.rng) {
			b.graph.Spawn(KindContent, def, room)
		}
	}

	return room
}
