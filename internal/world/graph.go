package world

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Graph is an arena of rooms and the entities spawned into them.
// Rooms reference each other by RoomID; entities are addressed by EntityID.
type Graph struct {
	Rooms    []Room
	entities map[EntityID]*Entity
	fixtures Fixtures
}

// NewGraph creates an empty graph that spawns generator fixtures from fixtures.
func NewGraph(fixtures Fixtures) *Graph {
	return &Graph{
		Rooms:    make([]Room, 0),
		entities: make(map[EntityID]*Entity),
		fixtures: fixtures,
	}
}

// AddRoom appends a room to the arena. It does not link the room into its
// parent's children; callers do that once the door to it is resolved.
func (g *Graph) AddRoom(depth int, parent RoomID, boss bool) RoomID {
	id := RoomID(len(g.Rooms))
	g.Rooms = append(g.Rooms, Room{
		ID:         id,
		Depth:      depth,
		Parent:     parent,
		Children:   make([]RoomID, 0, 2),
		IsBossRoom: boss,
		Entities:   make([]EntityID, 0),
	})
	return id
}

// attach appends child to parent's children.
func (g *Graph) attach(parent, child RoomID) {
	p := g.Room(parent)
	p.Children = append(p.Children, child)
}

// Room returns the room with the given id, or nil if it does not exist.
func (g *Graph) Room(id RoomID) *Room {
	if id < 0 || int(id) >= len(g.Rooms) {
		return nil
	}
	return &g.Rooms[id]
}

// Len returns the number of rooms.
func (g *Graph) Len() int {
	return len(g.Rooms)
}

// Root returns the depth-0 room, or NoRoom for an empty graph.
func (g *Graph) Root() RoomID {
	if len(g.Rooms) == 0 {
		return NoRoom
	}
	return 0
}

// Spawn materializes def into room and returns its handle.
// New entities start disabled; they are enabled when their room is entered.
func (g *Graph) Spawn(kind Kind, def EntityDef, room RoomID) EntityID {
	e := &Entity{
		ID:          uuid.New(),
		Kind:        kind,
		Def:         def,
		Room:        room,
		Destination: NoRoom,
	}
	g.entities[e.ID] = e
	r := g.Room(room)
	r.Entities = append(r.Entities, e.ID)
	return e.ID
}

// spawnFixture spawns one of the generator-placed kinds with its fixture descriptor.
func (g *Graph) spawnFixture(kind Kind, room RoomID) *Entity {
	return g.entities[g.Spawn(kind, g.fixtures.forKind(kind), room)]
}

// Remove deletes an entity from the graph and from its room.
func (g *Graph) Remove(id EntityID) {
	e, ok := g.entities[id]
	if !ok {
		return
	}
	if r := g.Room(e.Room); r != nil {
		r.Entities = slices.DeleteFunc(r.Entities, func(other EntityID) bool { return other == id })
	}
	delete(g.entities, id)
}

// Entity returns the entity with the given handle, or nil.
func (g *Graph) Entity(id EntityID) *Entity {
	return g.entities[id]
}

// EntityCount returns the number of live entities.
func (g *Graph) EntityCount() int {
	return len(g.entities)
}

// EntitiesIn returns the entities of a room in spawn order.
func (g *Graph) EntitiesIn(room RoomID) []*Entity {
	r := g.Room(room)
	if r == nil {
		return nil
	}
	result := make([]*Entity, 0, len(r.Entities))
	for _, id := range r.Entities {
		result = append(result, g.entities[id])
	}
	return result
}

// Doors returns the doors of a room in spawn order.
func (g *Graph) Doors(room RoomID) []*Entity {
	var doors []*Entity
	for _, e := range g.EntitiesIn(room) {
		if e.Kind.IsDoor() {
			doors = append(doors, e)
		}
	}
	return doors
}

// SetRoomActive enables or disables every entity in a room.
func (g *Graph) SetRoomActive(room RoomID, active bool) {
	for _, e := range g.EntitiesIn(room) {
		e.Enabled = active
	}
}

// MaxDepth returns the deepest room depth, or -1 for an empty graph.
func (g *Graph) MaxDepth() int {
	deepest := -1
	for i := range g.Rooms {
		deepest = max(deepest, g.Rooms[i].Depth)
	}
	return deepest
}

// RoomsAtDepth returns the rooms at exactly depth that are not excluded.
// When none qualify it searches one layer shallower, and at depth 0 it falls
// back to the root regardless of exclusions. It only returns nil for an
// empty graph.
func (g *Graph) RoomsAtDepth(depth int, excluded ...RoomID) []RoomID {
	if len(g.Rooms) == 0 {
		return nil
	}
	if depth <= 0 {
		return []RoomID{g.Root()}
	}

	var rooms []RoomID
	for i := range g.Rooms {
		if g.Rooms[i].Depth == depth && !slices.Contains(excluded, g.Rooms[i].ID) {
			rooms = append(rooms, g.Rooms[i].ID)
		}
	}

	if len(rooms) == 0 {
		return g.RoomsAtDepth(depth-1, excluded...)
	}
	return rooms
}

// PathToRoot returns the rooms from id up to and including the root.
func (g *Graph) PathToRoot(id RoomID) []RoomID {
	var path []RoomID
	for steps := 0; id != NoRoom && steps <= len(g.Rooms); steps++ {
		r := g.Room(id)
		if r == nil {
			break
		}
		path = append(path, id)
		id = r.Parent
	}
	return path
}

// Validate checks the tree shape of the graph and that every door resolves.
func (g *Graph) Validate() error {
	if len(g.Rooms) == 0 {
		return ErrEmptyGraph
	}

	roots := 0
	for i := range g.Rooms {
		r := &g.Rooms[i]
		if r.IsRoot() {
			roots++
			if r.Depth != 0 {
				return fmt.Errorf("root room %d at depth %d: %w", r.ID, r.Depth, ErrMalformedGraph)
			}
			continue
		}

		parent := g.Room(r.Parent)
		if parent == nil {
			return fmt.Errorf("room %d has missing parent %d: %w", r.ID, r.Parent, ErrMalformedGraph)
		}
		if r.Depth != parent.Depth+1 {
			return fmt.Errorf("room %d at depth %d under parent at depth %d: %w", r.ID, r.Depth, parent.Depth, ErrMalformedGraph)
		}
		if !slices.Contains(parent.Children, r.ID) {
			return fmt.Errorf("room %d not listed as child of %d: %w", r.ID, r.Parent, ErrMalformedGraph)
		}

		path := g.PathToRoot(r.ID)
		if len(path) > len(g.Rooms) || !g.Rooms[path[len(path)-1]].IsRoot() {
			return fmt.Errorf("room %d does not reach the root: %w", r.ID, ErrMalformedGraph)
		}
	}
	if roots != 1 {
		return fmt.Errorf("%d root rooms: %w", roots, ErrMalformedGraph)
	}

	for i := range g.Rooms {
		for _, child := range g.Rooms[i].Children {
			if c := g.Room(child); c == nil || c.Parent != g.Rooms[i].ID {
				return fmt.Errorf("room %d lists foreign child %d: %w", g.Rooms[i].ID, child, ErrMalformedGraph)
			}
		}
	}

	for _, e := range g.entities {
		if !e.Kind.IsDoor() {
			continue
		}
		if g.Room(e.Destination) == nil {
			return fmt.Errorf("%s in room %d: %w", e.Kind, e.Room, ErrUnresolvedDoor)
		}
	}
	return nil
}
