package world

// Placement records where the boss room and its key ended up.
type Placement struct {
	BossDoorRoom RoomID
	BossDoor     EntityID
	BossRoom     RoomID
	KeyRoom      RoomID
	Key          EntityID
	TargetDepth  int
}

// PlaceBossAndKey adds the boss room behind a locked door in one of the
// deepest rooms, then drops the key elsewhere at the same depth.
//
// The key search excludes the boss door room and its parent. When nothing
// qualifies at the target depth the search walks up a layer at a time and
// ends at the root, so sparse dungeons still get a key.
func PlaceBossAndKey(g *Graph, stage int, content ContentProvider, rng Rand) (Placement, error) {
	if g.Len() == 0 {
		return Placement{}, ErrEmptyGraph
	}

	target := g.MaxDepth()

	doorRoom := pick(rng, g.RoomsAtDepth(target))
	bossDoor := g.spawnFixture(KindBossDoor, doorRoom)
	bossDoor.Locked = true

	bossRoom := g.AddRoom(target+1, doorRoom, true)
	back := g.spawnFixture(KindBackDoor, bossRoom)
	back.Destination = doorRoom
	for _, def := range content.BossRoomContent(stage, rng) {
		g.Spawn(KindContent, def, bossRoom)
	}
	g.attach(doorRoom, bossRoom)
	bossDoor.Destination = bossRoom

	excluded := []RoomID{doorRoom}
	if parent := g.Room(doorRoom).Parent; parent != NoRoom {
		excluded = append(excluded, parent)
	}
	keyRoom := pick(rng, g.RoomsAtDepth(target, excluded...))
	key := g.spawnFixture(KindKey, keyRoom)
	key.KeyDoor = bossDoor.ID

	return Placement{
		BossDoorRoom: doorRoom,
		BossDoor:     bossDoor.ID,
		BossRoom:     bossRoom,
		KeyRoom:      keyRoom,
		Key:          key.ID,
		TargetDepth:  target,
	}, nil
}
