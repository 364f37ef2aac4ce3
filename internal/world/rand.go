package world

// Rand is the randomness source consumed by generation.
// *math/rand.Rand satisfies it; seed it for reproducible dungeons.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// pick returns a uniformly chosen element of rooms.
func pick(rng Rand, rooms []RoomID) RoomID {
	return rooms[rng.Intn(len(rooms))]
}
