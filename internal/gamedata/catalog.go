package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Catalog holds loaded entity definitions and stage room tables.
// It implements world.ContentProvider.
type Catalog struct {
	entities map[string]*EntityDef
	all      []EntityDef
	stages   []StageDef
	fixtures world.Fixtures
}

// NewCatalog creates a catalog and checks that every referenced entity exists.
func NewCatalog(entities EntitiesFile, stages []StageDef) (*Catalog, error) {
	c := &Catalog{
		entities: make(map[string]*EntityDef),
		all:      entities.Entities,
		stages:   stages,
	}
	for i := range c.all {
		c.entities[c.all[i].ID] = &c.all[i]
	}

	fixtures, err := c.resolveFixtures(entities.Fixtures)
	if err != nil {
		return nil, err
	}
	c.fixtures = fixtures

	for _, stage := range stages {
		if len(stage.BossRooms) == 0 {
			return nil, fmt.Errorf("stage %q has no boss rooms", stage.ID)
		}
		for _, tables := range [][]RoomTemplate{stage.Rooms, stage.BossRooms} {
			for _, room := range tables {
				for _, id := range room.Entities {
					if c.entities[id] == nil {
						return nil, fmt.Errorf("stage %q room %q: unknown entity %q", stage.ID, room.Name, id)
					}
				}
			}
		}
	}
	return c, nil
}

// resolveFixtures maps fixture IDs to descriptors, keeping built-in defaults
// for any fixture left blank.
func (c *Catalog) resolveFixtures(ids FixtureIDs) (world.Fixtures, error) {
	fixtures := world.DefaultFixtures()
	slots := []struct {
		id  string
		dst *world.EntityDef
	}{
		{ids.Door, &fixtures.Door},
		{ids.BackDoor, &fixtures.BackDoor},
		{ids.BossDoor, &fixtures.BossDoor},
		{ids.Key, &fixtures.Key},
		{ids.Portal, &fixtures.Portal},
	}
	for _, slot := range slots {
		if slot.id == "" {
			continue
		}
		def := c.entities[slot.id]
		if def == nil {
			return world.Fixtures{}, fmt.Errorf("unknown fixture entity %q", slot.id)
		}
		*slot.dst = def.Descriptor()
	}
	return fixtures, nil
}

// LoadCatalog loads the catalog from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	return loadCatalog(dataFS)
}

// LoadCatalogDir loads entities.json and stages.json from dir.
func LoadCatalogDir(dir string) (*Catalog, error) {
	return loadCatalog(os.DirFS(dir))
}

func loadCatalog(fsys fs.FS) (*Catalog, error) {
	entities, err := LoadFS[EntitiesFile](fsys, "entities.json")
	if err != nil {
		return nil, err
	}
	if len(entities.Entities) == 0 {
		return nil, errors.New("no entities loaded from entities.json")
	}

	stages, err := LoadFS[StagesFile](fsys, "stages.json")
	if err != nil {
		return nil, err
	}
	if len(stages.Stages) == 0 {
		return nil, errors.New("no stages loaded from stages.json")
	}

	return NewCatalog(entities, stages.Stages)
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// StageCount returns the number of stages with content.
func (c *Catalog) StageCount() int {
	return len(c.stages)
}

// Stage returns the stage definition, or nil if out of range.
func (c *Catalog) Stage(stage int) *StageDef {
	if stage < 0 || stage >= len(c.stages) {
		return nil
	}
	return &c.stages[stage]
}

// Fixtures returns the descriptors for doors, key and portal.
func (c *Catalog) Fixtures() world.Fixtures {
	return c.fixtures
}

// RoomContent picks a weighted random room template of the given tier and
// returns its entities.
func (c *Catalog) RoomContent(stage, tier int, rng world.Rand) []world.EntityDef {
	s := c.Stage(stage)
	if s == nil {
		return nil
	}
	return c.expand(pickWeighted(s.templatesForTier(tier), rng))
}

// BossRoomContent picks a weighted random boss room template for the stage.
func (c *Catalog) BossRoomContent(stage int, rng world.Rand) []world.EntityDef {
	s := c.Stage(stage)
	if s == nil {
		return nil
	}
	return c.expand(pickWeighted(s.BossRooms, rng))
}

func (c *Catalog) expand(room *RoomTemplate) []world.EntityDef {
	if room == nil {
		return nil
	}
	defs := make([]world.EntityDef, 0, len(room.Entities))
	for _, id := range room.Entities {
		defs = append(defs, c.entities[id].Descriptor())
	}
	return defs
}

// GetByID returns the entity definition with the given ID, or nil if not found.
func (c *Catalog) GetByID(id string) *EntityDef {
	return c.entities[id]
}

// All returns all entity definitions.
func (c *Catalog) All() []EntityDef {
	return c.all
}

// pickWeighted selects a template using weighted probability. Templates
// without a positive weight count as weight 1.
func pickWeighted(templates []RoomTemplate, rng world.Rand) *RoomTemplate {
	if len(templates) == 0 {
		return nil
	}

	totalWeight := 0
	for _, t := range templates {
		totalWeight += max(t.Weight, 1)
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for i := range templates {
		cumulative += max(templates[i].Weight, 1)
		if roll < cumulative {
			return &templates[i]
		}
	}
	return &templates[0]
}
