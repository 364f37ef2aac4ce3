package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// EntityDef defines a spawnable entity loaded from JSON.
type EntityDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "goblin")
	Name  string `json:"name"`  // Display name (e.g., "Goblin")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "g")
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
}

// Descriptor converts the definition into the generator's descriptor.
func (e *EntityDef) Descriptor() world.EntityDef {
	return world.EntityDef{
		ID:    e.ID,
		Name:  e.Name,
		Glyph: e.Glyph,
		Color: e.Color,
	}
}

// FixtureIDs names the catalog entries used for generator-placed entities.
type FixtureIDs struct {
	Door     string `json:"door"`
	BackDoor string `json:"backDoor"`
	BossDoor string `json:"bossDoor"`
	Key      string `json:"key"`
	Portal   string `json:"portal"`
}

// EntitiesFile represents the structure of entities.json.
type EntitiesFile struct {
	Fixtures FixtureIDs  `json:"fixtures"`
	Entities []EntityDef `json:"entities"`
}

// LoadEntities loads entity definitions from the embedded entities.json file.
func LoadEntities() (EntitiesFile, error) {
	return Load[EntitiesFile]("entities.json")
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// EntityColor returns the display color of a descriptor, white if unset or invalid.
func EntityColor(def world.EntityDef) tcell.Color {
	color, err := ParseHexColor(def.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
