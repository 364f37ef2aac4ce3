package gamedata

// RoomTemplate is one possible filling for a room.
type RoomTemplate struct {
	Name     string   `json:"name"`
	Tier     int      `json:"tier"`     // Content tier; rooms at depth d use tier d-1
	Weight   int      `json:"weight"`   // Relative pick frequency (higher = more common)
	Entities []string `json:"entities"` // Entity IDs spawned into the room
}

// StageDef holds the room tables for one stage of a run.
type StageDef struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Rooms     []RoomTemplate `json:"rooms"`
	BossRooms []RoomTemplate `json:"bossRooms"`
}

// StagesFile represents the structure of stages.json.
type StagesFile struct {
	Stages []StageDef `json:"stages"`
}

// LoadStages loads stage definitions from the embedded stages.json file.
func LoadStages() ([]StageDef, error) {
	file, err := Load[StagesFile]("stages.json")
	if err != nil {
		return nil, err
	}
	return file.Stages, nil
}

// maxTier returns the highest tier with at least one template.
func (s *StageDef) maxTier() int {
	highest := -1
	for _, r := range s.Rooms {
		highest = max(highest, r.Tier)
	}
	return highest
}

// templatesForTier returns the templates of the requested tier. Tiers past
// the deepest defined one reuse the deepest tier; gaps fall back to the
// nearest shallower tier.
func (s *StageDef) templatesForTier(tier int) []RoomTemplate {
	for t := min(tier, s.maxTier()); t >= 0; t-- {
		var matches []RoomTemplate
		for _, r := range s.Rooms {
			if r.Tier == t {
				matches = append(matches, r)
			}
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return nil
}
