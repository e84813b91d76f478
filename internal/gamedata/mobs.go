package gamedata

import "github.com/gdamore/tcell/v2"

// MobDef defines a monster type loaded from JSON.
type MobDef struct {
	ID             string `json:"id"`             // Unique identifier (e.g., "orc")
	Name           string `json:"name"`           // Display name (e.g., "Orc")
	Glyph          string `json:"glyph"`          // Single character for rendering (e.g., "o")
	Color          string `json:"color"`          // Hex color code (e.g., "#00FF00")
	BlocksMovement bool   `json:"blocksMovement"` // Whether other actors must path around it
	SpawnWeight    int    `json:"spawnWeight"`    // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MobDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (m *MobDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// MobsFile represents the structure of mobs.json.
type MobsFile struct {
	Mobs []MobDef `json:"mobs"`
}

// LoadMobs loads monster definitions from the embedded mobs.json file.
func LoadMobs() ([]MobDef, error) {
	file, err := Load[MobsFile]("mobs.json")
	if err != nil {
		return nil, err
	}
	return file.Mobs, nil
}
