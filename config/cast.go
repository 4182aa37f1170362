package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/love-tap/constants"
)

// Character is a display identity; the core never reads it
type Character struct {
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
}

type Celebration struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

// Cast holds the presentational content: who kisses whom and what the overlay says
type Cast struct {
	Player1         Character   `yaml:"player1"`
	Player2         Character   `yaml:"player2"`
	Celebration     Celebration `yaml:"celebration"`
	ProjectileGlyph string      `yaml:"projectile_glyph"`
	Palette         []string    `yaml:"palette"`
	ComboPalette    []string    `yaml:"combo_palette"`
}

func DefaultCast() *Cast {
	return &Cast{
		Player1: Character{Name: constants.Player1Name, Emoji: constants.Player1Emoji},
		Player2: Character{Name: constants.Player2Name, Emoji: constants.Player2Emoji},
		Celebration: Celebration{
			Title:   constants.CelebrationTitle,
			Message: constants.CelebrationMessage,
		},
		ProjectileGlyph: constants.ProjectileGlyph,
		Palette:         append([]string(nil), constants.DefaultPalette...),
		ComboPalette:    append([]string(nil), constants.DefaultComboPalette...),
	}
}

// LoadCast reads a YAML cast file over the defaults. Fields left out keep their default;
// an empty palette in the file falls back to the default palette.
func LoadCast(path string) (*Cast, error) {
	cast := DefaultCast()
	if path == "" {
		return cast, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cast %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cast); err != nil {
		return nil, fmt.Errorf("parse cast %s: %w", path, err)
	}
	if len(cast.Palette) == 0 {
		cast.Palette = append([]string(nil), constants.DefaultPalette...)
	}
	if len(cast.ComboPalette) == 0 {
		cast.ComboPalette = append([]string(nil), constants.DefaultComboPalette...)
	}
	if cast.ProjectileGlyph == "" {
		cast.ProjectileGlyph = constants.ProjectileGlyph
	}
	return cast, nil
}
