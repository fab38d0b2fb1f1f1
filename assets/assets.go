// Package assets embeds game data shipped with the binary.
package assets

import (
	"embed"

	"github.com/hollowmoor/echoes/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LoadLevels parses every embedded TMX level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(levelFS, "levels")
}
