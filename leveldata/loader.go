package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from the "solid" tile layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "solid" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				lvl.Solids = append(lvl.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	anchorSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Anchor":
			for _, o := range og.Objects {
				lvl.Anchor = SpawnPoint{X: o.X, Y: o.Y}
				anchorSeen = true
			}
		case "Goals":
			for _, o := range og.Objects {
				mode := o.Properties.GetString("mode")
				if mode == "" {
					mode = "any"
				}
				lvl.Goals = append(lvl.Goals, GoalSpot{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Mode:             mode,
					RequiredIdentity: o.Properties.GetInt("identity"),
				})
			}
		case "Switches":
			for _, o := range og.Objects {
				lvl.Switches = append(lvl.Switches, SwitchSpot{
					X: o.X, Y: o.Y,
					LinkID: o.Properties.GetInt("link"),
				})
			}
		case "Doors":
			for _, o := range og.Objects {
				lvl.Doors = append(lvl.Doors, DoorSpot{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					LinkID: o.Properties.GetInt("link"),
				})
			}
		case "Carryables":
			for _, o := range og.Objects {
				lvl.Carryables = append(lvl.Carryables, CarryableSpot{X: o.X, Y: o.Y})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				lvl.DeadZones = append(lvl.DeadZones, ZoneRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "Platforms":
			for _, o := range og.Objects {
				seconds := o.Properties.GetFloat("seconds")
				if seconds <= 0 {
					seconds = 2
				}
				lvl.Platforms = append(lvl.Platforms, PlatformPath{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					TravelY: o.Properties.GetFloat("travel"),
					Seconds: seconds,
				})
			}
		}
	}

	if !anchorSeen {
		return nil, fmt.Errorf("level %s has no Anchor object group", tmxPath)
	}

	return lvl, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and
// returns loaded levels keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		lvl, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
