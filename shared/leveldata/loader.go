package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/pigking/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ErrNoLevels is returned when a directory holds no .tmx files.
var ErrNoLevels = errors.New("leveldata: no levels found")

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}
	return fromMap(levelMap, strings.TrimSuffix(path.Base(tmxPath), ".tmx"))
}

func fromMap(levelMap *tiled.Map, name string) (*Level, error) {
	lvl := &Level{
		Name:       name,
		Width:      float64(levelMap.Width * levelMap.TileWidth),
		Height:     float64(levelMap.Height * levelMap.TileHeight),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerCollision {
			continue
		}
		found = true
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("leveldata: %s: collision layer has %d tiles, want %d",
				name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}
		lvl.readCollision(layer, levelMap.Width, levelMap.Height)
		break
	}
	if !found {
		return nil, fmt.Errorf("leveldata: %s: missing %q layer", name, LayerCollision)
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlayerSpawn:
				if !spawnFound {
					lvl.PlayerSpawn = gamemath.Vector2{X: o.X, Y: o.Y}
					spawnFound = true
				}
			case GroupEnemySpawn:
				species := o.Properties.GetString("species")
				if species == "" {
					species = o.Class
				}
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Species: species, X: o.X, Y: o.Y})
			case GroupCheckpoint:
				id := o.Properties.GetString("checkpointID")
				if id == "" {
					id = fmt.Sprintf("%s-%d", name, o.ID)
				}
				lvl.Checkpoints = append(lvl.Checkpoints, Checkpoint{
					ID:   id,
					Rect: gamemath.NewRect(o.X, o.Y, o.Width, o.Height),
				})
			case GroupDoor:
				lvl.Doors = append(lvl.Doors, Door{
					Kind: o.Properties.GetString("kind"),
					Rect: gamemath.NewRect(o.X, o.Y, o.Width, o.Height),
				})
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("leveldata: %s: missing %s object", name, GroupPlayerSpawn)
	}

	// Enemies spawn left to right for a stable entity order.
	sort.SliceStable(lvl.Enemies, func(i, j int) bool {
		return lvl.Enemies[i].X < lvl.Enemies[j].X
	})

	return lvl, nil
}

// readCollision walks the grid row by row so blocks and platforms keep a
// deterministic order.
func (l *Level) readCollision(layer *tiled.Layer, width, height int) {
	tileW := float64(l.TileWidth)
	tileH := float64(l.TileHeight)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := layer.Tiles[y*width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			px, py := float64(x)*tileW, float64(y)*tileH
			switch int(tile.ID) + 1 {
			case TileBlock:
				l.Blocks = append(l.Blocks, gamemath.NewRect(px, py, tileW, tileH))
			case TilePlatform:
				l.Platforms = append(l.Platforms, gamemath.NewRect(px, py+tileH, tileW, PlatformThickness))
			}
		}
	}
}

// LoadAllLevels discovers all .tmx files in dir within fsys and returns them sorted
// by file name.
func LoadAllLevels(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
