package assets

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sync"

	"github.com/automoto/pigking/assets/levels"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Level is a parsed level plus its pre-rendered tile layers.
type Level struct {
	*leveldata.Level
	Background *ebiten.Image
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levels.FS, dir: config.Level.Dir}
}

// NewLevelLoaderFS reads levels from dir inside fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels parses every level and renders its background. A background
// that fails to render is replaced by a flat fill with the collision
// geometry drawn on top; only parse errors are returned.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	parsed, err := leveldata.LoadAllLevels(l.fsys, l.dir)
	if err != nil {
		return nil, err
	}

	out := make([]Level, 0, len(parsed))
	for _, lvl := range parsed {
		bg, err := l.renderBackground(lvl)
		if err != nil {
			log.Printf("Warning: Failed to render level %s, using fallback: %v", lvl.Name, err)
			bg = fallbackBackground(lvl)
		}
		out = append(out, Level{Level: lvl, Background: bg})
	}
	return out, nil
}

// MustLoadLevels is LoadLevels for scene setup, where the embedded levels
// are known to be valid.
func (l *LevelLoader) MustLoadLevels() []Level {
	out, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return out
}

var (
	levelsOnce sync.Once
	loaded     []Level
)

// LoadedLevels returns the embedded levels, loading and rendering them on
// first use.
func LoadedLevels() []Level {
	levelsOnce.Do(func() {
		loaded = NewLevelLoader().MustLoadLevels()
	})
	return loaded
}

func (l *LevelLoader) renderBackground(lvl *leveldata.Level) (*ebiten.Image, error) {
	levelPath := path.Join(l.dir, lvl.Name+".tmx")
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	bg := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	bg.Fill(config.DarkPurple)

	// Only layers with the "render" custom property are drawn.
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s of %s: %v", layer.Name, lvl.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg, nil
}

func fallbackBackground(lvl *leveldata.Level) *ebiten.Image {
	w, h := max(1, int(lvl.Width)), max(1, int(lvl.Height))
	bg := ebiten.NewImage(w, h)
	bg.Fill(config.DarkPurple)
	for _, b := range lvl.Blocks {
		vector.FillRect(bg, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), config.Debug.BlockColor, false)
	}
	for _, p := range lvl.Platforms {
		vector.FillRect(bg, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), config.Debug.PlatColor, false)
	}
	return bg
}
