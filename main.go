package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/fonts"
	"github.com/automoto/pigking/scenes"
	"github.com/automoto/pigking/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, scenes.Start{LevelIndex: config.Debug.StartLevel})
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func loadFonts() {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, config.UI.HUDFontSize},
		{fonts.Bold, gobold.TTF, 20},
		{fonts.Title, gobold.TTF, 32},
		{fonts.Small, goregular.TTF, config.UI.DebugFontSize},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			log.Fatal(err)
		}
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start the first level without the menu")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "draw hitboxes and collision geometry")
	flag.StringVar(&config.Debug.TuningFile, "tuning", "", "YAML tuning overrides, reloaded on change")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "level index for new games")
	flag.Parse()

	if path := config.Debug.TuningFile; path != "" {
		if err := config.LoadOverrides(path); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.WatchOverrides(path)
		if err != nil {
			log.Printf("Warning: Tuning changes will not be reloaded: %v", err)
		} else {
			defer w.Close()
			systems.SetTuningWatcher(w)
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	res := config.Settings.Resolutions[config.Settings.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
