package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pigking/systems"
	"github.com/automoto/pigking/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene offers a retry from the last save of the slot, or the start
// of the level when the slot is empty.
type GameOverScene struct {
	sceneChanger SceneChanger
	slot         int
	levelIndex   int
	menu         *ui.MenuUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, slot, levelIndex int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, slot: slot, levelIndex: levelIndex}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.menu.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.menu == nil {
		return
	}
	gs.menu.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.menu = ui.NewMenuUI("GAME OVER", "", []ui.MenuItem{
		{Label: "Retry", OnSelect: gs.retry},
		{Label: "Main Menu", OnSelect: func() {
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		}},
	})
}

func (gs *GameOverScene) retry() {
	start := Start{Slot: gs.slot, LevelIndex: gs.levelIndex}
	if saves := systems.Saves(); saves != nil {
		state, err := saves.LoadSave(gs.slot)
		if err != nil {
			log.Printf("Warning: Could not load slot %d, restarting level: %v", gs.slot, err)
		}
		start.State = state
	}
	gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, start))
}
