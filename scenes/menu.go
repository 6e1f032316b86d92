package scenes

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/savegame"
	"github.com/automoto/pigking/systems"
	"github.com/automoto/pigking/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu: a new game, one entry per occupied save
// slot and exit.
type MenuScene struct {
	sceneChanger SceneChanger
	menu         *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menu == nil {
		return
	}
	ms.menu.Draw(screen)
}

func (ms *MenuScene) configure() {
	saves := systems.Saves()
	slots := listSlots(saves)

	slot, overwrite := newGameSlot(saves, slots)
	label := "New Game"
	if overwrite {
		label = fmt.Sprintf("New Game (overwrites Slot %d)", slot+1)
	}
	items := []ui.MenuItem{{
		Label: label,
		OnSelect: func() {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, Start{
				Slot:       slot,
				LevelIndex: cfg.Debug.StartLevel,
			}))
		},
	}}

	for _, info := range slots {
		items = append(items, ui.MenuItem{
			Label:    slotLabel(info),
			OnSelect: func() { ms.continueFrom(saves, info.Slot) },
		})
	}

	items = append(items, ui.MenuItem{
		Label:    "Exit",
		OnSelect: func() { os.Exit(0) },
	})

	ms.menu = ui.NewMenuUI(cfg.C.Title, "Arrows: Select  Enter: Confirm", items)
}

func (ms *MenuScene) continueFrom(saves *savegame.Manager, slot int) {
	state, err := saves.LoadSave(slot)
	if err != nil || state == nil {
		log.Printf("Warning: Could not load slot %d: %v", slot, err)
		return
	}
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, Start{
		Slot:  slot,
		State: state,
	}))
}

func listSlots(saves *savegame.Manager) []savegame.SlotInfo {
	if saves == nil {
		return nil
	}
	slots, err := saves.Slots()
	if err != nil {
		log.Printf("Warning: Could not list save slots: %v", err)
		return nil
	}
	return slots
}

// newGameSlot picks the first empty manual slot. When every manual slot is
// taken it returns the least recently saved one and reports the overwrite.
func newGameSlot(saves *savegame.Manager, used []savegame.SlotInfo) (int, bool) {
	if saves == nil {
		return 0, false
	}
	taken := make(map[int]savegame.SlotInfo, len(used))
	for _, info := range used {
		taken[info.Slot] = info
	}
	oldest := 0
	for slot := 0; slot < saves.AutosaveSlot(); slot++ {
		info, ok := taken[slot]
		if !ok {
			return slot, false
		}
		if info.SavedAt.Before(taken[oldest].SavedAt) {
			oldest = slot
		}
	}
	return oldest, true
}

func slotLabel(info savegame.SlotInfo) string {
	name := fmt.Sprintf("Slot %d", info.Slot+1)
	if info.Autosave {
		name = "Autosave"
	}
	played := time.Duration(info.PlayTime * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%s: Level %d  %s", name, info.LevelIndex+1, played)
}
