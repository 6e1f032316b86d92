package systems

import (
	"fmt"

	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based faces come from the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}

// UpdateHUD drains the displayed health toward the player's real health.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getHUD(ecs)
	_, player, ok := getPlayer(ecs)
	if hud == nil || !ok {
		return
	}

	if target := player.Combat.HealthFraction(); target != hud.Target {
		hud.Target = target
		hud.Tween = gween.New(float32(hud.Displayed), float32(target), float32(cfg.UI.HealthDrainTime), ease.OutCubic)
	}
	if hud.Tween == nil {
		return
	}
	v, done := hud.Tween.Update(float32(cfg.C.DeltaTime()))
	hud.Displayed = float64(v)
	if done {
		hud.Displayed = hud.Target
		hud.Tween = nil
	}
}

// DrawHUD renders the player's health bar in the top-left corner. The lag
// bar shows health lost but not yet drained.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(ecs)
	_, player, ok := getPlayer(ecs)
	if hud == nil || !ok {
		return
	}

	x := float32(cfg.UI.HealthBarMargin)
	y := float32(cfg.UI.HealthBarMargin)
	w := float32(cfg.UI.HealthBarWidth)
	h := float32(cfg.UI.HealthBarHeight)

	vector.FillRect(screen, x, y, w, h, cfg.UI.HealthBarBgColor, false)
	if hud.Displayed > hud.Target {
		vector.FillRect(screen, x, y, w*float32(hud.Displayed), h, cfg.UI.HealthBarLagColor, false)
	}
	vector.FillRect(screen, x, y, w*float32(min(hud.Target, hud.Displayed)), h, cfg.UI.HealthBarFgColor, false)

	label := fmt.Sprintf("HP %d/%d", player.Combat.Health, player.Combat.MaxHealth)
	text.Draw(screen, label, fonts.Small.Get(), int(x+w)+6, int(y+h), cfg.UI.HUDTextColor)
}
