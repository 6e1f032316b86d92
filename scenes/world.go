package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/assets"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/savegame"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/automoto/pigking/systems"
	"github.com/automoto/pigking/systems/factory"
	"github.com/automoto/pigking/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Start describes how a level is entered. A nil State starts LevelIndex
// fresh; otherwise the level, checkpoint, player health and play time come
// from State.
type Start struct {
	Slot       int
	LevelIndex int
	State      *savegame.State
	// SaveOnStart writes the slot once the level is set up.
	SaveOnStart bool
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	start        Start
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, start Start) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, start: start}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsLevelComplete(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.nextLevel()))
		return
	}

	if ps.checkGameOver() {
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.start.Slot, ps.levelIndex()))
	}
}

// checkGameOver returns true once the player entity has been removed after
// its death sequence.
func (ps *PlatformerScene) checkGameOver() bool {
	if ps.ecs == nil {
		return false
	}
	_, ok := tags.Player.First(ps.ecs.World)
	return !ok
}

func (ps *PlatformerScene) levelIndex() int {
	entry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return ps.start.LevelIndex
	}
	return components.Level.Get(entry).LevelIndex
}

// nextLevel carries the player's health and the play time into the next
// level, wrapping after the last one.
func (ps *PlatformerScene) nextLevel() Start {
	level := components.Level.Get(components.Level.MustFirst(ps.ecs.World))
	next := (level.LevelIndex + 1) % max(1, level.LevelCount)

	state := &savegame.State{LevelIndex: next}
	if snapshot, ok := systems.PlayerSnapshot(ps.ecs); ok {
		state.Player = snapshot
	}
	if entry, ok := components.Session.First(ps.ecs.World); ok {
		state.PlayTime = components.Session.Get(entry).PlayTime
	}
	log.Printf("Level %d complete, entering level %d", level.LevelIndex+1, next+1)
	return Start{Slot: ps.start.Slot, LevelIndex: next, State: state, SaveOnStart: true}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use
	assets.PreloadAllAnimations()
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: %v, hit flash disabled", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDoors))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAutosave))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTuning)

	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawDoors)
	ecs.AddRenderer(archetypes.Default, systems.DrawCheckpoints)
	ecs.AddRenderer(archetypes.Default, systems.DrawCharacters)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawPause)

	ps.ecs = ecs
	ps.populate()
}

// populate spawns the level, its actors and the player, restoring saved
// progress when the scene was started from a save.
func (ps *PlatformerScene) populate() {
	start := ps.start
	if start.State != nil {
		start.LevelIndex = start.State.LevelIndex
	}

	levelEntry := factory.CreateLevelAtIndex(ps.ecs, start.LevelIndex)
	level := components.Level.Get(levelEntry)
	lvl := level.Level

	checkpoint := ""
	if start.State != nil {
		checkpoint = restoreCheckpoint(level, start.State.Checkpoint)
	}

	factory.CreateCamera(ps.ecs)
	player := factory.CreatePlayer(ps.ecs, level.Respawn)
	if start.State != nil && start.State.Player.Species != "" {
		c := core.FromEntry(player)
		c.Restore(start.State.Player)
		c.Body.Position = core.SpawnOrigin(level.Respawn.X, level.Respawn.Y, c.Species)
	}

	for _, spawn := range lvl.Enemies {
		factory.CreateEnemy(ps.ecs, spawn)
	}
	for _, cp := range lvl.Checkpoints {
		factory.CreateCheckpoint(ps.ecs, cp, cp.ID == checkpoint)
	}
	for _, door := range lvl.Doors {
		factory.CreateDoor(ps.ecs, door)
	}

	playTime := 0.0
	if start.State != nil {
		playTime = start.State.PlayTime
	}
	session := factory.CreateSession(ps.ecs, start.Slot, playTime)
	components.Session.Get(session).AutosaveRequested = start.SaveOnStart
	factory.CreateHUD(ps.ecs, components.Combat.Get(player).HealthFraction())

	if checkpoint == "" {
		systems.StartDoorOut(ps.ecs, leveldata.DoorEntry)
	}
	systems.SnapCamera(ps.ecs)
}

// restoreCheckpoint moves the respawn point to a saved checkpoint. It
// returns the checkpoint id, or "" when the level has no such checkpoint.
func restoreCheckpoint(level *components.LevelData, id string) string {
	if id == "" {
		return ""
	}
	for _, cp := range level.Level.Checkpoints {
		if cp.ID == id {
			level.ActiveCheckpoint = id
			level.Respawn = gamemath.Vector2{X: cp.Rect.CenterX(), Y: cp.Rect.Bottom()}
			return id
		}
	}
	log.Printf("Warning: checkpoint %q not found in level %s, using level spawn", id, level.Level.Name)
	return ""
}
