package systems

import (
	"log"

	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/savegame"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutosave advances the play-time clock and writes saves. Requested
// saves (checkpoints, level changes) go to the session slot; the periodic
// save goes to the autosave slot.
func UpdateAutosave(ecs *ecs.ECS) {
	session := getSession(ecs)
	if session == nil {
		return
	}
	dt := cfg.C.DeltaTime()
	session.PlayTime += dt
	session.SinceAutosave += dt

	saves := Saves()
	if saves == nil {
		session.AutosaveRequested = false
		return
	}

	if session.AutosaveRequested {
		session.AutosaveRequested = false
		if err := SaveProgress(ecs, saves, session.Slot); err != nil {
			log.Printf("Warning: Could not save slot %d: %v", session.Slot, err)
		}
	}

	if cfg.Save.AutosaveInterval > 0 && session.SinceAutosave >= cfg.Save.AutosaveInterval {
		session.SinceAutosave = 0
		if err := SaveProgress(ecs, saves, saves.AutosaveSlot()); err != nil {
			log.Printf("Warning: Autosave failed: %v", err)
		}
	}
}

// ProgressState captures the running game. The stored position is the
// respawn point of the level, so loading never drops the player in mid-air.
func ProgressState(ecs *ecs.ECS) (savegame.State, bool) {
	level := getLevel(ecs)
	snapshot, ok := PlayerSnapshot(ecs)
	if level == nil || !ok {
		return savegame.State{}, false
	}

	_, player, _ := getPlayer(ecs)
	origin := core.SpawnOrigin(level.Respawn.X, level.Respawn.Y, player.Species)
	snapshot.X, snapshot.Y = origin.X, origin.Y

	state := savegame.State{
		LevelIndex: level.LevelIndex,
		Checkpoint: level.ActiveCheckpoint,
		Player:     snapshot,
	}
	if session := getSession(ecs); session != nil {
		state.PlayTime = session.PlayTime
	}
	return state, true
}

// SaveProgress writes the running game to slot. A dead player is not saved.
func SaveProgress(ecs *ecs.ECS, saves *savegame.Manager, slot int) error {
	state, ok := ProgressState(ecs)
	if !ok {
		return nil
	}
	save, err := saves.CreateSave(slot, state)
	if err != nil {
		return err
	}
	log.Printf("Saved level %d to slot %d (%s)", state.LevelIndex, slot, save.ID)
	return nil
}
