package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/pigking/collision"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/leveldata"
)

// Enemy pairs an enemy character with its AI state.
type Enemy struct {
	*Character
	AI components.EnemyData
}

// Loop drives a level without rendering: player intent, enemy AI, one
// kinematic step per character and melee resolution, in that order. The ECS
// systems run the same order per frame.
type Loop struct {
	World   *collision.World
	Player  *Character
	Enemies []*Enemy
	DT      float64
	Tick    int

	// Input returns the player intent for a tick. Nil means an idle player.
	Input func(tick int) Intent
	// Removed counts enemies whose death clip finished.
	Removed int
}

// NewLoop spawns the player and every enemy of lvl.
func NewLoop(lvl *leveldata.Level, dt float64) *Loop {
	l := &Loop{
		World:  NewWorld(lvl),
		Player: Spawn(lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y, config.Player),
		DT:     dt,
	}
	for _, es := range lvl.Enemies {
		s, ok := config.LookupSpecies(es.Species)
		if !ok {
			log.Printf("Warning: level %s: unknown enemy species %q, skipping", lvl.Name, es.Species)
			continue
		}
		l.Enemies = append(l.Enemies, &Enemy{Character: Spawn(es.X, es.Y, s)})
	}
	return l
}

// Step advances the simulation by one tick.
func (l *Loop) Step() {
	var in Intent
	if l.Input != nil {
		in = l.Input(l.Tick)
	}
	l.Player.Control(in)

	target := l.Player.Hitbox()
	alive := !l.Player.Dead()
	for _, e := range l.Enemies {
		e.Think(&e.AI, target, alive)
	}

	l.Player.Step(l.World, l.DT)
	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		res := e.Step(l.World, l.DT)
		if res.ClipDone && res.Completed == config.Dead {
			l.Removed++
			continue
		}
		kept = append(kept, e)
	}
	l.Enemies = kept

	l.Player.CheckAttackCollision(l.characters())
	for _, e := range l.Enemies {
		e.CheckAttackCollision([]*Character{l.Player})
	}
	l.Tick++
}

// Advance runs n ticks.
func (l *Loop) Advance(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// Run steps the loop in real time at tps ticks per second until ctx ends.
func (l *Loop) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("core: invalid tick rate %d", tps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", tps)
	for {
		select {
		case <-ctx.Done():
			log.Printf("Simulation loop stopped after %d ticks", l.Tick)
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}

func (l *Loop) characters() []*Character {
	out := make([]*Character, len(l.Enemies))
	for i, e := range l.Enemies {
		out[i] = e.Character
	}
	return out
}
