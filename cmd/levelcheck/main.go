// Command levelcheck runs every embedded level headless with no input and
// reports characters that never settle on the ground or leave the map.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/pigking/assets/levels"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
)

func main() {
	ticks := flag.Int("ticks", 600, "Ticks to simulate per level")
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	realtime := flag.Int("realtime", -1, "Run this level index in real time until interrupted")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	lvls, err := leveldata.LoadAllLevels(levels.FS, config.Level.Dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if *realtime >= 0 {
		if *realtime >= len(lvls) {
			log.Fatalf("Level index %d out of range (%d levels)", *realtime, len(lvls))
		}
		runRealtime(lvls[*realtime])
		return
	}

	failed := 0
	for _, lvl := range lvls {
		problems := check(lvl, *ticks)
		for _, p := range problems {
			log.Printf("%s: %s", lvl.Name, p)
		}
		if len(problems) > 0 {
			failed++
			continue
		}
		log.Printf("%s: ok", lvl.Name)
	}
	if failed > 0 {
		log.Printf("%d of %d levels failed", failed, len(lvls))
		os.Exit(1)
	}
}

// check simulates lvl for n ticks and lists every character that is
// airborne or outside the level bounds at the end.
func check(lvl *leveldata.Level, n int) []string {
	loop := core.NewLoop(lvl, config.C.DeltaTime())
	loop.Advance(n)

	var problems []string
	inspect := func(name string, c *core.Character) {
		hitbox := c.Hitbox()
		if !c.Body.IsOnGround {
			problems = append(problems, fmt.Sprintf("%s not on ground at (%.1f, %.1f)", name, hitbox.X, hitbox.Y))
		}
		if !gamemath.Overlaps(lvl.Bounds(), hitbox) {
			problems = append(problems, fmt.Sprintf("%s left the level at (%.1f, %.1f)", name, hitbox.X, hitbox.Y))
		}
	}
	inspect("player", loop.Player)
	for i, e := range loop.Enemies {
		inspect(fmt.Sprintf("enemy %d (%s)", i, e.Species.Name), e.Character)
	}
	return problems
}

func runRealtime(lvl *leveldata.Level) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := core.NewLoop(lvl, config.C.DeltaTime())
	if err := loop.Run(ctx, config.C.TPS); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Simulation error: %v", err)
	}
	log.Printf("%s: player at %.1f,%.1f, %d enemies left, %d removed",
		lvl.Name, loop.Player.Body.Position.X, loop.Player.Body.Position.Y, len(loop.Enemies), loop.Removed)
}
