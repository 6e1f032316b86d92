package systems

import (
	"log"

	cfg "github.com/automoto/pigking/config"
	"github.com/yohamta/donburi/ecs"
)

var tuningWatcher *cfg.Watcher

// SetTuningWatcher installs the watcher whose change events reload tuning
// overrides.
func SetTuningWatcher(w *cfg.Watcher) {
	tuningWatcher = w
}

// UpdateTuning reloads the tuning file when it changed. Reloading happens on
// the game goroutine between ticks so a tick never sees half-applied values.
func UpdateTuning(_ *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-tuningWatcher.Events:
			if !ok {
				tuningWatcher = nil
				return
			}
			if err := cfg.LoadOverrides(path); err != nil {
				log.Printf("Warning: Tuning not applied: %v", err)
				continue
			}
			log.Printf("Tuning reloaded from %s", path)
		case err, ok := <-tuningWatcher.Errors:
			if ok {
				log.Printf("Warning: Tuning watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}
