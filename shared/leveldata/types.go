// Package leveldata parses TMX levels into plain collision and spawn data.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/pigking/shared/gamemath"

// Tile ids of the collision layer, relative to the tileset's first gid.
const (
	TileBlock    = 1
	TilePlatform = 2
)

// PlatformThickness is the height of a one-way platform rect. Platforms sit on
// the lower edge of their tile row.
const PlatformThickness = 4

// Layer and object group names.
const (
	LayerCollision   = "collision"
	LayerBackground  = "background"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemySpawn  = "EnemySpawn"
	GroupCheckpoint  = "Checkpoint"
	GroupDoor        = "Door"
)

// Door kinds.
const (
	DoorEntry = "entry"
	DoorExit  = "exit"
)

// Level holds everything the simulation needs from one TMX file.
type Level struct {
	Name        string
	Blocks      []gamemath.Rect
	Platforms   []gamemath.Rect
	PlayerSpawn gamemath.Vector2
	Enemies     []EnemySpawn
	Checkpoints []Checkpoint
	Doors       []Door
	Width       float64
	Height      float64
	TileWidth   int
	TileHeight  int
}

// Bounds returns the level extents as a rect anchored at the origin.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.NewRect(0, 0, l.Width, l.Height)
}

// EnemySpawn places an enemy of the given species.
type EnemySpawn struct {
	Species string
	X, Y    float64
}

// Checkpoint is a respawn trigger area.
type Checkpoint struct {
	ID   string
	Rect gamemath.Rect
}

// Door is a level entry or exit.
type Door struct {
	Kind string
	Rect gamemath.Rect
}

// Door returns the first door of the given kind.
func (l *Level) Door(kind string) (Door, bool) {
	for _, d := range l.Doors {
		if d.Kind == kind {
			return d, true
		}
	}
	return Door{}, false
}
